package fonts

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// metricsPPEm is the pixels-per-em the advance table is sampled at. Advances
// are divided back out, so the value only bounds the sampling precision.
const metricsPPEm = 1000

// Rune ranges precomputed into the advance table: ASCII, Latin-1 Supplement,
// and Latin Extended-A cover the record text this compiler is built for.
var advanceRanges = [][2]rune{
	{0x0020, 0x007E},
	{0x00A0, 0x017F},
}

// Extra runes used by the section builders (separators, dashes, quotes).
var advanceExtras = []rune{'·', '–', '—', '‘', '’', '“', '”', '•', '…'}

// Metrics exposes glyph advance widths for one font face. All widths are
// expressed at unit size: multiply by the font size in points to get points.
// A Metrics value is immutable after construction and safe for concurrent use.
type Metrics struct {
	advances map[rune]float64
	fallback float64
	ascent   float64
	descent  float64
}

func newMetrics(f *sfnt.Font) (*Metrics, error) {
	var buf sfnt.Buffer
	ppem := fixed.I(metricsPPEm)

	m := &Metrics{advances: make(map[rune]float64, 512)}

	addRune := func(r rune) error {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return err
		}
		if gi == 0 {
			return nil // no glyph for this rune; fallback applies
		}
		adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return err
		}
		m.advances[r] = fixedToFloat(adv) / metricsPPEm
		return nil
	}

	for _, rr := range advanceRanges {
		for r := rr[0]; r <= rr[1]; r++ {
			if err := addRune(r); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range advanceExtras {
		if err := addRune(r); err != nil {
			return nil, err
		}
	}

	fm, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	m.ascent = fixedToFloat(fm.Ascent) / metricsPPEm
	m.descent = fixedToFloat(fm.Descent) / metricsPPEm

	// Runes outside the precomputed ranges measure as a space so that layout
	// stays deterministic even for unexpected input.
	if w, ok := m.advances[' ']; ok {
		m.fallback = w
	} else {
		m.fallback = 0.5
	}

	return m, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Advance returns the advance width of r at unit size.
func (m *Metrics) Advance(r rune) float64 {
	if w, ok := m.advances[r]; ok {
		return w
	}
	return m.fallback
}

// StringWidth returns the width of s at the given font size in points.
// Kerning is ignored; the drawing backend positions glyphs the same way.
func (m *Metrics) StringWidth(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		w += m.Advance(r)
	}
	return w * size
}

// Ascent returns the distance from the baseline to the top of the em box at
// the given font size in points.
func (m *Metrics) Ascent(size float64) float64 {
	return m.ascent * size
}

// Descent returns the distance from the baseline to the bottom of the em box
// at the given font size in points.
func (m *Metrics) Descent(size float64) float64 {
	return m.descent * size
}
