package flow

import (
	"github.com/jonathan/cv-compiler/internal/fonts"
)

// Glyph is one glyph of a positioned glyph run. Advance is the exact cursor
// advance to apply after drawing the glyph, in points, overriding the
// drawing API's own advance.
type Glyph struct {
	Rune    rune
	Advance float64
}

// Surface is the drawing target a unit renders into. Coordinates are in
// points with the origin at the top-left of the page; text y positions are
// baselines.
//
// DrawGlyphRun is the low-level escape path: it emits each glyph as its own
// positioned drawing instruction on the current page's content stream using
// the font, size and color already established through SetFont and
// SetTextColor, honoring each glyph's advance override. It returns the final
// cursor x (start x plus the sum of all advances) and must leave the
// surface's cursor there, with no other graphics or document state touched.
type Surface interface {
	SetFont(family string, style fonts.Style, size float64) error
	SetTextColor(c Color)
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2, width float64, c Color)
	DrawGlyphRun(x, y float64, run []Glyph) float64
}

// SpacedRun builds the glyph run for text with the given extra letter
// spacing: every glyph advances by its natural width plus spacing, except
// the final glyph, which advances by its natural width only. The total
// advance of the run is therefore the sum of the natural advances plus
// (N-1) times the spacing.
func SpacedRun(m *fonts.Metrics, text string, size, spacing float64) []Glyph {
	runes := []rune(text)
	run := make([]Glyph, len(runes))
	for i, r := range runes {
		adv := m.Advance(r) * size
		if i < len(runes)-1 {
			adv += spacing
		}
		run[i] = Glyph{Rune: r, Advance: adv}
	}
	return run
}
