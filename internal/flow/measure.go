package flow

import (
	"github.com/jonathan/cv-compiler/internal/fonts"
)

// Measure returns the height the unit needs at the given available width.
// It is deterministic for a given width and content and has no side effects.
func (u *Unit) Measure(reg *fonts.Registry, width float64) (float64, error) {
	switch u.Kind {
	case Paragraph, BulletItem:
		lines, err := u.lines(reg, width)
		if err != nil {
			return 0, err
		}
		return float64(len(lines)) * u.Style.LineHeight, nil

	case SpacedHeading:
		// Headings never wrap; they occupy exactly one line.
		return u.Style.LineHeight, nil

	case ColumnRow:
		widths := u.CellWidths(width)
		var max float64
		for i, c := range u.Cells {
			m, err := reg.MetricsFor(c.Style.Family, c.Style.Style)
			if err != nil {
				return 0, err
			}
			lines := WrapText(m, c.Text, c.Style.Size, widths[i])
			h := float64(len(lines)) * c.Style.LineHeight
			if h > max {
				max = h
			}
		}
		return max, nil

	case Divider:
		return u.Thickness, nil

	case Spacer:
		return u.Gap, nil

	case ForcedBreak:
		return 0, nil

	default:
		return 0, nil
	}
}

// lines wraps the unit's text at its effective text width. Units that were
// produced by a page-boundary split carry their lines verbatim so the split
// point is exact.
func (u *Unit) lines(reg *fonts.Registry, width float64) ([]Line, error) {
	if u.Wrapped != nil {
		return u.Wrapped, nil
	}
	m, err := reg.MetricsFor(u.Style.Family, u.Style.Style)
	if err != nil {
		return nil, err
	}
	return WrapText(m, u.Text, u.Style.Size, width-u.Indent), nil
}

// Split divides a splittable unit at the largest whole-line boundary that
// fits within avail height. It returns the fitting prefix and the remainder;
// fit is nil when not even one line fits, rest is nil when the whole unit
// fits. Atomic units never split.
func (u *Unit) Split(reg *fonts.Registry, width, avail float64) (fit, rest *Unit, err error) {
	if u.Atomic() {
		return nil, u, nil
	}
	lines, err := u.lines(reg, width)
	if err != nil {
		return nil, nil, err
	}

	lh := u.Style.LineHeight
	n := len(lines)
	k := 0
	if lh > 0 {
		k = int(avail / lh)
	}
	if k >= n {
		return u, nil, nil
	}
	if k <= 0 {
		// Less than one line of space left: push the whole unit rather than
		// leave a visually empty fragment.
		return nil, u, nil
	}

	head := *u
	head.Wrapped = lines[:k]

	tail := *u
	tail.Wrapped = lines[k:]
	if tail.Kind == BulletItem {
		// Continuation keeps the hanging indent but not the marker.
		tail.Kind = Paragraph
	}

	return &head, &tail, nil
}
