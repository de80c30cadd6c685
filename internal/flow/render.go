package flow

import (
	"github.com/jonathan/cv-compiler/internal/fonts"
)

// bulletMarker is the glyph drawn at the origin of a BulletItem.
const bulletMarker = "·"

// Render draws the unit at (x, y) within the given width. y is the top of
// the unit; the only side effect is on the surface.
func (u *Unit) Render(s Surface, reg *fonts.Registry, x, y, width float64) error {
	switch u.Kind {
	case Paragraph:
		return u.renderText(s, reg, x+u.Indent, y, width-u.Indent)

	case BulletItem:
		m, err := reg.MetricsFor(u.Style.Family, u.Style.Style)
		if err != nil {
			return err
		}
		if err := s.SetFont(u.Style.Family, u.Style.Style, u.Style.Size); err != nil {
			return err
		}
		s.SetTextColor(u.Style.Color)
		s.Text(x, y+m.Ascent(u.Style.Size), bulletMarker)
		return u.renderText(s, reg, x+u.Indent, y, width-u.Indent)

	case SpacedHeading:
		m, err := reg.MetricsFor(u.Style.Family, u.Style.Style)
		if err != nil {
			return err
		}
		if err := s.SetFont(u.Style.Family, u.Style.Style, u.Style.Size); err != nil {
			return err
		}
		s.SetTextColor(u.Style.Color)
		run := SpacedRun(m, u.Text, u.Style.Size, u.LetterSpacing)
		s.DrawGlyphRun(x, y+m.Ascent(u.Style.Size), run)
		return nil

	case ColumnRow:
		widths := u.CellWidths(width)
		cx := x
		for i, c := range u.Cells {
			cell := Unit{Kind: Paragraph, Text: c.Text, Style: c.Style}
			if err := cell.renderText(s, reg, cx, y, widths[i]); err != nil {
				return err
			}
			cx += widths[i]
		}
		return nil

	case Divider:
		cy := y + u.Thickness/2
		s.Line(x, cy, x+width, cy, u.Thickness, u.Style.Color)
		return nil

	case Spacer, ForcedBreak:
		return nil

	default:
		return nil
	}
}

// renderText draws the unit's wrapped lines top-aligned at (x, y).
func (u *Unit) renderText(s Surface, reg *fonts.Registry, x, y, width float64) error {
	m, err := reg.MetricsFor(u.Style.Family, u.Style.Style)
	if err != nil {
		return err
	}
	lines := u.Wrapped
	if lines == nil {
		lines = WrapText(m, u.Text, u.Style.Size, width)
	}
	if len(lines) == 0 {
		return nil
	}

	if err := s.SetFont(u.Style.Family, u.Style.Style, u.Style.Size); err != nil {
		return err
	}
	s.SetTextColor(u.Style.Color)

	ascent := m.Ascent(u.Style.Size)
	for i, line := range lines {
		lx := x
		if u.Style.Align == AlignRight {
			lx = x + width - line.Width
		}
		s.Text(lx, y+float64(i)*u.Style.LineHeight+ascent, line.Text)
	}
	return nil
}
