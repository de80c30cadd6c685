// Package flow provides the layout primitives ("flow units") the compiler
// paginates and renders: paragraphs, letter-spaced headings, bullet items,
// column rows, dividers, spacers, and forced page breaks.
package flow

import (
	"github.com/jonathan/cv-compiler/internal/fonts"
)

// Kind identifies the variant of a Unit. Atomic-vs-splittable behavior is
// decided by a single exhaustive dispatch on Kind, not by a type hierarchy.
type Kind int

// Unit kinds.
const (
	Paragraph Kind = iota
	SpacedHeading
	BulletItem
	ColumnRow
	Divider
	Spacer
	ForcedBreak
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case SpacedHeading:
		return "spaced-heading"
	case BulletItem:
		return "bullet-item"
	case ColumnRow:
		return "column-row"
	case Divider:
		return "divider"
	case Spacer:
		return "spacer"
	case ForcedBreak:
		return "forced-break"
	default:
		return "unknown"
	}
}

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Alignment controls horizontal text placement within the available width.
type Alignment int

// Supported alignments.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// TextStyle describes how a run of text is drawn and measured.
// LineHeight is the absolute distance between line tops in points.
type TextStyle struct {
	Family     string
	Style      fonts.Style
	Size       float64
	LineHeight float64
	Color      Color
	Align      Alignment
}

// Cell is one column of a ColumnRow. Width is a fixed width in points;
// exactly one cell per row may leave Width zero to take the remaining width.
type Cell struct {
	Text  string
	Style TextStyle
	Width float64
}

// Unit is one layout element. It is immutable once constructed from the
// record; which fields are meaningful depends on Kind.
type Unit struct {
	Kind  Kind
	Text  string
	Style TextStyle

	// LetterSpacing is the extra advance inserted between glyphs of a
	// SpacedHeading, in points.
	LetterSpacing float64

	// Indent shifts the wrapped text of a Paragraph or BulletItem right of
	// the unit origin. For a BulletItem the marker stays at the origin.
	Indent float64

	// Cells holds the columns of a ColumnRow.
	Cells []Cell

	// Thickness is the Divider rule thickness in points.
	Thickness float64

	// Gap is the fixed height of a Spacer in points.
	Gap float64

	// Wrapped holds pre-wrapped lines for units produced by a page-boundary
	// split. When non-nil it overrides wrapping of Text, so both halves of a
	// split paragraph keep the exact line breaks computed before the split.
	Wrapped []Line
}

// NewParagraph returns a splittable paragraph unit.
func NewParagraph(text string, style TextStyle) Unit {
	return Unit{Kind: Paragraph, Text: text, Style: style}
}

// NewSpacedHeading returns a single-line heading drawn with extra advance
// between glyphs.
func NewSpacedHeading(text string, style TextStyle, letterSpacing float64) Unit {
	return Unit{Kind: SpacedHeading, Text: text, Style: style, LetterSpacing: letterSpacing}
}

// NewBulletItem returns a bulleted paragraph whose text is indented by
// indent points past the marker.
func NewBulletItem(text string, style TextStyle, indent float64) Unit {
	return Unit{Kind: BulletItem, Text: text, Style: style, Indent: indent}
}

// NewColumnRow returns a row of independently wrapped cells.
func NewColumnRow(cells []Cell) Unit {
	return Unit{Kind: ColumnRow, Cells: cells}
}

// NewDivider returns a full-width horizontal rule.
func NewDivider(thickness float64, color Color) Unit {
	return Unit{Kind: Divider, Thickness: thickness, Style: TextStyle{Color: color}}
}

// NewSpacer returns a fixed vertical gap.
func NewSpacer(gap float64) Unit {
	return Unit{Kind: Spacer, Gap: gap}
}

// NewForcedBreak returns a zero-height unit that forces a page break.
func NewForcedBreak() Unit {
	return Unit{Kind: ForcedBreak}
}

// Atomic reports whether the unit must never be split across a page
// boundary. Only wrapped text units may split, and only at line boundaries.
func (u *Unit) Atomic() bool {
	switch u.Kind {
	case Paragraph, BulletItem:
		return false
	default:
		return true
	}
}

// CellWidths resolves the cell widths of a ColumnRow for the given available
// width. Fixed widths are kept exactly; the flexible cell receives the
// remainder, so the widths always sum to width.
func (u *Unit) CellWidths(width float64) []float64 {
	widths := make([]float64, len(u.Cells))
	var fixed float64
	flexible := -1
	for i, c := range u.Cells {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else if flexible < 0 {
			flexible = i
		}
	}
	if flexible >= 0 {
		widths[flexible] = width - fixed
	}
	return widths
}
