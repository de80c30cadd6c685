package sections

import (
	"strings"

	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/fonts"
	"github.com/jonathan/cv-compiler/internal/types"
)

// contactSeparator joins contact items with a middle dot padded by
// non-breaking spaces.
const contactSeparator = "  ·  "

// Builder turns résumé sections into flow units. It is deterministic: the
// same record section always yields the identical unit sequence.
type Builder struct {
	theme *Theme
	reg   *fonts.Registry
	width float64
}

// NewBuilder creates a Builder for one compile invocation. width is the
// frame's content width in points; the builders use it for column math only,
// never for wrapping decisions (those belong to the pagination engine).
func NewBuilder(theme *Theme, reg *fonts.Registry, width float64) *Builder {
	return &Builder{theme: theme, reg: reg, width: width}
}

// BuildAll produces the flat ordered unit sequence for the whole record:
// contact block, then the summary, skills, experience, projects and
// education sections in document order.
func (b *Builder) BuildAll(rec *types.ResumeRecord) ([]flow.Unit, error) {
	var units []flow.Unit

	units = append(units, b.Contact(rec.Contact)...)
	units = append(units, b.Summary(rec.Summary)...)

	skills, err := b.Skills(rec.Skills)
	if err != nil {
		return nil, err
	}
	units = append(units, skills...)

	units = append(units, b.Experience(rec.Experience)...)
	units = append(units, b.Projects(rec.Projects)...)
	units = append(units, b.Education(rec.Education)...)

	return units, nil
}

// Contact builds the name heading and up to two separator-joined contact
// rows. Empty fields are omitted; an empty name still renders as a blank
// heading line.
func (b *Builder) Contact(c types.Contact) []flow.Unit {
	units := []flow.Unit{
		flow.NewParagraph(c.Name, b.theme.Name),
		flow.NewSpacer(gapAfterName),
	}

	var row1 []string
	for _, v := range []string{c.Email, c.Phone, c.Website} {
		if v != "" {
			row1 = append(row1, v)
		}
	}
	if len(row1) > 0 {
		units = append(units, flow.NewParagraph(strings.Join(row1, contactSeparator), b.theme.Contact))
	}

	var row2 []string
	for _, v := range []string{c.LinkedIn, c.GitHub} {
		if v != "" {
			row2 = append(row2, v)
		}
	}
	if len(row2) > 0 {
		units = append(units, flow.NewParagraph(strings.Join(row2, contactSeparator), b.theme.Contact))
	}

	return units
}

// Summary builds the professional summary section.
func (b *Builder) Summary(text string) []flow.Unit {
	units := b.sectionHeader("Professional Summary")
	return append(units, flow.NewParagraph(text, b.theme.Summary))
}

// sectionHeader emits the section title group: gap, letter-spaced uppercase
// heading, thin rule, gap.
func (b *Builder) sectionHeader(title string) []flow.Unit {
	return []flow.Unit{
		flow.NewSpacer(gapBeforeSection),
		flow.NewSpacedHeading(strings.ToUpper(title), b.theme.Section, b.theme.LetterSpacing),
		flow.NewSpacer(gapBeforeRule),
		flow.NewDivider(dividerThickness, b.theme.LineColor),
		flow.NewSpacer(gapAfterRule),
	}
}
