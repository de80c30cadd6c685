package sections

import (
	"strings"

	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/types"
)

// Education builds the education section. The degree is the entry's main
// line when present, with the institution below it; otherwise the
// institution is promoted to the main line. The focus list renders as a
// comma-joined paragraph.
func (b *Builder) Education(entries []types.EducationEntry) []flow.Unit {
	units := b.sectionHeader("Education")

	for _, edu := range entries {
		main := edu.Degree
		if main == "" {
			main = edu.Institution
		}

		units = append(units, flow.NewColumnRow([]flow.Cell{
			{Text: main, Style: b.theme.EduMain},
			{Text: edu.Period, Style: b.theme.EduDate, Width: dateColumnWidth},
		}))

		if edu.Degree != "" {
			units = append(units, flow.NewParagraph(edu.Institution, b.theme.Body))
		}
		if len(edu.Focus) > 0 {
			units = append(units, flow.NewParagraph(strings.Join(edu.Focus, ", "), b.theme.Body))
		}

		units = append(units, flow.NewSpacer(gapAfterEntry))
		if edu.PageBreakAfter {
			units = append(units, flow.NewForcedBreak())
		}
	}

	return units
}
