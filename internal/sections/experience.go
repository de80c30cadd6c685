package sections

import (
	"strings"

	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/types"
)

// Experience builds the experience section: a heading per employer, then per
// role a title/period row followed by the description split into sentence
// bullets. An employer's pageBreakAfter directive emits a ForcedBreak
// immediately after its last unit.
func (b *Builder) Experience(employers []types.Employer) []flow.Unit {
	units := b.sectionHeader("Experience")

	for _, emp := range employers {
		units = append(units, flow.NewParagraph(emp.Company, b.theme.ExpTitle))

		for _, role := range emp.Roles {
			units = append(units, flow.NewColumnRow([]flow.Cell{
				{Text: role.Title, Style: b.theme.ExpTitle},
				{Text: role.Period, Style: b.theme.ExpDate, Width: dateColumnWidth},
			}))

			for _, sentence := range splitSentences(role.Description) {
				units = append(units, flow.NewBulletItem(sentence, b.theme.Bullet, bulletIndent))
			}

			units = append(units, flow.NewSpacer(gapAfterRole))
		}

		if emp.PageBreakAfter {
			units = append(units, flow.NewForcedBreak())
		}
	}

	return units
}

// splitSentences breaks a description into sentences on ". " boundaries,
// restoring the trailing period each sentence loses to the split.
func splitSentences(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ". ") {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		if !strings.HasSuffix(s, ".") {
			s += "."
		}
		out = append(out, s)
	}
	return out
}
