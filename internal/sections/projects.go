package sections

import (
	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/types"
)

// Projects builds the projects section: a bold name line and an optional
// description paragraph per project, with the same break-insertion pattern
// as the other entry lists.
func (b *Builder) Projects(projects []types.Project) []flow.Unit {
	units := b.sectionHeader("Projects")

	for _, proj := range projects {
		units = append(units, flow.NewParagraph(proj.Name, b.theme.ProjName))
		if proj.Description != "" {
			units = append(units, flow.NewParagraph(proj.Description, b.theme.ProjDesc))
		}
		units = append(units, flow.NewSpacer(gapAfterEntry))
		if proj.PageBreakAfter {
			units = append(units, flow.NewForcedBreak())
		}
	}

	return units
}
