package sections

import (
	"strings"

	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/types"
)

// Skills builds one ColumnRow per category: a fixed-width label cell and a
// flexible cell holding the comma-joined items. Every row shares the same
// label-column width (widest label plus a gap, capped at half the row
// width), so the value columns align.
// Empty labels and empty item lists still render; only absent categories
// are skipped.
func (b *Builder) Skills(categories []types.SkillCategory) ([]flow.Unit, error) {
	units := b.sectionHeader("Skills")
	if len(categories) == 0 {
		return units, nil
	}

	labelStyle := b.theme.ExpTitle
	labelStyle.Size = b.theme.Body.Size
	labelStyle.LineHeight = b.theme.Body.LineHeight

	m, err := b.reg.MetricsFor(labelStyle.Family, labelStyle.Style)
	if err != nil {
		return nil, err
	}

	var labelWidth float64
	for _, cat := range categories {
		if w := m.StringWidth(cat.Label, labelStyle.Size); w > labelWidth {
			labelWidth = w
		}
	}
	labelWidth += labelColumnGap

	// A pathological label must not squeeze the value column out of the
	// row; past half the content width the label wraps instead.
	if limit := b.width / 2; labelWidth > limit {
		labelWidth = limit
	}

	for _, cat := range categories {
		units = append(units, flow.NewColumnRow([]flow.Cell{
			{Text: cat.Label, Style: labelStyle, Width: labelWidth},
			{Text: strings.Join(cat.Items, ", "), Style: b.theme.Body},
		}))
	}

	return units, nil
}
