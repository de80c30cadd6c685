// Package sections maps each résumé section into an ordered sequence of
// flow units, applying per-entry page-break directives from the record.
package sections

import (
	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/fonts"
	"github.com/jonathan/cv-compiler/internal/types"
)

// Design tokens carried over from the original CV design.
var (
	colorDark    = flow.Color{R: 0x1B, G: 0x2A, B: 0x4A}
	colorText    = flow.Color{R: 0x2D, G: 0x2D, B: 0x2D}
	colorMuted   = flow.Color{R: 0x4A, G: 0x4A, B: 0x4A}
	colorLine    = flow.Color{R: 0xCC, G: 0xCC, B: 0xCC}
	colorContact = flow.Color{R: 0x55, G: 0x55, B: 0x55}
)

// Spacing constants in points.
var (
	gapAfterName      = 2 * types.MmToPt
	gapBeforeSection  = 5.5 * types.MmToPt
	gapBeforeRule     = 1.5 * types.MmToPt
	gapAfterRule      = 3 * types.MmToPt
	gapAfterRole      = 2.5 * types.MmToPt
	gapAfterEntry     = 2 * types.MmToPt
	dateColumnWidth   = 22 * types.MmToPt
	labelColumnGap    = 10.0
	bulletIndent      = 9.0
	dividerThickness  = 0.5
)

// Theme is the resolved style table for one compile: every text style the
// section builders emit, bound to the configured font families.
type Theme struct {
	Name     flow.TextStyle
	Contact  flow.TextStyle
	Section  flow.TextStyle
	Summary  flow.TextStyle
	Body     flow.TextStyle
	Bullet   flow.TextStyle
	ExpTitle flow.TextStyle
	ExpDate  flow.TextStyle
	ProjName flow.TextStyle
	ProjDesc flow.TextStyle
	EduMain  flow.TextStyle
	EduDate  flow.TextStyle

	LineColor     flow.Color
	LetterSpacing float64
}

// NewTheme binds the original CV style table to the configured fonts.
func NewTheme(cfg *types.StyleConfig) *Theme {
	body := cfg.BodyFontFamily
	mono := cfg.MonoFontFamily

	return &Theme{
		Name: flow.TextStyle{
			Family: mono, Style: fonts.Bold, Size: 26, LineHeight: 30, Color: colorDark,
		},
		Contact: flow.TextStyle{
			Family: body, Style: fonts.Regular, Size: 9, LineHeight: 14, Color: colorContact,
		},
		Section: flow.TextStyle{
			Family: mono, Style: fonts.Bold, Size: 9.5, LineHeight: 13, Color: colorDark,
		},
		Summary: flow.TextStyle{
			Family: body, Style: fonts.Regular, Size: 9.5, LineHeight: 13.5, Color: colorText,
		},
		Body: flow.TextStyle{
			Family: body, Style: fonts.Regular, Size: 9.5, LineHeight: 13.5, Color: colorMuted,
		},
		Bullet: flow.TextStyle{
			Family: body, Style: fonts.Regular, Size: 9.5, LineHeight: 13.5, Color: colorMuted,
		},
		ExpTitle: flow.TextStyle{
			Family: body, Style: fonts.Bold, Size: 10.5, LineHeight: 14, Color: colorText,
		},
		ExpDate: flow.TextStyle{
			Family: body, Style: fonts.Regular, Size: 9.5, LineHeight: 14, Color: colorMuted, Align: flow.AlignRight,
		},
		ProjName: flow.TextStyle{
			Family: body, Style: fonts.Bold, Size: 10, LineHeight: 14, Color: colorText,
		},
		ProjDesc: flow.TextStyle{
			Family: body, Style: fonts.Regular, Size: 9.5, LineHeight: 13, Color: colorMuted,
		},
		EduMain: flow.TextStyle{
			Family: body, Style: fonts.Bold, Size: 10, LineHeight: 14, Color: colorText,
		},
		EduDate: flow.TextStyle{
			Family: body, Style: fonts.Regular, Size: 10, LineHeight: 14, Color: colorMuted, Align: flow.AlignRight,
		},

		LineColor:     colorLine,
		LetterSpacing: cfg.HeadingLetterSpacingPt,
	}
}
