package types

import (
	"github.com/go-playground/validator/v10"
)

// Page size names accepted by StyleConfig.PageSize.
const (
	PageSizeLetter = "Letter"
	PageSizeA4     = "A4"
)

// Conversion factor from millimeters to PostScript points.
const MmToPt = 72.0 / 25.4

// StyleConfig holds the recognized style options for a compile request.
// All dimensions are in points.
type StyleConfig struct {
	PageSize               string  `json:"pageSize" validate:"required,oneof=Letter A4"`
	MarginsPt              Margins `json:"marginsPt"`
	BodyFontFamily         string  `json:"bodyFontFamily" validate:"required"`
	MonoFontFamily         string  `json:"monoFontFamily" validate:"required"`
	HeadingLetterSpacingPt float64 `json:"headingLetterSpacingPt" validate:"gte=0"`
}

// Margins describes the page margins in points.
type Margins struct {
	Top    float64 `json:"top" validate:"gte=0"`
	Right  float64 `json:"right" validate:"gte=0"`
	Bottom float64 `json:"bottom" validate:"gte=0"`
	Left   float64 `json:"left" validate:"gte=0"`
}

// DefaultStyleConfig returns the style used by the original CV design:
// A4 pages, 22 mm left/right and 18 mm top/bottom margins, built-in font
// families, and 3.5 pt of heading letter spacing.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		PageSize: PageSizeA4,
		MarginsPt: Margins{
			Top:    18 * MmToPt,
			Right:  22 * MmToPt,
			Bottom: 18 * MmToPt,
			Left:   22 * MmToPt,
		},
		BodyFontFamily:         "Go",
		MonoFontFamily:         "Go Mono",
		HeadingLetterSpacingPt: 3.5,
	}
}

// Validate validates the StyleConfig using the validator.
func (c *StyleConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// PageDimensions returns the page width and height in points for the
// configured page size. The second return value is false for an
// unrecognized size name.
func (c *StyleConfig) PageDimensions() (width, height float64, ok bool) {
	switch c.PageSize {
	case PageSizeLetter:
		return 612, 792, true
	case PageSizeA4:
		return 595.28, 841.89, true
	default:
		return 0, 0, false
	}
}
