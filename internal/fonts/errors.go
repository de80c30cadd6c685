// Package fonts provides the font registry and glyph metrics used for layout measurement.
package fonts

import "fmt"

// NotFoundError indicates that a family/style combination was never registered.
// Layout cannot proceed without metrics, so callers must treat this as fatal.
type NotFoundError struct {
	Family string
	Style  Style
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("font not found: family %q style %q was never registered", e.Family, e.Style)
}

// ParseError indicates that font program bytes could not be parsed.
type ParseError struct {
	Family string
	Style  Style
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("font parse error: family %q style %q: %v", e.Family, e.Style, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// LoadError indicates that a font file could not be read from disk.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("font load error: %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
