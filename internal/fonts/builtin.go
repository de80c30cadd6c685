package fonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in family names registered by LoadBuiltin.
const (
	BuiltinBody = "Go"
	BuiltinMono = "Go Mono"
)

// LoadBuiltin registers the Go font families shipped with the module so the
// compiler works with no font files on disk. A font directory configured at
// startup can register additional families alongside these.
func LoadBuiltin(r *Registry) error {
	builtins := []struct {
		family string
		style  Style
		data   []byte
	}{
		{BuiltinBody, Regular, goregular.TTF},
		{BuiltinBody, Bold, gobold.TTF},
		{BuiltinBody, Italic, goitalic.TTF},
		{BuiltinBody, BoldItalic, gobolditalic.TTF},
		{BuiltinMono, Regular, gomono.TTF},
		{BuiltinMono, Bold, gomonobold.TTF},
	}
	for _, b := range builtins {
		if _, err := r.Register(b.family, b.style, b.data); err != nil {
			return err
		}
	}
	return nil
}
