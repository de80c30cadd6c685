// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-compiler/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	FontDir string `json:"font_dir,omitempty"` // Directory holding Noto TTF files (optional; built-in fonts otherwise)
	OutDir  string `json:"out_dir,omitempty"`  // Directory for generated PDFs (defaults to the input's directory)

	// Style
	PageSize               string         `json:"page_size,omitempty"`                 // Letter or A4
	MarginsPt              *types.Margins `json:"margins_pt,omitempty"`                // Page margins in points
	BodyFontFamily         string         `json:"body_font_family,omitempty"`          // Proportional family name
	MonoFontFamily         string         `json:"mono_font_family,omitempty"`          // Fixed-width family name
	HeadingLetterSpacingPt *float64       `json:"heading_letter_spacing_pt,omitempty"` // Extra advance between heading glyphs

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed compile information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required values are not checked here; they are validated after merging
// with CLI flags.
func (c *Config) Validate() error {
	if c.PageSize != "" && c.PageSize != types.PageSizeLetter && c.PageSize != types.PageSizeA4 {
		return fmt.Errorf("config error: 'page_size' must be %q or %q", types.PageSizeLetter, types.PageSizeA4)
	}

	if c.MarginsPt != nil {
		m := c.MarginsPt
		if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
			return fmt.Errorf("config error: 'margins_pt' values must be non-negative")
		}
	}

	if c.HeadingLetterSpacingPt != nil && *c.HeadingLetterSpacingPt < 0 {
		return fmt.Errorf("config error: 'heading_letter_spacing_pt' must be non-negative")
	}

	if c.FontDir != "" {
		info, err := os.Stat(c.FontDir)
		if err != nil {
			return fmt.Errorf("config error: 'font_dir' %s: %w", c.FontDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: 'font_dir' %s is not a directory", c.FontDir)
		}
	}

	return nil
}

// StyleConfig resolves the configuration into a complete style: defaults
// first, config file values over them.
func (c *Config) StyleConfig() types.StyleConfig {
	style := types.DefaultStyleConfig()

	if c.PageSize != "" {
		style.PageSize = c.PageSize
	}
	if c.MarginsPt != nil {
		style.MarginsPt = *c.MarginsPt
	}
	if c.BodyFontFamily != "" {
		style.BodyFontFamily = c.BodyFontFamily
	}
	if c.MonoFontFamily != "" {
		style.MonoFontFamily = c.MonoFontFamily
	}
	if c.HeadingLetterSpacingPt != nil {
		style.HeadingLetterSpacingPt = *c.HeadingLetterSpacingPt
	}

	return style
}
