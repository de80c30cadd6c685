package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-compiler/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_AllFields(t *testing.T) {
	path := writeConfig(t, `{
		"out_dir": "/tmp/out",
		"page_size": "Letter",
		"margins_pt": {"top": 10, "right": 20, "bottom": 10, "left": 20},
		"body_font_family": "NotoSans",
		"mono_font_family": "NotoSansMono",
		"heading_letter_spacing_pt": 2.0,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
	assert.Equal(t, types.PageSizeLetter, cfg.PageSize)
	require.NotNil(t, cfg.MarginsPt)
	assert.Equal(t, 20.0, cfg.MarginsPt.Left)
	assert.Equal(t, "NotoSans", cfg.BodyFontFamily)
	require.NotNil(t, cfg.HeadingLetterSpacingPt)
	assert.Equal(t, 2.0, *cfg.HeadingLetterSpacingPt)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyObject(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{}`))

	require.NoError(t, err)
	assert.Empty(t, cfg.PageSize)
	assert.Nil(t, cfg.MarginsPt)
	assert.Nil(t, cfg.HeadingLetterSpacingPt)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{broken`))
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadPageSize(t *testing.T) {
	cfg := &Config{PageSize: "Tabloid"}
	assert.ErrorContains(t, cfg.Validate(), "'page_size'")
}

func TestValidate_NegativeMargin(t *testing.T) {
	cfg := &Config{MarginsPt: &types.Margins{Top: -1}}
	assert.ErrorContains(t, cfg.Validate(), "'margins_pt'")
}

func TestValidate_NegativeLetterSpacing(t *testing.T) {
	spacing := -0.5
	cfg := &Config{HeadingLetterSpacingPt: &spacing}
	assert.ErrorContains(t, cfg.Validate(), "'heading_letter_spacing_pt'")
}

func TestValidate_FontDirMustExist(t *testing.T) {
	cfg := &Config{FontDir: filepath.Join(t.TempDir(), "missing")}
	assert.ErrorContains(t, cfg.Validate(), "'font_dir'")
}

func TestValidate_FontDirMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fonts")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	cfg := &Config{FontDir: file}
	assert.ErrorContains(t, cfg.Validate(), "is not a directory")
}

func TestStyleConfig_EmptyConfigYieldsDefaults(t *testing.T) {
	cfg := &Config{}

	style := cfg.StyleConfig()

	assert.Equal(t, types.DefaultStyleConfig(), style)
}

func TestStyleConfig_OverlaysConfiguredValues(t *testing.T) {
	spacing := 0.0
	cfg := &Config{
		PageSize:               types.PageSizeLetter,
		MarginsPt:              &types.Margins{Top: 36, Right: 36, Bottom: 36, Left: 36},
		BodyFontFamily:         "NotoSans",
		HeadingLetterSpacingPt: &spacing,
	}

	style := cfg.StyleConfig()

	assert.Equal(t, types.PageSizeLetter, style.PageSize)
	assert.Equal(t, 36.0, style.MarginsPt.Top)
	assert.Equal(t, "NotoSans", style.BodyFontFamily)
	assert.Equal(t, "Go Mono", style.MonoFontFamily, "unset fields keep defaults")
	assert.Equal(t, 0.0, style.HeadingLetterSpacingPt, "explicit zero overrides the default")
}
