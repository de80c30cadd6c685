package fonts

import (
	"os"
	"path/filepath"
)

// FontFile names one font program on disk and the family/style it provides.
type FontFile struct {
	Family string
	Style  Style
	Path   string
}

// NotoManifest returns the font files the original CV design loads from a
// Noto font directory: the proportional NotoSans family in regular, bold and
// italic, and the fixed-width NotoSansMono family in regular and bold.
func NotoManifest(dir string) []FontFile {
	return []FontFile{
		{Family: "NotoSans", Style: Regular, Path: filepath.Join(dir, "NotoSans-Regular.ttf")},
		{Family: "NotoSans", Style: Bold, Path: filepath.Join(dir, "NotoSans-Bold.ttf")},
		{Family: "NotoSans", Style: Italic, Path: filepath.Join(dir, "NotoSans-Italic.ttf")},
		{Family: "NotoSans", Style: BoldItalic, Path: filepath.Join(dir, "NotoSans-BoldItalic.ttf")},
		{Family: "NotoSansMono", Style: Regular, Path: filepath.Join(dir, "NotoSansMono-Regular.ttf")},
		{Family: "NotoSansMono", Style: Bold, Path: filepath.Join(dir, "NotoSansMono-Bold.ttf")},
	}
}

// LoadDirectory reads each manifest entry from disk and registers it.
// Loading stops at the first failure; the registry keeps the faces loaded so
// far, which matters only for error reporting since callers treat a load
// failure at startup as fatal.
func LoadDirectory(r *Registry, files []FontFile) error {
	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return &LoadError{Path: f.Path, Cause: err}
		}
		if _, err := r.Register(f.Family, f.Style, data); err != nil {
			return err
		}
	}
	return nil
}
