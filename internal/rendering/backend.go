package rendering

import (
	"bytes"
	"sort"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/fonts"
	"github.com/jonathan/cv-compiler/internal/layout"
)

// pinnedDate is written as the PDF creation and modification date so that
// compiling the same record twice yields byte-identical output.
var pinnedDate = time.Unix(0, 0).UTC()

// Metadata is written to the PDF information dictionary.
type Metadata struct {
	Title  string
	Author string
}

// Backend renders a laid-out document into PDF bytes. It implements
// flow.Surface; one Backend serves exactly one document and is not reused.
type Backend struct {
	pdf *fpdf.Fpdf
	reg *fonts.Registry
}

// NewBackend creates a backend for the given frame geometry. Auto page
// breaking is disabled (pagination is the engine's job, the backend must
// never move content) and the cell margin is zeroed so the content
// rectangle carries no inset beyond the declared margins.
func NewBackend(frame layout.Frame, reg *fonts.Registry, meta Metadata) *Backend {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: frame.PageWidth, Ht: frame.PageHeight},
	})
	pdf.SetMargins(frame.Margins.Left, frame.Margins.Top, frame.Margins.Right)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCreationDate(pinnedDate)
	pdf.SetModificationDate(pinnedDate)
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}

	return &Backend{pdf: pdf, reg: reg}
}

// Render embeds the fonts the document draws with, draws every page, and
// returns the finished PDF bytes. Any backend failure aborts before bytes
// are returned; there is no partial output.
func (b *Backend) Render(doc *layout.Document) ([]byte, error) {
	// Only referenced faces are embedded, in a stable order so object
	// numbering, and with it the output bytes, stay deterministic.
	faces, err := b.referencedFaces(doc)
	if err != nil {
		return nil, err
	}
	sort.Slice(faces, func(i, j int) bool {
		if faces[i].Family != faces[j].Family {
			return faces[i].Family < faces[j].Family
		}
		return faces[i].Style < faces[j].Style
	})
	for _, face := range faces {
		b.pdf.AddUTF8FontFromBytes(face.Family, fpdfStyle(face.Style), face.Data)
	}

	for _, page := range doc.Pages {
		b.pdf.AddPage()
		for _, placed := range page.Units {
			if err := placed.Unit.Render(b, b.reg, placed.X, placed.Y, placed.Width); err != nil {
				return nil, err
			}
		}
	}

	if b.pdf.Err() {
		return nil, &BackendError{Message: "drawing failed", Cause: b.pdf.Error()}
	}

	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, &BackendError{Message: "failed to write document bytes", Cause: err}
	}
	return buf.Bytes(), nil
}

// referencedFaces resolves every family/style combination the document's
// units draw with, deduplicated, so unused registered faces are not
// embedded in the output.
func (b *Backend) referencedFaces(doc *layout.Document) ([]*fonts.Face, error) {
	type faceKey struct {
		family string
		style  fonts.Style
	}
	seen := make(map[faceKey]bool)
	var faces []*fonts.Face

	add := func(family string, style fonts.Style) error {
		k := faceKey{family: family, style: style}
		if family == "" || seen[k] {
			return nil
		}
		seen[k] = true
		face, err := b.reg.Resolve(family, style)
		if err != nil {
			return err
		}
		faces = append(faces, face)
		return nil
	}

	for _, page := range doc.Pages {
		for _, placed := range page.Units {
			u := placed.Unit
			switch u.Kind {
			case flow.Paragraph, flow.BulletItem, flow.SpacedHeading:
				if err := add(u.Style.Family, u.Style.Style); err != nil {
					return nil, err
				}
			case flow.ColumnRow:
				for _, c := range u.Cells {
					if err := add(c.Style.Family, c.Style.Style); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return faces, nil
}

// SetFont selects the face for subsequent text operations.
func (b *Backend) SetFont(family string, style fonts.Style, size float64) error {
	b.pdf.SetFont(family, fpdfStyle(style), size)
	if b.pdf.Err() {
		return &BackendError{Message: "failed to select font " + family, Cause: b.pdf.Error()}
	}
	return nil
}

// SetTextColor sets the fill color for subsequent text operations.
func (b *Backend) SetTextColor(c flow.Color) {
	b.pdf.SetTextColor(c.R, c.G, c.B)
}

// Text draws s with its baseline at y.
func (b *Backend) Text(x, y float64, s string) {
	b.pdf.Text(x, y, s)
}

// Line draws a stroked line segment.
func (b *Backend) Line(x1, y1, x2, y2, width float64, c flow.Color) {
	b.pdf.SetDrawColor(c.R, c.G, c.B)
	b.pdf.SetLineWidth(width)
	b.pdf.Line(x1, y1, x2, y2)
}

// DrawGlyphRun is the low-level escape path. The backend exposes no
// character-spacing control, so each glyph is emitted as its own positioned
// text instruction on the current page's content stream, honoring the
// glyph's advance override. The font, size and color established through
// SetFont/SetTextColor apply unchanged, the document's object bookkeeping is
// never bypassed, and the drawing cursor is left at the returned position.
func (b *Backend) DrawGlyphRun(x, y float64, run []flow.Glyph) float64 {
	cx := x
	for _, g := range run {
		b.pdf.Text(cx, y, string(g.Rune))
		cx += g.Advance
	}
	b.pdf.SetXY(cx, y)
	return cx
}

// fpdfStyle maps a registry style to the backend's style string.
func fpdfStyle(s fonts.Style) string {
	switch s {
	case fonts.Bold:
		return "B"
	case fonts.Italic:
		return "I"
	case fonts.BoldItalic:
		return "BI"
	default:
		return ""
	}
}
