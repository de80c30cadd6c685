// Package compile orchestrates a single document compile: it validates the
// record and style, builds the flow unit sequence, paginates it, and renders
// the result to PDF bytes. The compiler is stateless and reentrant;
// concurrent calls share only the read-mostly font registry.
package compile

import (
	"fmt"

	"github.com/jonathan/cv-compiler/internal/fonts"
	"github.com/jonathan/cv-compiler/internal/layout"
	"github.com/jonathan/cv-compiler/internal/rendering"
	"github.com/jonathan/cv-compiler/internal/sections"
	"github.com/jonathan/cv-compiler/internal/types"
	"github.com/jonathan/cv-compiler/internal/validation"
)

// Result is the output of one successful compile.
type Result struct {
	// PDF is the complete, openable document.
	PDF []byte
	// PageCount and UnitCount describe the laid-out document for reporting.
	PageCount int
	UnitCount int
}

// Compile turns a résumé record and style configuration into a finished PDF.
// A nil style uses the default configuration. Every failure aborts before
// any bytes are produced: there is no partial-document output. Failure
// modes: fonts.NotFoundError (missing face), validation.ShapeError (bad
// record shape), layout.OverflowError (atomic unit taller than a page),
// rendering.BackendError (output stage failed).
func Compile(rec *types.ResumeRecord, cfg *types.StyleConfig, reg *fonts.Registry) (*Result, error) {
	if cfg == nil {
		defaults := types.DefaultStyleConfig()
		cfg = &defaults
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style configuration: %w", err)
	}
	pageW, pageH, ok := cfg.PageDimensions()
	if !ok {
		return nil, fmt.Errorf("invalid style configuration: unknown page size %q", cfg.PageSize)
	}

	if err := validation.ValidateRecord(rec); err != nil {
		return nil, err
	}

	// Resolve every face the theme draws with before any layout work, so a
	// missing font fails fast instead of mid-layout.
	if err := resolveRequiredFaces(reg, cfg); err != nil {
		return nil, err
	}

	frame := layout.Frame{
		PageWidth:  pageW,
		PageHeight: pageH,
		Margins: layout.Margins{
			Top:    cfg.MarginsPt.Top,
			Right:  cfg.MarginsPt.Right,
			Bottom: cfg.MarginsPt.Bottom,
			Left:   cfg.MarginsPt.Left,
		},
	}

	theme := sections.NewTheme(cfg)
	builder := sections.NewBuilder(theme, reg, frame.ContentWidth())
	units, err := builder.BuildAll(rec)
	if err != nil {
		return nil, err
	}

	doc, err := layout.Paginate(units, frame, reg)
	if err != nil {
		return nil, err
	}

	backend := rendering.NewBackend(frame, reg, rendering.Metadata{
		Title:  "CV - " + rec.Contact.Name,
		Author: rec.Contact.Name,
	})
	pdf, err := backend.Render(doc)
	if err != nil {
		return nil, err
	}

	return &Result{
		PDF:       pdf,
		PageCount: len(doc.Pages),
		UnitCount: len(units),
	}, nil
}

// resolveRequiredFaces checks that every family/style combination the theme
// uses is registered.
func resolveRequiredFaces(reg *fonts.Registry, cfg *types.StyleConfig) error {
	required := []struct {
		family string
		style  fonts.Style
	}{
		{cfg.BodyFontFamily, fonts.Regular},
		{cfg.BodyFontFamily, fonts.Bold},
		{cfg.MonoFontFamily, fonts.Bold},
	}
	for _, r := range required {
		if _, err := reg.MetricsFor(r.family, r.style); err != nil {
			return err
		}
	}
	return nil
}
