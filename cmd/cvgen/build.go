package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-compiler/internal/compile"
	"github.com/jonathan/cv-compiler/internal/config"
	"github.com/jonathan/cv-compiler/internal/fonts"
	"github.com/jonathan/cv-compiler/internal/observability"
	"github.com/jonathan/cv-compiler/internal/schemas"
	"github.com/jonathan/cv-compiler/internal/types"
)

var buildCommand = &cobra.Command{
	Use:   "build <resume.json> [more.json ...]",
	Short: "Compile résumé JSON files into PDFs",
	Long: `Validates each résumé JSON file against the record schema, compiles it, and
writes the resulting PDF next to the input (or to --output / the configured
output directory). Multiple inputs compile concurrently.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuildCmd,
}

var (
	buildConfigPath    string
	buildOutput        string
	buildFontDir       string
	buildPageSize      string
	buildLetterSpacing float64
	buildVerbose       bool
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildOutput, "output", "o", "", "Output PDF path (single input only; default <input>_cv.pdf)")
	buildCommand.Flags().StringVar(&buildPageSize, "page-size", "", "Page size: Letter or A4 (default A4)")
	buildCommand.Flags().Float64Var(&buildLetterSpacing, "letter-spacing", -1, "Heading letter spacing in points (default 3.5)")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed compile information")

	// Font directory can be passed as a flag, or read from env var CVGEN_FONT_DIR
	buildCommand.Flags().StringVar(&buildFontDir, "font-dir", "", "Directory with Noto TTF files (optional, defaults to CVGEN_FONT_DIR env var; built-in fonts are used otherwise)")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, args []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Merge CLI flags over config values
	if cmd.Flags().Changed("page-size") {
		cfg.PageSize = buildPageSize
	}
	if cmd.Flags().Changed("letter-spacing") {
		spacing := buildLetterSpacing
		cfg.HeadingLetterSpacingPt = &spacing
	}
	if cmd.Flags().Changed("font-dir") {
		cfg.FontDir = buildFontDir
	} else if cfg.FontDir == "" {
		cfg.FontDir = os.Getenv("CVGEN_FONT_DIR")
	}
	if buildVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if buildOutput != "" && len(args) > 1 {
		return fmt.Errorf("--output is only valid with a single input file")
	}

	// Step 3: Load fonts once; the registry is shared read-only across all
	// concurrent compiles.
	registry := fonts.NewRegistry()
	if err := fonts.LoadBuiltin(registry); err != nil {
		return fmt.Errorf("failed to load built-in fonts: %w", err)
	}
	if cfg.FontDir != "" {
		if err := fonts.LoadDirectory(registry, fonts.NotoManifest(cfg.FontDir)); err != nil {
			return fmt.Errorf("failed to load fonts from %s: %w", cfg.FontDir, err)
		}
	}

	style := cfg.StyleConfig()

	// Step 4: Compile every input; each gets an independent document.
	type buildOutcome struct {
		record *types.ResumeRecord
		result *compile.Result
		output string
	}
	outcomes := make([]buildOutcome, len(args))
	var mu sync.Mutex

	var g errgroup.Group
	for i, input := range args {
		i, input := i, input
		g.Go(func() error {
			record, result, outPath, err := buildOne(input, buildOutput, &cfg, &style, registry)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			mu.Lock()
			outcomes[i] = buildOutcome{record: record, result: result, output: outPath}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, o := range outcomes {
		if cfg.Verbose {
			printer.PrintRecordSummary(o.record)
			printer.PrintCompileResult(o.result, o.output)
		} else {
			fmt.Printf("CV saved to: %s\n", o.output)
		}
	}
	return nil
}

// buildOne validates, compiles and writes a single input file.
func buildOne(input, explicitOutput string, cfg *config.Config, style *types.StyleConfig, registry *fonts.Registry) (*types.ResumeRecord, *compile.Result, string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to read input: %w", err)
	}

	if err := schemas.ValidateResume(data); err != nil {
		return nil, nil, "", err
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil, "", fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	result, err := compile.Compile(&record, style, registry)
	if err != nil {
		return nil, nil, "", err
	}

	outPath := explicitOutput
	if outPath == "" {
		outPath = defaultOutputPath(input, cfg.OutDir)
	}
	if err := os.WriteFile(outPath, result.PDF, 0644); err != nil {
		return nil, nil, "", fmt.Errorf("failed to write PDF: %w", err)
	}

	return &record, result, outPath, nil
}

// defaultOutputPath derives "<stem>_cv.pdf" from the input file name, placed
// in outDir when configured and beside the input otherwise.
func defaultOutputPath(input, outDir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(input)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, stem+"_cv.pdf")
}
