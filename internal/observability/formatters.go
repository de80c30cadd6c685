// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-compiler/internal/compile"
	"github.com/jonathan/cv-compiler/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecordSummary outputs a human-readable summary of the loaded record.
func (p *Printer) PrintRecordSummary(rec *types.ResumeRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", rec.Contact.Name))
	sb.WriteString(fmt.Sprintf("Skills:     %d categories\n", len(rec.Skills)))

	roles := 0
	breaks := 0
	for _, emp := range rec.Experience {
		roles += len(emp.Roles)
		if emp.PageBreakAfter {
			breaks++
		}
	}
	for _, proj := range rec.Projects {
		if proj.PageBreakAfter {
			breaks++
		}
	}
	for _, edu := range rec.Education {
		if edu.PageBreakAfter {
			breaks++
		}
	}
	sb.WriteString(fmt.Sprintf("Experience: %d employers, %d roles\n", len(rec.Experience), roles))
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(rec.Projects)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(rec.Education)))
	sb.WriteString(fmt.Sprintf("Forced page breaks: %d", breaks))

	p.printBox("Resume Record", sb.String())
}

// PrintCompileResult outputs the statistics of a finished compile.
func (p *Printer) PrintCompileResult(result *compile.Result, outputPath string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages:      %d\n", result.PageCount))
	sb.WriteString(fmt.Sprintf("Flow units: %d\n", result.UnitCount))
	sb.WriteString(fmt.Sprintf("Bytes:      %d\n", len(result.PDF)))
	sb.WriteString(fmt.Sprintf("Output:     %s", outputPath))

	p.printBox("Compile Result", sb.String())
}
