// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/review-scripter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

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

// PrintAnalysis outputs a human-readable summary of the review analysis.
func (p *Printer) PrintAnalysis(analysis *types.AnalysisResult) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Reviews analyzed: %d\n", analysis.ReviewCount))
	sb.WriteString(fmt.Sprintf("Sentiment avg:    %.3f (pos=%d neu=%d neg=%d)\n",
		analysis.Sentiment.Average,
		analysis.Sentiment.PositiveHits,
		analysis.Sentiment.NeutralHits,
		analysis.Sentiment.NegativeHits))

	if len(analysis.Keywords) > 0 {
		sb.WriteString("\nTop phrases:\n")
		count := min(len(analysis.Keywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Keywords[i]))
		}
		if len(analysis.Keywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Keywords)-maxItemsToShow))
		}
	}

	if len(analysis.Themes) > 0 {
		sb.WriteString("\nThemes:\n")
		for _, theme := range analysis.Themes {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", theme.Label, strings.Join(theme.Terms, ", ")))
		}
	}

	p.printBox("REVIEW ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScript outputs the generated four-part script.
func (p *Printer) PrintScript(output *types.Output) {
	if output == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Product: %s\n", output.ProductName))
	sb.WriteString(fmt.Sprintf("Mode:    %s\n", output.Mode))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("HEADLINE: %s\n", output.Script.Headline))
	sb.WriteString(fmt.Sprintf("HOOK:     %s\n", output.Script.Hook))
	sb.WriteString("BODY:\n")
	for _, line := range strings.Split(output.Script.Body, "\n") {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}
	sb.WriteString(fmt.Sprintf("CTA:      %s\n", output.Script.CTA))

	if len(output.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range output.Warnings {
			sb.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	p.printBox("MARKETING SCRIPT", strings.TrimSuffix(sb.String(), "\n"))
}
