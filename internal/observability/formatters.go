// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/scoring"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxKeywordsToShow is the number of keywords displayed per list
	maxKeywordsToShow = 8
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScore outputs one scoring result under the given label.
func (p *Printer) PrintScore(label string, result scoring.Result) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:   %.2f%%\n", result.Percentage))
	sb.WriteString(fmt.Sprintf("Missing: %d keyword(s)\n", len(result.Missing)))
	sb.WriteString(keywordLines(result.Missing))

	p.printBox(label, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAIScore outputs the AI-assisted score, or its unavailability.
func (p *Printer) PrintAIScore(result scoring.AIResult) {
	if !result.Available {
		p.printBox("AI SCORE", "AI scoring unavailable")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:   %.2f%%\n", result.Score))
	sb.WriteString(keywordLines(result.Missing))

	p.printBox("AI SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReconciliation outputs the before/after summary of a run.
func (p *Printer) PrintReconciliation(summary scoring.Summary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Before:  %.2f%%\n", summary.ScoreBefore))
	sb.WriteString(fmt.Sprintf("After:   %.2f%%\n", summary.ScoreAfter))
	sb.WriteString(fmt.Sprintf("Delta:   %+.2f\n", summary.Delta))
	sb.WriteString("\n")

	if len(summary.KeywordsAdded) > 0 {
		sb.WriteString(fmt.Sprintf("Added (%d):\n", len(summary.KeywordsAdded)))
		sb.WriteString(keywordLines(summary.KeywordsAdded))
	}
	if len(summary.KeywordsSkipped) > 0 {
		sb.WriteString(fmt.Sprintf("Skipped (%d):\n", len(summary.KeywordsSkipped)))
		count := min(len(summary.KeywordsSkipped), maxKeywordsToShow)
		for i := 0; i < count; i++ {
			skipped := summary.KeywordsSkipped[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", skipped.Keyword, skipped.Reason))
		}
	}
	if len(summary.KeywordsStillMissing) > 0 {
		sb.WriteString(fmt.Sprintf("Still missing (%d):\n", len(summary.KeywordsStillMissing)))
		sb.WriteString(keywordLines(summary.KeywordsStillMissing))
	}

	p.printBox("RECONCILIATION", strings.TrimSuffix(sb.String(), "\n"))
}

// keywordLines formats up to maxKeywordsToShow keywords as bullet lines.
func keywordLines(keywords []string) string {
	var sb strings.Builder
	count := min(len(keywords), maxKeywordsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxKeywordsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxKeywordsToShow))
	}
	return sb.String()
}
