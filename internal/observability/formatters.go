// Package observability provides logging and formatted console output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// pathSeparator joins the segments of a violation path
	pathSeparator = " -> "
)

// Printer handles formatted output of command results
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens a line to fit the box, counting runes rather than bytes
func truncate(line string) string {
	limit := boxWidth - 4
	if utf8.RuneCountInString(line) <= limit {
		return line
	}
	runes := []rune(line)
	return string(runes[:limit-3]) + "..."
}

// ValidationSummary describes a CV file that passed schema validation
type ValidationSummary struct {
	File           string
	Format         string
	Name           string
	WorkExperience int
	Education      int
	Skills         int
}

// PrintValidationSummary outputs the detected format and section counts
func (p *Printer) PrintValidationSummary(summary ValidationSummary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Format:          %s\n", strings.ToUpper(summary.Format)))
	if summary.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:            %s\n", summary.Name))
	}
	sb.WriteString(fmt.Sprintf("Work experience: %d\n", summary.WorkExperience))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", summary.Education))
	sb.WriteString(fmt.Sprintf("Skills:          %d\n", summary.Skills))

	p.printBox("VALID: "+summary.File, sb.String())
}

// Violation is a single schema violation for display
type Violation struct {
	Message string
	Path    []string
}

// PrintViolations outputs the first violation followed by any others
func (p *Printer) PrintViolations(file string, violations []Violation) {
	if len(violations) == 0 {
		return
	}

	var sb strings.Builder
	first := violations[0]
	sb.WriteString(fmt.Sprintf("Error: %s\n", first.Message))
	sb.WriteString(fmt.Sprintf("Path:  %s\n", FormatPath(first.Path)))

	rest := violations[1:]
	if len(rest) > 0 {
		sb.WriteString("\nAlso:\n")
		count := min(len(rest), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", FormatPath(rest[i].Path), rest[i].Message))
		}
		if len(rest) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rest)-maxItemsToShow))
		}
	}

	p.printBox("INVALID: "+file, sb.String())
}

// FormatPath joins path segments with " -> ", or returns "(root)" for an empty path
func FormatPath(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, pathSeparator)
}

// PrintGenerated reports a written document
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGenerated(path string) {
	fmt.Fprintf(p.out, "CV saved as %s\n", path)
}

// PrintConverted reports a completed format conversion
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintConverted(input, output, format string) {
	fmt.Fprintf(p.out, "Converted %s to %s (%s)\n", input, output, strings.ToUpper(format))
}
