// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/voice-onboarding/internal/catalog"
	"github.com/jonathan/voice-onboarding/internal/onboarding"
	"github.com/jonathan/voice-onboarding/internal/types"
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

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeResult(sb *strings.Builder, result types.ValidationResult) {
	if result.Valid {
		sb.WriteString(fmt.Sprintf("✓ %s\n", result.CleanedValue))
		return
	}
	sb.WriteString(fmt.Sprintf("✗ %s", result.ErrorCode))
	if result.SubCode != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", result.SubCode))
	}
	sb.WriteString("\n")
}

// PrintValidation outputs one validated answer and, when rejected, the message shown to the user.
func (p *Printer) PrintValidation(field string, result types.ValidationResult, message string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Field:    %s\n", field))
	sb.WriteString(fmt.Sprintf("Input:    %q\n", result.RawInput))
	sb.WriteString("\n")
	writeResult(&sb, result)
	if !result.Valid && message != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", message))
	}

	p.printBox("ANSWER VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatch outputs every result of a batch validation, sorted by field key.
func (p *Printer) PrintBatch(results map[string]types.ValidationResult) {
	if len(results) == 0 {
		return
	}

	keys := make([]string, 0, len(results))
	valid := 0
	for key, result := range results {
		keys = append(keys, key)
		if result.Valid {
			valid++
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Accepted %d of %d answers:\n\n", valid, len(results)))
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("%-16s ", key))
		writeResult(&sb, results[key])
	}

	p.printBox("BATCH VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIntent outputs a classified intent with the keyword that decided it.
func (p *Printer) PrintIntent(input string, result types.IntentResult, message string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input:    %q\n", input))
	sb.WriteString(fmt.Sprintf("Intent:   %s\n", result.Intent))
	if result.Keyword != "" {
		sb.WriteString(fmt.Sprintf("Keyword:  %s (token %d)\n", result.Keyword, result.Position))
	}
	if message != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", message))
	}

	p.printBox("INTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the nearest catalog entry found for a phrase.
func (p *Printer) PrintMatch(catalogName, phrase string, match types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog:  %s\n", catalogName))
	sb.WriteString(fmt.Sprintf("Phrase:   %q\n", phrase))
	sb.WriteString("\n")
	if match.Canonical == "" {
		sb.WriteString("No candidate found")
	} else {
		mark := "✗"
		if match.Matched {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s via %q\n", mark, match.Canonical, match.Alias))
		sb.WriteString(fmt.Sprintf("  Score: %.2f", match.Score))
	}

	p.printBox("CATALOG LOOKUP", sb.String())
}

// PrintCatalog outputs a catalog's threshold and its first canonical terms with their aliases.
func (p *Printer) PrintCatalog(c *catalog.Catalog) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Terms:     %d\n", c.Len()))
	sb.WriteString(fmt.Sprintf("Aliases:   %d\n", c.AliasCount()))
	sb.WriteString(fmt.Sprintf("Threshold: %.2f\n", c.Threshold()))
	sb.WriteString("\n")

	canonicals := c.Canonicals()
	count := min(len(canonicals), maxItemsToShow)
	for i := 0; i < count; i++ {
		aliases := strings.Join(c.AliasesOf(canonicals[i]), ", ")
		sb.WriteString(fmt.Sprintf("• %s\n", canonicals[i]))
		sb.WriteString(fmt.Sprintf("  [%s]\n", truncate(aliases, 40)))
	}
	if len(canonicals) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(canonicals)-maxItemsToShow))
	}

	p.printBox(strings.ToUpper(c.Name())+" CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInfo outputs which reference data the engine loaded.
func (p *Printer) PrintInfo(info onboarding.Info) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Loaded:   %s\n", info.LoadedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Fields:   %s\n", strings.Join(info.Fields, ", ")))
	sb.WriteString("\n")

	names := make([]string, 0, len(info.Catalogs))
	for name := range info.Catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	sb.WriteString("Catalogs:\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  • %-12s %d terms\n", name, info.Catalogs[name]))
	}

	sb.WriteString("\nSources:\n")
	for _, source := range info.Sources {
		sb.WriteString(fmt.Sprintf("  %s\n", source))
	}

	p.printBox("REFERENCE DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestions outputs the onboarding prompts in asking order.
func (p *Printer) PrintQuestions(questions []types.Question) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. [%s]\n", i+1, q.Key))
		sb.WriteString(fmt.Sprintf("   %s\n", q.Text))
	}

	p.printBox(fmt.Sprintf("QUESTIONS (%s)", questions[0].Locale), strings.TrimSuffix(sb.String(), "\n"))
}
