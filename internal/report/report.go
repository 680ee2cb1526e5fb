// Package report renders analysis results for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Dmytrostu/zetacrush-backend/internal/analyzer"
)

// sampleMaxLength caps per-entity sample passages in the terminal report.
const sampleMaxLength = 220

// Render writes a human-readable report for one analyzed book.
func Render(w io.Writer, title string, res analyzer.Result) {
	banner(w, fmt.Sprintf("The main characters/places/things in %s", title))

	if len(res.Details) == 0 {
		fmt.Fprintln(w, "  (none found)")
	}
	for i, d := range res.Details {
		fmt.Fprintf(w, "%2d. %s — %d occurrences across %d passages\n",
			i+1, d.Name, d.Occurrences, d.Passages)
		if d.Sample != "" {
			fmt.Fprintf(w, "    %s\n", Truncate(d.Sample, sampleMaxLength))
		}
	}
	fmt.Fprintln(w)

	banner(w, "Synopsis")
	if len(res.Synopsis) == 0 {
		fmt.Fprintln(w, "  (no dramatic passages found)")
	}
	for _, passage := range res.Synopsis {
		fmt.Fprintf(w, "  %s\n\n", passage)
	}

	banner(w, "Easter Egg")
	if res.EasterEgg == "" {
		fmt.Fprintln(w, "  No interesting first passage found.")
	} else {
		fmt.Fprintf(w, "  %s\n", res.EasterEgg)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Document: %d characters, %d passages\n", res.CharCount, res.PassageCount)
}

// RenderJSON writes the result as indented JSON.
func RenderJSON(w io.Writer, res analyzer.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func banner(w io.Writer, heading string) {
	line := strings.Repeat("*", 67)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, line)
}

// Truncate shortens text to at most maxLen runes, breaking at a word
// boundary and appending an ellipsis.
func Truncate(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	truncated := string(runes[:maxLen-3])

	// Find last space to avoid cutting mid-word
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > (maxLen-3)/2 { // Only use word boundary if not too far back
		truncated = truncated[:lastSpace]
	}

	return strings.TrimRight(truncated, " .,;:!?") + "..."
}
