// Package textutil provides small text-formatting helpers for help output.
package textutil

import "strings"

// Wrap splits text into lines of at most width characters, breaking on
// whitespace. Runs of whitespace collapse to a single space. A word longer
// than width is left intact on its own line. Returns nil for empty text.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
