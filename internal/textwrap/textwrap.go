// Package textwrap implements the line wrapping used by tagged MT fields:
// words are packed into lines of a fixed width, runs longer than the width
// are hard-split, and a field carries at most a fixed number of lines.
package textwrap

import "strings"

// Wrap breaks s into lines of at most width characters. Whitespace between
// words collapses to a single space; a word longer than width is split at
// width boundaries.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		for len(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		if word == "" {
			continue
		}
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Fit wraps s and caps the result at maxLines. The second return reports
// whether content was dropped to fit.
func Fit(s string, width, maxLines int) ([]string, bool) {
	lines := Wrap(s, width)
	if len(lines) <= maxLines {
		return lines, false
	}
	return lines[:maxLines], true
}
