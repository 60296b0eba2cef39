package swift

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	mtTagLine    = regexp.MustCompile(`^:([0-9]{2}[A-Z]?):(.*)$`)
	mt32APattern = regexp.MustCompile(`^[0-9]{6}[A-Z]{3}[0-9]+,[0-9]*$`)
)

// mtTagOrder is the required tag sequence; :70: is the only optional tag.
var mtTagOrder = []string{"20", "23B", "32A", "50K", "59", "70", "71A"}

// mtWrappedTags are the fields whose lines are capped at 35 characters.
var mtWrappedTags = map[string]bool{"50K": true, "59": true, "70": true}

type mtField struct {
	tag   string
	lines []string
}

// ValidateMT103 performs structural and lexical validation of MT-style text.
// It is independent of the generator and accepts hand-edited or externally
// supplied text. Valid is true iff the issue list is empty; issues come back
// in the order the checks ran, each naming the offending tag.
func ValidateMT103(text string) (bool, []string) {
	fields := parseMTFields(text)

	byTag := make(map[string][]mtField)
	for _, f := range fields {
		byTag[f.tag] = append(byTag[f.tag], f)
	}

	var issues []string

	// Mandatory tag presence; :70: is optional and never flagged when absent.
	for _, tag := range mtTagOrder {
		if tag == "70" {
			continue
		}
		if len(byTag[tag]) == 0 {
			issues = append(issues, fmt.Sprintf("missing mandatory tag :%s:", tag))
		}
	}

	for _, f := range byTag["32A"] {
		if !mt32APattern.MatchString(strings.Join(f.lines, "")) {
			issues = append(issues, "tag :32A: must be 6-digit date, 3-letter currency and comma-decimal amount")
		}
	}

	for _, f := range fields {
		if !mtWrappedTags[f.tag] {
			continue
		}
		for _, line := range f.lines {
			if len(line) > 35 {
				issues = append(issues, fmt.Sprintf("tag :%s: line exceeds 35 characters: %q", f.tag, line))
			}
		}
	}

	for _, tag := range mtTagOrder {
		if len(byTag[tag]) > 1 {
			issues = append(issues, fmt.Sprintf("tag :%s: appears %d times", tag, len(byTag[tag])))
		}
	}

	// Known tags, when present, must appear in the fixed order.
	rank := make(map[string]int, len(mtTagOrder))
	for i, tag := range mtTagOrder {
		rank[tag] = i
	}
	prev := -1
	for _, f := range fields {
		r, known := rank[f.tag]
		if !known {
			continue
		}
		if r < prev {
			issues = append(issues, fmt.Sprintf("tag :%s: out of order", f.tag))
		}
		if r > prev {
			prev = r
		}
	}

	return len(issues) == 0, issues
}

// parseMTFields splits the text into tagged fields. A line starting with a
// tag opens a field; following lines up to the next tag are its continuation
// lines. Unknown tags still terminate the preceding field.
func parseMTFields(text string) []mtField {
	var fields []mtField
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		if m := mtTagLine.FindStringSubmatch(line); m != nil {
			fields = append(fields, mtField{tag: m[1], lines: []string{m[2]}})
			continue
		}
		if line == "" || len(fields) == 0 {
			continue
		}
		last := &fields[len(fields)-1]
		last.lines = append(last.lines, line)
	}
	return fields
}
