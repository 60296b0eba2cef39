package textwrap

import (
	"strings"
	"testing"
)

func TestWrap_PacksWords(t *testing.T) {
	lines := Wrap("Global Export and Import Trading Company Limited", 35)
	if len(lines) != 2 {
		t.Fatalf("got %d lines want 2: %v", len(lines), lines)
	}
	for _, l := range lines {
		if len(l) > 35 {
			t.Fatalf("line over 35 chars: %q", l)
		}
	}
	if lines[0] != "Global Export and Import Trading" {
		t.Fatalf("first line got %q", lines[0])
	}
}

func TestWrap_HardSplitsLongRuns(t *testing.T) {
	run := strings.Repeat("X", 140)
	lines := Wrap(run, 35)
	if len(lines) != 4 {
		t.Fatalf("140-char run: got %d lines want 4", len(lines))
	}
	for _, l := range lines {
		if len(l) != 35 {
			t.Fatalf("hard-split line length %d want 35", len(l))
		}
	}
}

func TestWrap_CollapsesWhitespace(t *testing.T) {
	lines := Wrap("  Invoice \t 123  ", 35)
	if len(lines) != 1 || lines[0] != "Invoice 123" {
		t.Fatalf("got %v", lines)
	}
}

func TestWrap_Empty(t *testing.T) {
	if lines := Wrap("", 35); len(lines) != 0 {
		t.Fatalf("empty input produced %v", lines)
	}
}

func TestFit_Boundary(t *testing.T) {
	exact := strings.Repeat("A", 140)
	lines, truncated := Fit(exact, 35, 4)
	if truncated {
		t.Fatalf("exactly 4 lines must not truncate")
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines want 4", len(lines))
	}

	over := strings.Repeat("A", 141)
	lines, truncated = Fit(over, 35, 4)
	if !truncated {
		t.Fatalf("141 chars must truncate")
	}
	if len(lines) != 4 {
		t.Fatalf("truncated result got %d lines want 4", len(lines))
	}
}
