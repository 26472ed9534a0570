package tui

import (
	"strings"
	"testing"
)

func TestWrapTextBreaksOnWords(t *testing.T) {
	out := wrapText("one two three four", 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	for _, line := range lines {
		if len(line) > 9 {
			t.Errorf("line too long: %q", line)
		}
	}
	if lines[0] != "one two" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
}

func TestWrapTextLongWord(t *testing.T) {
	out := wrapText("abcdefghij", 4)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 4 {
			t.Errorf("chunk too long: %q", line)
		}
	}
}

func TestWrapTextPreservesParagraphs(t *testing.T) {
	out := wrapText("first\nsecond", 20)
	if out != "first\nsecond" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if out := wrapText("hello", 0); out != "hello" {
		t.Errorf("zero width should pass through, got %q", out)
	}
}

func TestFitLinesPadsAndClips(t *testing.T) {
	out := fitLines("a\nb\nc", 3, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("unexpected padded line: %q", lines[0])
	}

	out = fitLines("a", 3, 3)
	lines = strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[2] != "   " {
		t.Errorf("expected blank fill line, got %q", lines[2])
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("short", 10); got != "short" {
		t.Errorf("unexpected: %q", got)
	}
	if got := truncateLine("a long line here", 10); got != "a long ..." {
		t.Errorf("unexpected: %q", got)
	}
	if got := truncateLine("abcdef", 2); got != "ab" {
		t.Errorf("unexpected: %q", got)
	}
}
