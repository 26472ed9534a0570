package stats

import (
	"strings"
	"testing"
)

func TestAccuracy(t *testing.T) {
	cases := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{3, 4, 0.75},
		{4, 4, 1},
	}
	for _, tc := range cases {
		if got := Accuracy(tc.correct, tc.total); got != tc.want {
			t.Errorf("Accuracy(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 0, 1, 1}
	got := MovingAverage(values, 2)
	want := []float64{1, 0.5, 0.5, 1}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}

	passthrough := MovingAverage(values, 1)
	for i := range values {
		if passthrough[i] != values[i] {
			t.Fatalf("window 1 must pass through, got %v", passthrough)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Errorf("empty input should give empty sparkline, got %q", got)
	}
	flat := Sparkline([]float64{2, 2, 2})
	if len(flat) != 3 || strings.Count(flat, string(flat[0])) != 3 {
		t.Errorf("flat input should give uniform sparkline, got %q", flat)
	}
	line := Sparkline([]float64{0, 0.5, 1})
	if len(line) != 3 {
		t.Fatalf("expected 3 chars, got %q", line)
	}
	if line[0] != sparkChars[0] || line[2] != sparkChars[len(sparkChars)-1] {
		t.Errorf("extremes should map to extreme chars, got %q", line)
	}
}

func TestRenderTrendClipsToWidth(t *testing.T) {
	results := make([]bool, 100)
	for i := range results {
		results[i] = i%2 == 0
	}

	var b strings.Builder
	if err := renderTrendWithWidth(&b, results, 5, 40); err != nil {
		t.Fatalf("render trend: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines[0]) > 40 {
		t.Errorf("trend line exceeds width: %d chars", len(lines[0]))
	}
	if !strings.HasPrefix(lines[0], "Accuracy trend: ") {
		t.Errorf("unexpected trend line: %q", lines[0])
	}
}

func TestRenderTrendNeedsTwoPoints(t *testing.T) {
	var b strings.Builder
	if err := renderTrendWithWidth(&b, []bool{true}, 5, 80); err != nil {
		t.Fatalf("render trend: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("single point should render nothing, got %q", b.String())
	}
}
