// Package stats contains lifetime statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/davelt/healthtui/internal/model"
)

const sparkChars = " .:-=+*#%@"

const terminalWidthBackup = 80

// Accuracy computes the correct/total ratio, with an empty tally mapping to
// zero instead of a division failure.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints overall quiz totals for the report window.
func RenderSummary(w io.Writer, report Report) error {
	if len(report.Aggregates) == 0 {
		_, err := fmt.Fprintln(w, "No quiz attempts recorded.")
		return err
	}
	var correct, total int
	for _, agg := range report.Aggregates {
		correct += agg.Correct
		total += agg.Total
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Topics: %d\n", len(report.Aggregates)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Attempts: %d\n", total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Correct: %d\n", correct); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.1f%%\n", Accuracy(correct, total)*100); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTopics prints the per-topic score table.
func RenderTopics(w io.Writer, aggs []model.TopicAggregate) error {
	if len(aggs) == 0 {
		return nil
	}
	headers := []string{"Topic", "Correct", "Total", "Accuracy"}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, []string{
			agg.TopicKey,
			fmt.Sprintf("%d", agg.Correct),
			fmt.Sprintf("%d", agg.Total),
			fmt.Sprintf("%.1f%%", Accuracy(agg.Correct, agg.Total)*100),
		})
	}
	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true})
	if _, err := fmt.Fprintln(w, "Per-topic scores"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTrend prints an accuracy sparkline over the newest quiz attempts,
// clipped to the terminal width.
func RenderTrend(w io.Writer, results []bool, window int) error {
	return renderTrendWithWidth(w, results, window, terminalWidth())
}

func renderTrendWithWidth(w io.Writer, results []bool, window, totalWidth int) error {
	if len(results) < 2 {
		return nil
	}
	values := make([]float64, len(results))
	for i, ok := range results {
		if ok {
			values[i] = 1
		}
	}
	smoothed := MovingAverage(values, window)
	label := "Accuracy trend: "
	room := totalWidth - len(label)
	if room < 1 {
		room = 1
	}
	if len(smoothed) > room {
		smoothed = smoothed[len(smoothed)-room:]
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", label, Sparkline(smoothed)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints the archived activity log, newest last.
func RenderHistory(w io.Writer, activities []model.StoredActivity) error {
	if len(activities) == 0 {
		return nil
	}
	headers := []string{"When", "Kind", "Subject", "Result"}
	rows := make([][]string, 0, len(activities))
	for _, act := range activities {
		result := ""
		if act.Kind == model.ActivityQuiz {
			result = "wrong"
			if act.Correct {
				result = "correct"
			}
		}
		rows = append(rows, []string{
			act.At.Local().Format(time.DateTime),
			string(act.Kind),
			act.Subject,
			result,
		})
	}
	lines := formatTable(headers, rows, nil)
	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
