package stats

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davelt/healthtui/internal/model"
	"github.com/davelt/healthtui/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "healthtui.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	entries := []model.HistoryEntry{
		{Kind: model.ActivityLearn, Subject: "sleep", At: base},
		{Kind: model.ActivityQuiz, Subject: "diabetes", Correct: true, At: base.Add(1 * time.Minute)},
		{Kind: model.ActivityQuiz, Subject: "diabetes", Correct: true, At: base.Add(2 * time.Minute)},
		{Kind: model.ActivityQuiz, Subject: "diabetes", Correct: false, At: base.Add(3 * time.Minute)},
		{Kind: model.ActivityQuiz, Subject: "sleep", Correct: true, At: base.Add(4 * time.Minute)},
		{Kind: model.ActivityMyth, Subject: "sugar", At: base.Add(5 * time.Minute)},
	}
	if err := st.InsertActivities(context.Background(), entries); err != nil {
		t.Fatalf("insert activities: %v", err)
	}
	return st
}

func TestBuildReport(t *testing.T) {
	st := seededStore(t)

	report, err := BuildReport(context.Background(), st, model.StatsConfig{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Aggregates) != 2 {
		t.Fatalf("expected 2 topic aggregates, got %d", len(report.Aggregates))
	}
	if report.Aggregates[0].TopicKey != "diabetes" || report.Aggregates[0].Correct != 2 || report.Aggregates[0].Total != 3 {
		t.Fatalf("unexpected diabetes aggregate: %+v", report.Aggregates[0])
	}
	if len(report.Activities) != 6 {
		t.Fatalf("expected 6 activities, got %d", len(report.Activities))
	}
	if len(report.Trend) != 4 {
		t.Fatalf("expected 4 trend points, got %d", len(report.Trend))
	}
}

func TestBuildReportTopicFilter(t *testing.T) {
	st := seededStore(t)

	report, err := BuildReport(context.Background(), st, model.StatsConfig{Topic: "diabetes"})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Aggregates) != 1 {
		t.Fatalf("expected 1 aggregate, got %d", len(report.Aggregates))
	}
	if report.Aggregates[0].Total != 3 {
		t.Fatalf("expected 3 attempts, got %d", report.Aggregates[0].Total)
	}
	for _, act := range report.Activities {
		if act.Subject != "diabetes" {
			t.Fatalf("unexpected subject in filtered report: %q", act.Subject)
		}
	}
}

func TestRenderReport(t *testing.T) {
	st := seededStore(t)

	report, err := BuildReport(context.Background(), st, model.StatsConfig{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	var b strings.Builder
	if err := Render(&b, report, 5); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Summary", "Attempts: 4", "Per-topic scores", "diabetes", "Accuracy trend:", "History"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var b strings.Builder
	if err := RenderSummary(&b, Report{}); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(b.String(), "No quiz attempts recorded.") {
		t.Fatalf("unexpected output: %q", b.String())
	}
}
