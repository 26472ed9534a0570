package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/davelt/healthtui/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func seedEntries(base time.Time) []model.HistoryEntry {
	return []model.HistoryEntry{
		{Kind: model.ActivityLearn, Subject: "sleep", At: base},
		{Kind: model.ActivityQuiz, Subject: "diabetes", Correct: true, At: base.Add(1 * time.Minute)},
		{Kind: model.ActivityQuiz, Subject: "diabetes", Correct: false, At: base.Add(2 * time.Minute)},
		{Kind: model.ActivityMyth, Subject: "sugar", At: base.Add(3 * time.Minute)},
		{Kind: model.ActivityQuiz, Subject: "sleep", Correct: true, At: base.Add(4 * time.Minute)},
	}
}

func TestInsertAndListActivities(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	if err := s.InsertActivities(ctx, seedEntries(base)); err != nil {
		t.Fatalf("insert activities: %v", err)
	}

	all, err := s.ListActivities(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 activities, got %d", len(all))
	}
	if !all[0].At.Equal(base) {
		t.Errorf("expected oldest first, got %v", all[0].At)
	}
	if all[1].Kind != model.ActivityQuiz || !all[1].Correct {
		t.Errorf("unexpected second entry: %+v", all[1])
	}
}

func TestListActivitiesFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	if err := s.InsertActivities(ctx, seedEntries(base)); err != nil {
		t.Fatalf("insert activities: %v", err)
	}

	diabetes, err := s.ListActivities(ctx, model.StatsConfig{Topic: "diabetes"})
	if err != nil {
		t.Fatalf("list by topic: %v", err)
	}
	if len(diabetes) != 2 {
		t.Fatalf("expected 2 diabetes entries, got %d", len(diabetes))
	}

	since := base.Add(3 * time.Minute)
	recent, err := s.ListActivities(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries since cutoff, got %d", len(recent))
	}

	last, err := s.ListActivities(ctx, model.StatsConfig{Last: 3})
	if err != nil {
		t.Fatalf("list last: %v", err)
	}
	if len(last) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(last))
	}
	if last[0].At.After(last[2].At) {
		t.Errorf("expected oldest first within window")
	}
	if last[2].Subject != "sleep" {
		t.Errorf("expected newest entry to be sleep quiz, got %q", last[2].Subject)
	}
}

func TestTopicAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	if err := s.InsertActivities(ctx, seedEntries(base)); err != nil {
		t.Fatalf("insert activities: %v", err)
	}

	aggs, err := s.TopicAggregates(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("topic aggregates: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(aggs))
	}
	// Sorted by topic key; learn and myth entries are excluded.
	if aggs[0].TopicKey != "diabetes" || aggs[0].Correct != 1 || aggs[0].Total != 2 {
		t.Errorf("unexpected diabetes aggregate: %+v", aggs[0])
	}
	if aggs[1].TopicKey != "sleep" || aggs[1].Correct != 1 || aggs[1].Total != 1 {
		t.Errorf("unexpected sleep aggregate: %+v", aggs[1])
	}
}

func TestRecentQuizResults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	if err := s.InsertActivities(ctx, seedEntries(base)); err != nil {
		t.Fatalf("insert activities: %v", err)
	}

	results, err := s.RecentQuizResults(ctx, model.StatsConfig{}, 2)
	if err != nil {
		t.Fatalf("recent quiz results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// Oldest first within the window: wrong diabetes answer, then correct sleep answer.
	if results[0] || !results[1] {
		t.Errorf("unexpected result order: %v", results)
	}

	none, err := s.RecentQuizResults(ctx, model.StatsConfig{}, 0)
	if err != nil {
		t.Fatalf("recent quiz results limit 0: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil for zero limit, got %v", none)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.db")
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if err := s2.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
