package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/davelt/healthtui/internal/model"
)

func TestRenderTopicSheet(t *testing.T) {
	topic := model.Topic{
		Key:      "sleep",
		Title:    "Sleep & Sleep Hygiene",
		Category: "Lifestyle",
		Overview: "Essential physiological process.",
		Facts: []model.FactGroup{
			{Label: "Benefits", Items: []string{"Immune strength", "Memory consolidation"}},
			{Label: "Stats", Value: "1 in 3 adults insufficient sleep"},
		},
	}
	out := renderTopicSheet(topic, 60)
	for _, want := range []string{"Sleep & Sleep Hygiene", "Lifestyle", "Benefits", "- Immune strength", "Stats", "1 in 3 adults"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in sheet:\n%s", want, out)
		}
	}
}

func TestRenderMyth(t *testing.T) {
	myth := model.Myth{
		Key:      "sugar",
		Myth:     "Sugar makes children hyperactive",
		Truth:    "Scientific studies show no direct link",
		Evidence: "Blind studies found no behavioral changes",
	}
	out := renderMyth(myth, 60)
	for _, want := range []string{"Myth", "Truth", "Evidence", "no direct link"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in myth view:\n%s", want, out)
		}
	}
}

func TestRenderResearchKnownTopic(t *testing.T) {
	out := renderResearch("diabetes", 70)
	for _, want := range []string{"PubMed", "Research on diabetes", "CDC", "37.3 million", "NIH"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in research view:\n%s", want, out)
		}
	}
}

func TestRenderResearchUnknownTopic(t *testing.T) {
	out := renderResearch("juggling", 70)
	if !strings.Contains(out, "No fact sheet") || !strings.Contains(out, "No resources") {
		t.Errorf("expected fallback notices:\n%s", out)
	}
	// Articles are templated and always present.
	if !strings.Contains(out, "Research on juggling") {
		t.Errorf("expected templated articles:\n%s", out)
	}
}

func TestRenderRecentActivity(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	entries := []model.HistoryEntry{
		{Kind: model.ActivityQuiz, Subject: "diabetes", Correct: true, At: at},
		{Kind: model.ActivityLearn, Subject: "sleep", At: at.Add(-time.Minute)},
	}
	out := renderRecentActivity(entries, 70)
	for _, want := range []string{"Recent activity", "quiz", "diabetes", "correct", "learn", "sleep"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	empty := renderRecentActivity(nil, 70)
	if !strings.Contains(empty, "No activity yet.") {
		t.Errorf("unexpected empty view: %q", empty)
	}
}
