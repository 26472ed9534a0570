package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davelt/healthtui/internal/content"
	"github.com/davelt/healthtui/internal/session"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	bank := content.DefaultQuizBank()
	sess := session.New(bank, rand.New(rand.NewSource(1)))
	m := NewModel(content.DefaultCatalog(), content.DefaultMythRegistry(), bank, sess)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestModelTabCycle(t *testing.T) {
	m := newTestModel(t)
	if m.activeTab != tabLearn {
		t.Fatalf("initial tab = %d, want learn", m.activeTab)
	}
	for i := 0; i < len(m.tabs); i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.activeTab != tabLearn {
		t.Fatalf("after full cycle tab = %d, want learn", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeTab != tabAbout {
		t.Fatalf("after shift+tab from learn tab = %d, want about", m.activeTab)
	}
}

func TestKeysByCategoryCoversCatalog(t *testing.T) {
	catalog := content.DefaultCatalog()
	keys := keysByCategory(catalog)
	if len(keys) != len(catalog.Keys()) {
		t.Fatalf("grouped list has %d keys, catalog has %d", len(keys), len(catalog.Keys()))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q in grouped list", k)
		}
		seen[k] = true
	}
	// Topics sharing a category sit next to each other.
	last := map[string]int{}
	for i, k := range keys {
		topic, err := catalog.Lookup(k)
		if err != nil {
			t.Fatalf("lookup %q: %v", k, err)
		}
		if at, ok := last[topic.Category]; ok && at != i-1 {
			t.Fatalf("category %q split across the list at index %d", topic.Category, i)
		}
		last[topic.Category] = i
	}
}

func TestLearnViewGroupsByCategory(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, cat := range m.catalog.Categories() {
		want := truncateLine(cat, topicListWidth)
		if !strings.Contains(stripANSI(view), want) {
			t.Fatalf("learn view missing category header %q", cat)
		}
	}
}

func TestDashboardSummaryCounts(t *testing.T) {
	m := newTestModel(t)
	m.sess.RecordTopicView("diabetes")
	m.sess.RecordMythView("sugar")
	m.sess.RecordMythView("water")
	for m.activeTab != tabDashboard {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "3 activities (1 learn, 0 quiz, 2 myth)") {
		t.Fatalf("dashboard summary missing counts:\n%s", view)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
