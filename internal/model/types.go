// Package model defines shared data structures.
package model

import "time"

// Topic is a static fact sheet for one health subject.
type Topic struct {
	Key      string
	Title    string
	Category string
	Overview string
	Facts    []FactGroup
}

// FactGroup is one labeled block of a topic's fact sheet.
// Either Items (a bullet list) or Value (a single line) is set, never both.
type FactGroup struct {
	Label string
	Items []string
	Value string
}

// IsList reports whether the group carries a bullet list.
func (g FactGroup) IsList() bool {
	return len(g.Items) > 0
}

// Myth pairs a false health claim with its evidence-based correction.
type Myth struct {
	Key      string
	Myth     string
	Truth    string
	Evidence string
}

// Question is one multiple-choice quiz question.
type Question struct {
	Prompt      string
	Options     []string
	Answer      int
	Explanation string
}

// ActivityKind labels one history entry.
type ActivityKind string

const (
	ActivityLearn ActivityKind = "learn"
	ActivityQuiz  ActivityKind = "quiz"
	ActivityMyth  ActivityKind = "myth"
)

// HistoryEntry is one append-only activity log record for a session.
type HistoryEntry struct {
	Kind    ActivityKind
	Subject string
	Correct bool // quiz entries only
	At      time.Time
}

// ScoreLine is one scoreboard row: per-topic running quiz tally.
type ScoreLine struct {
	TopicKey string
	Correct  int
	Total    int
	Percent  float64
}

// StatsConfig defines filters for lifetime stats output.
type StatsConfig struct {
	Topic string
	Since *time.Time
	Last  int
}

// TopicAggregate summarizes stored quiz attempts for one topic.
type TopicAggregate struct {
	TopicKey string
	Correct  int
	Total    int
}

// StoredActivity is one persisted history entry with its row id.
type StoredActivity struct {
	ID      int64
	Kind    ActivityKind
	Subject string
	Correct bool
	At      time.Time
}
