// Package session tracks per-session quiz progress and activity history.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/davelt/healthtui/internal/content"
	"github.com/davelt/healthtui/internal/model"
)

var (
	// ErrNoQuestionActive is returned by SubmitAnswer when no question is pending.
	ErrNoQuestionActive = errors.New("no question active")
	// ErrAlreadyAnswered is returned by SubmitAnswer after the active question
	// has been answered. Score entries never double-count.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// InvalidOptionIndexError reports an answer index outside the option range.
type InvalidOptionIndexError struct {
	Index   int
	Options int
}

func (e *InvalidOptionIndexError) Error() string {
	return fmt.Sprintf("option index %d out of range [0, %d)", e.Index, e.Options)
}

// ActiveQuestion is a snapshot of the in-flight question.
type ActiveQuestion struct {
	TopicKey   string
	Prompt     string
	Options    []string
	Answered   bool
	WasCorrect bool
}

// Verdict is the result of one submitted answer.
type Verdict struct {
	Correct      bool
	CorrectIndex int
	Explanation  string
}

type activeQuestion struct {
	topicKey   string
	question   model.Question
	answered   bool
	wasCorrect bool
}

type scoreEntry struct {
	correct int
	total   int
}

// Session owns one user's activity history, per-topic score tallies, and at
// most one active question. All methods are safe for concurrent use; each
// operation runs as a single unit under the session mutex. State lives in
// memory only and is discarded with the session.
type Session struct {
	mu sync.Mutex

	bank *content.QuizBank
	rnd  *rand.Rand
	now  func() time.Time

	active     *activeQuestion
	scores     map[string]*scoreEntry
	scoreOrder []string
	history    []model.HistoryEntry
}

// New creates an empty session drawing questions from bank. A nil rnd falls
// back to a time-seeded source; tests pass a seeded one to pin draws.
func New(bank *content.QuizBank, rnd *rand.Rand) *Session {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		bank:   bank,
		rnd:    rnd,
		now:    time.Now,
		scores: make(map[string]*scoreEntry),
	}
}

// LoadQuestion draws a fresh question for the topic and makes it the active
// question, replacing any prior one. Answered flags are reset.
func (s *Session) LoadQuestion(topicKey string) (ActiveQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.bank.Draw(topicKey, s.rnd)
	if err != nil {
		return ActiveQuestion{}, err
	}
	s.active = &activeQuestion{
		topicKey: content.NormalizeKey(topicKey),
		question: q,
	}
	return s.snapshotLocked(), nil
}

// SubmitAnswer grades the pending question. On success it updates the topic's
// score entry, appends a quiz history entry, and marks the question answered;
// the three updates land together or not at all. A second submit without an
// intervening LoadQuestion or ClearQuestion fails with ErrAlreadyAnswered.
func (s *Session) SubmitAnswer(selectedIndex int) (Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return Verdict{}, ErrNoQuestionActive
	}
	if s.active.answered {
		return Verdict{}, ErrAlreadyAnswered
	}
	q := s.active.question
	if selectedIndex < 0 || selectedIndex >= len(q.Options) {
		return Verdict{}, &InvalidOptionIndexError{Index: selectedIndex, Options: len(q.Options)}
	}

	correct := selectedIndex == q.Answer

	entry, ok := s.scores[s.active.topicKey]
	if !ok {
		entry = &scoreEntry{}
		s.scores[s.active.topicKey] = entry
		s.scoreOrder = append(s.scoreOrder, s.active.topicKey)
	}
	entry.total++
	if correct {
		entry.correct++
	}
	s.history = append(s.history, model.HistoryEntry{
		Kind:    model.ActivityQuiz,
		Subject: s.active.topicKey,
		Correct: correct,
		At:      s.now(),
	})
	s.active.answered = true
	s.active.wasCorrect = correct

	return Verdict{Correct: correct, CorrectIndex: q.Answer, Explanation: q.Explanation}, nil
}

// ClearQuestion drops the active question, if any. Scores and history are
// untouched.
func (s *Session) ClearQuestion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Active returns a snapshot of the in-flight question and whether one exists.
func (s *Session) Active() (ActiveQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ActiveQuestion{}, false
	}
	return s.snapshotLocked(), true
}

func (s *Session) snapshotLocked() ActiveQuestion {
	return ActiveQuestion{
		TopicKey:   s.active.topicKey,
		Prompt:     s.active.question.Prompt,
		Options:    append([]string(nil), s.active.question.Options...),
		Answered:   s.active.answered,
		WasCorrect: s.active.wasCorrect,
	}
}

// RecordTopicView appends a learn history entry. Accepted in any state; the
// caller is expected to have resolved the key against the catalog.
func (s *Session) RecordTopicView(topicKey string) {
	s.record(model.ActivityLearn, content.NormalizeKey(topicKey), false)
}

// RecordMythView appends a myth history entry.
func (s *Session) RecordMythView(mythKey string) {
	s.record(model.ActivityMyth, mythKey, false)
}

func (s *Session) record(kind model.ActivityKind, subject string, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, model.HistoryEntry{
		Kind:    kind,
		Subject: subject,
		Correct: correct,
		At:      s.now(),
	})
}

// Scoreboard returns one line per topic with at least one submitted answer,
// in first-submission order. An empty tally yields a zero percentage rather
// than a division failure.
func (s *Session) Scoreboard() []model.ScoreLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ScoreLine, 0, len(s.scoreOrder))
	for _, key := range s.scoreOrder {
		entry := s.scores[key]
		line := model.ScoreLine{TopicKey: key, Correct: entry.correct, Total: entry.total}
		if entry.total > 0 {
			line.Percent = 100 * float64(entry.correct) / float64(entry.total)
		}
		out = append(out, line)
	}
	return out
}

// RecentActivity returns up to n history entries, most recent first.
func (s *Session) RecentActivity(n int) []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(s.history) {
		n = len(s.history)
	}
	out := make([]model.HistoryEntry, 0, n)
	for i := len(s.history) - 1; i >= len(s.history)-n; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// HistoryLen reports the number of recorded history entries.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// History returns all recorded entries, oldest first. Used to archive the
// session when it ends.
func (s *Session) History() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.HistoryEntry(nil), s.history...)
}
