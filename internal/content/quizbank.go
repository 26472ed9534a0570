package content

import (
	"fmt"
	"math/rand"

	"github.com/davelt/healthtui/internal/model"
)

// QuizBank is an immutable mapping from topic key to its question list.
type QuizBank struct {
	questions map[string][]model.Question
	keys      []string
}

// NewQuizBank builds a bank from per-topic question lists, preserving topic
// order. Topics with no questions are dropped. It returns an error if any
// question's answer index is out of range or it has fewer than two options.
func NewQuizBank(topics []string, questions map[string][]model.Question) (*QuizBank, error) {
	bank := &QuizBank{questions: make(map[string][]model.Question, len(questions))}
	for _, key := range topics {
		qs := questions[key]
		if len(qs) == 0 {
			continue
		}
		for i, q := range qs {
			if len(q.Options) < 2 {
				return nil, fmt.Errorf("topic %s question %d: need at least 2 options, got %d", key, i, len(q.Options))
			}
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return nil, fmt.Errorf("topic %s question %d: answer index %d out of range [0,%d)", key, i, q.Answer, len(q.Options))
			}
		}
		bank.questions[key] = qs
		bank.keys = append(bank.keys, key)
	}
	return bank, nil
}

// DefaultQuizBank returns the bank backed by the built-in questions.
// The built-in data is validated at init; a panic here means a bad literal.
func DefaultQuizBank() *QuizBank {
	bank, err := NewQuizBank(quizTopicOrder, quizQuestions)
	if err != nil {
		panic(err)
	}
	return bank
}

// Topics returns the keys with at least one question, in declaration order.
func (b *QuizBank) Topics() []string {
	return append([]string(nil), b.keys...)
}

// Has reports whether the normalized key has questions.
func (b *QuizBank) Has(key string) bool {
	_, ok := b.questions[NormalizeKey(key)]
	return ok
}

// Draw picks one question for the topic, uniformly at random when several
// exist. On a miss it returns an UnknownTopicError listing quiz topics.
func (b *QuizBank) Draw(key string, rnd *rand.Rand) (model.Question, error) {
	qs, ok := b.questions[NormalizeKey(key)]
	if !ok {
		return model.Question{}, &UnknownTopicError{Key: key, Valid: b.Topics()}
	}
	return qs[rnd.Intn(len(qs))], nil
}

// Questions returns the question list for a topic, or nil if it has none.
func (b *QuizBank) Questions(key string) []model.Question {
	return append([]model.Question(nil), b.questions[NormalizeKey(key)]...)
}
