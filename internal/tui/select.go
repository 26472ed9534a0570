package tui

import "github.com/davelt/healthtui/internal/content"

// SelectQuizTopic preselects a quiz topic in the picker. Unknown keys are
// ignored.
func (m *Model) SelectQuizTopic(key string) {
	key = content.NormalizeKey(key)
	for i, topic := range m.quiz.topics {
		if topic == key {
			m.quiz.topicIndex = i
			return
		}
	}
}
