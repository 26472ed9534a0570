package tui

import (
	"fmt"
	"strings"

	"github.com/davelt/healthtui/internal/session"
)

// quizPane drives the quiz mode: pick a topic, answer the drawn question,
// move on. All scoring goes through the session so the dashboard and the
// archive see the same numbers.
type quizPane struct {
	sess *session.Session

	topics     []string
	topicIndex int

	active   session.ActiveQuestion
	selected int
	verdict  session.Verdict

	errMsg string
}

func newQuizPane(sess *session.Session, topics []string) quizPane {
	return quizPane{sess: sess, topics: topics}
}

func (p *quizPane) picking() bool {
	return p.active.Prompt == ""
}

func (p *quizPane) handleKey(key string) {
	p.errMsg = ""
	if p.picking() {
		p.handlePickerKey(key)
		return
	}
	switch key {
	case "up", "k":
		if !p.active.Answered && p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if !p.active.Answered && p.selected < len(p.active.Options)-1 {
			p.selected++
		}
	case "enter":
		p.submit()
	case "n":
		p.load(p.active.TopicKey)
	case "esc", "t":
		p.sess.ClearQuestion()
		p.active = session.ActiveQuestion{}
		p.verdict = session.Verdict{}
	}
}

func (p *quizPane) handlePickerKey(key string) {
	switch key {
	case "up", "k":
		if p.topicIndex > 0 {
			p.topicIndex--
		}
	case "down", "j":
		if p.topicIndex < len(p.topics)-1 {
			p.topicIndex++
		}
	case "enter":
		if len(p.topics) > 0 {
			p.load(p.topics[p.topicIndex])
		}
	}
}

func (p *quizPane) load(topicKey string) {
	active, err := p.sess.LoadQuestion(topicKey)
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.active = active
	p.selected = 0
	p.verdict = session.Verdict{}
}

func (p *quizPane) submit() {
	verdict, err := p.sess.SubmitAnswer(p.selected)
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.verdict = verdict
	p.active.Answered = true
	p.active.WasCorrect = verdict.Correct
}

func (p *quizPane) view(width int) string {
	if p.picking() {
		return p.pickerView(width)
	}
	return p.questionView(width)
}

func (p *quizPane) pickerView(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick a quiz topic"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("up/down choose, enter start"))
	for i, topic := range p.topics {
		b.WriteString("\n")
		line := "  " + topic
		if i == p.topicIndex {
			line = selectedStyle.Render("> " + topic)
		}
		b.WriteString(truncateLine(line, width))
	}
	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(wrapText(p.errMsg, width)))
	}
	return b.String()
}

func (p *quizPane) questionView(width int) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Topic: " + p.active.TopicKey))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(wrapText(p.active.Prompt, width)))
	b.WriteString("\n")
	for i, option := range p.active.Options {
		b.WriteString("\n")
		line := fmt.Sprintf("  %c) %s", 'A'+i, option)
		switch {
		case p.active.Answered && i == p.verdict.CorrectIndex:
			b.WriteString(correctStyle.Render(truncateLine(line, width)))
		case p.active.Answered && i == p.selected:
			b.WriteString(wrongStyle.Render(truncateLine(line, width)))
		case !p.active.Answered && i == p.selected:
			b.WriteString(selectedStyle.Render(truncateLine("> "+strings.TrimPrefix(line, "  "), width)))
		default:
			b.WriteString(truncateLine(line, width))
		}
	}
	b.WriteString("\n\n")
	if p.active.Answered {
		if p.verdict.Correct {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(wrongStyle.Render(fmt.Sprintf("Wrong. The answer was %c.", 'A'+p.verdict.CorrectIndex)))
		}
		b.WriteString("\n")
		b.WriteString(wrapText(p.verdict.Explanation, width))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("n next question  t topics"))
	} else {
		b.WriteString(mutedStyle.Render("up/down choose, enter submit, t topics"))
	}
	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(wrapText(p.errMsg, width)))
	}
	return b.String()
}
