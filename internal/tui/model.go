// Package tui provides the Bubble Tea health browser interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davelt/healthtui/internal/content"
	"github.com/davelt/healthtui/internal/model"
	"github.com/davelt/healthtui/internal/session"
)

const (
	tabLearn = iota
	tabQuiz
	tabMyths
	tabDashboard
	tabResearch
	tabAbout
)

const (
	topicListWidth = 26
	recentShown    = 10
)

// Model implements the Bubble Tea health browser UI.
type Model struct {
	catalog *content.Catalog
	myths   *content.MythRegistry
	sess    *session.Session

	tabs      []string
	activeTab int

	width  int
	height int

	topicKeys  []string
	topicIndex int
	topicOpen  string
	learnView  viewport.Model

	quiz quizPane

	mythInput  textinput.Model
	mythResult *model.Myth
	mythErr    string

	scoreTable table.Model

	researchInput textinput.Model
	researchView  viewport.Model
	researchQuery string

	aboutView viewport.Model
}

// NewModel constructs the health browser model.
func NewModel(catalog *content.Catalog, myths *content.MythRegistry, bank *content.QuizBank, sess *session.Session) *Model {
	m := &Model{
		catalog:   catalog,
		myths:     myths,
		sess:      sess,
		tabs:      []string{"Learn", "Quiz", "Myths", "Dashboard", "Research", "About"},
		topicKeys: keysByCategory(catalog),
		quiz:      newQuizPane(sess, bank.Topics()),
	}
	m.learnView = viewport.New(0, 0)
	m.researchView = viewport.New(0, 0)
	m.aboutView = viewport.New(0, 0)
	m.mythInput = newQueryInput("Myth: ", "does sugar make kids hyperactive?")
	m.researchInput = newQueryInput("Query: ", "diabetes")
	m.scoreTable = newScoreTable()
	return m
}

func newQueryInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func newScoreTable() table.Model {
	t := table.New(
		table.WithColumns(scoreColumns()),
		table.WithHeight(1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Topic", Width: 24},
		{Title: "Correct", Width: 8},
		{Title: "Total", Width: 6},
		{Title: "Accuracy", Width: 9},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch msg.Type {
	case tea.KeyTab:
		m.moveTab(1)
		return m, tea.ClearScreen
	case tea.KeyShiftTab:
		m.moveTab(-1)
		return m, tea.ClearScreen
	}
	if !m.inputTab() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		}
	}
	switch m.activeTab {
	case tabLearn:
		return m.updateLearn(msg)
	case tabQuiz:
		m.quiz.handleKey(msg.String())
		return m, nil
	case tabMyths:
		return m.updateMyths(msg)
	case tabDashboard:
		var cmd tea.Cmd
		m.scoreTable, cmd = m.scoreTable.Update(msg)
		return m, cmd
	case tabResearch:
		return m.updateResearch(msg)
	case tabAbout:
		var cmd tea.Cmd
		m.aboutView, cmd = m.aboutView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) inputTab() bool {
	return m.activeTab == tabMyths || m.activeTab == tabResearch
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.mythInput.Blur()
	m.researchInput.Blur()
	switch m.activeTab {
	case tabMyths:
		m.mythInput.Focus()
	case tabResearch:
		m.researchInput.Focus()
	case tabDashboard:
		m.refreshDashboard()
	case tabAbout:
		m.aboutView.SetContent(renderAbout(m.contentWidth()))
	}
}

func (m *Model) updateLearn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.topicIndex > 0 {
			m.topicIndex--
		}
		return m, nil
	case "down", "j":
		if m.topicIndex < len(m.topicKeys)-1 {
			m.topicIndex++
		}
		return m, nil
	case "enter":
		m.openTopic(m.topicKeys[m.topicIndex])
		return m, nil
	}
	var cmd tea.Cmd
	m.learnView, cmd = m.learnView.Update(msg)
	return m, cmd
}

func (m *Model) openTopic(key string) {
	topic, err := m.catalog.Lookup(key)
	if err != nil {
		m.learnView.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.topicOpen = topic.Key
	m.sess.RecordTopicView(topic.Key)
	m.learnView.SetContent(renderTopicSheet(topic, m.sheetWidth()))
	m.learnView.GotoTop()
}

func (m *Model) updateMyths(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		query := strings.TrimSpace(m.mythInput.Value())
		if query == "" {
			return m, nil
		}
		myth, err := m.myths.Lookup(query)
		if err != nil {
			m.mythResult = nil
			m.mythErr = err.Error()
			return m, nil
		}
		m.mythErr = ""
		m.mythResult = &myth
		m.sess.RecordMythView(myth.Key)
		return m, nil
	}
	var cmd tea.Cmd
	m.mythInput, cmd = m.mythInput.Update(msg)
	return m, cmd
}

func (m *Model) updateResearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		query := strings.TrimSpace(m.researchInput.Value())
		if query == "" {
			return m, nil
		}
		m.researchQuery = query
		m.researchView.SetContent(renderResearch(query, m.contentWidth()))
		m.researchView.GotoTop()
		return m, nil
	}
	if msg.Type == tea.KeyUp || msg.Type == tea.KeyDown || msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown {
		var cmd tea.Cmd
		m.researchView, cmd = m.researchView.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.researchInput, cmd = m.researchInput.Update(msg)
	return m, cmd
}

func (m *Model) refreshDashboard() {
	board := m.sess.Scoreboard()
	rows := make([]table.Row, 0, len(board))
	for _, line := range board {
		rows = append(rows, table.Row{
			line.TopicKey,
			fmt.Sprintf("%d", line.Correct),
			fmt.Sprintf("%d", line.Total),
			fmt.Sprintf("%.0f%%", line.Percent),
		})
	}
	m.scoreTable.SetRows(rows)
	m.scoreTable.SetHeight(maxInt(1, len(rows)+1))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.learnView.Width = m.sheetWidth()
	m.learnView.Height = bodyHeight
	m.researchView.Width = m.width
	m.researchView.Height = maxInt(1, bodyHeight-2)
	m.aboutView.Width = m.width
	m.aboutView.Height = bodyHeight
	m.mythInput.Width = maxInt(10, m.width-lipgloss.Width(m.mythInput.Prompt)-2)
	m.researchInput.Width = maxInt(10, m.width-lipgloss.Width(m.researchInput.Prompt)-2)

	if m.topicOpen != "" {
		if topic, err := m.catalog.Lookup(m.topicOpen); err == nil {
			m.learnView.SetContent(renderTopicSheet(topic, m.sheetWidth()))
		}
	}
	if m.researchQuery != "" {
		m.researchView.SetContent(renderResearch(m.researchQuery, m.contentWidth()))
	}
	m.aboutView.SetContent(renderAbout(m.contentWidth()))
}

func (m *Model) contentWidth() int {
	return maxInt(20, m.width-2)
}

func (m *Model) sheetWidth() int {
	return maxInt(20, m.width-topicListWidth-3)
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody(height int) string {
	switch m.activeTab {
	case tabLearn:
		return fitLines(m.renderLearn(height), m.width, height)
	case tabQuiz:
		return fitLines(m.quiz.view(m.contentWidth()), m.width, height)
	case tabMyths:
		return fitLines(m.renderMyths(), m.width, height)
	case tabDashboard:
		return fitLines(m.renderDashboard(), m.width, height)
	case tabResearch:
		return fitLines(m.researchInput.View()+"\n\n"+m.researchView.View(), m.width, height)
	case tabAbout:
		return fitLines(m.aboutView.View(), m.width, height)
	}
	return fitLines("", m.width, height)
}

// keysByCategory flattens the catalog into one selectable list, grouped the
// way renderLearn prints it.
func keysByCategory(c *content.Catalog) []string {
	var keys []string
	for _, cat := range c.Categories() {
		for _, t := range c.TopicsInCategory(cat) {
			keys = append(keys, t.Key)
		}
	}
	return keys
}

func (m *Model) renderLearn(height int) string {
	var list strings.Builder
	list.WriteString(headerStyle.Render("Topics"))
	i := 0
	for _, cat := range m.catalog.Categories() {
		list.WriteString("\n")
		list.WriteString(mutedStyle.Render(truncateLine(cat, topicListWidth)))
		for _, t := range m.catalog.TopicsInCategory(cat) {
			list.WriteString("\n")
			line := truncateLine("  "+t.Key, topicListWidth-2)
			if i == m.topicIndex {
				line = selectedStyle.Render(truncateLine("> "+t.Key, topicListWidth-2))
			}
			if t.Key == m.topicOpen {
				line += labelStyle.Render(" *")
			}
			list.WriteString(line)
			i++
		}
	}
	left := fitLines(list.String(), topicListWidth, height)

	right := m.learnView.View()
	if m.topicOpen == "" {
		right = mutedStyle.Render("Pick a topic and press enter.")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " | ", right)
}

func (m *Model) renderMyths() string {
	var b strings.Builder
	b.WriteString(m.mythInput.View())
	b.WriteString("\n\n")
	switch {
	case m.mythErr != "":
		b.WriteString(errorStyle.Render(wrapText(m.mythErr, m.contentWidth())))
	case m.mythResult != nil:
		b.WriteString(renderMyth(*m.mythResult, m.contentWidth()))
	default:
		b.WriteString(mutedStyle.Render(wrapText("Type a health claim and press enter. Known claims involve: "+strings.Join(m.myths.Tokens(), ", "), m.contentWidth())))
	}
	return b.String()
}

func (m *Model) renderDashboard() string {
	var b strings.Builder
	counts := map[model.ActivityKind]int{}
	history := m.sess.History()
	for _, e := range history {
		counts[e.Kind]++
	}
	b.WriteString(labelStyle.Render("Session"))
	b.WriteString(fmt.Sprintf(" %d activities (%d learn, %d quiz, %d myth)",
		len(history), counts[model.ActivityLearn], counts[model.ActivityQuiz], counts[model.ActivityMyth]))
	b.WriteString("\n\n")
	if len(m.scoreTable.Rows()) == 0 {
		b.WriteString(mutedStyle.Render("No quiz answers yet. Try the Quiz tab."))
	} else {
		b.WriteString(labelStyle.Render("Scoreboard"))
		b.WriteString("\n")
		b.WriteString(m.scoreTable.View())
	}
	b.WriteString("\n\n")
	b.WriteString(renderRecentActivity(m.sess.RecentActivity(recentShown), m.contentWidth()))
	return b.String()
}

func (m *Model) renderFooter() string {
	help := "Nav: tab/shift+tab  Quit: q"
	switch m.activeTab {
	case tabLearn:
		help = "Nav: tab/shift+tab  Topic: up/down/enter  Scroll: pgup/pgdn  Quit: q"
	case tabQuiz:
		help = "Nav: tab/shift+tab  Answer: up/down/enter  Quit: q"
	case tabMyths, tabResearch:
		help = "Nav: tab/shift+tab  Search: enter  Quit: ctrl+c"
	case tabDashboard:
		help = "Nav: tab/shift+tab  Scroll: up/down  Quit: q"
	}
	return headerStyle.Render(truncateLine(help, m.width))
}
