package tui

import (
	"fmt"
	"strings"

	"github.com/davelt/healthtui/internal/model"
	"github.com/davelt/healthtui/internal/research"
)

func renderTopicSheet(topic model.Topic, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(topic.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(topic.Category))
	b.WriteString("\n\n")
	b.WriteString(wrapText(topic.Overview, width))
	for _, group := range topic.Facts {
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render(group.Label))
		if group.IsList() {
			for _, item := range group.Items {
				b.WriteString("\n")
				b.WriteString(wrapText("- "+item, width))
			}
		} else {
			b.WriteString("\n")
			b.WriteString(wrapText(group.Value, width))
		}
	}
	return b.String()
}

func renderMyth(myth model.Myth, width int) string {
	sections := []struct {
		label string
		text  string
	}{
		{"Myth", myth.Myth},
		{"Truth", myth.Truth},
		{"Evidence", myth.Evidence},
	}
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(labelStyle.Render(section.label))
		b.WriteString("\n")
		b.WriteString(wrapText(section.text, width))
	}
	return b.String()
}

func renderResearch(query string, width int) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("PubMed"))
	for _, article := range research.Articles(query) {
		b.WriteString("\n")
		b.WriteString(wrapText(fmt.Sprintf("%s (%d)", article.Title, article.Year), width))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(truncateLine(fmt.Sprintf("%s, %s", article.Authors, article.Journal), width)))
		b.WriteString("\n")
		b.WriteString(wrapText(article.Summary, width))
	}

	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("CDC"))
	if guideline, err := research.Guidelines(query); err == nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(guideline.Name))
		b.WriteString("\n")
		b.WriteString(wrapText("Fact: "+guideline.Fact, width))
		b.WriteString("\n")
		b.WriteString(wrapText("Prevention: "+guideline.Prevention, width))
		b.WriteString("\n")
		b.WriteString(wrapText("Risk factors: "+guideline.RiskFactors, width))
		b.WriteString("\n")
		b.WriteString(wrapText("Statistics: "+guideline.Statistics, width))
	} else {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(wrapText("No fact sheet for this query. Topics: "+strings.Join(research.GuidelineTopics(), ", "), width)))
	}

	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("NIH"))
	if resource, err := research.Resources(query); err == nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(resource.Name))
		b.WriteString("\n")
		b.WriteString(wrapText(resource.Institute+" ("+resource.Website+")", width))
		b.WriteString("\n")
		b.WriteString(wrapText("Services: "+strings.Join(resource.Services, ", "), width))
		b.WriteString("\n")
		b.WriteString(wrapText(resource.Note, width))
	} else {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(wrapText("No resources for this query. Topics: "+strings.Join(research.ResourceTopics(), ", "), width)))
	}

	return b.String()
}

func renderRecentActivity(entries []model.HistoryEntry, width int) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No activity yet.")
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("Recent activity"))
	for _, entry := range entries {
		detail := ""
		if entry.Kind == model.ActivityQuiz {
			detail = " " + wrongStyle.Render("wrong")
			if entry.Correct {
				detail = " " + correctStyle.Render("correct")
			}
		}
		line := fmt.Sprintf("%s  %-5s %s", entry.At.Local().Format("15:04:05"), entry.Kind, entry.Subject)
		b.WriteString("\n")
		b.WriteString(truncateLine(line, width) + detail)
	}
	return b.String()
}

func renderAbout(width int) string {
	sections := []string{
		titleStyle.Render("healthtui"),
		wrapText("A terminal health-education browser. Look up fact sheets on common health topics, test yourself with quizzes, check popular myths against the evidence, and follow your progress on the dashboard.", width),
		wrapText("All content is built in and curated from public health sources. The research panel serves canned summaries and never touches the network.", width),
		mutedStyle.Render(wrapText("This program is educational and not a substitute for professional medical advice.", width)),
	}
	return strings.Join(sections, "\n\n")
}
