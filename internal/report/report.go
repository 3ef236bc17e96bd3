// Package report renders a strategy into a printable lesson report and a
// flashcard sheet. Both come in a styled form for the TUI and a plain
// text form for export.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

var (
	sectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary)

	fieldLabel = lipgloss.NewStyle().
			Foreground(theme.TextDim)

	fieldValue = lipgloss.NewStyle().
			Foreground(theme.Text)

	cardFront = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 1)

	cardBack = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Foreground(theme.Success).
			Padding(0, 1)
)

// Render produces the styled report for the TUI report screen.
func Render(d lesson.Details, s lesson.Strategy, width int) string {
	var b strings.Builder

	title := theme.Title.Width(width).Render("المملكة العربية السعودية - وزارة التعليم")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("تقرير استراتيجية التعلم النشط"))
	b.WriteString("\n\n")

	b.WriteString(renderField("المعلم", d.TeacherName))
	b.WriteString(renderField("المدرسة", d.SchoolName))
	b.WriteString(renderField("الإدارة التعليمية", d.Region))
	b.WriteString(renderField("المادة", d.Subject))
	b.WriteString(renderField("الصف", d.GradeLevel))
	b.WriteString(renderField("الدرس", d.LessonTitle))
	b.WriteString(renderField("التاريخ", d.Date))
	b.WriteString(renderField("قائد المدرسة", d.PrincipalName))
	b.WriteString("\n")

	b.WriteString(sectionTitle.Render("الاستراتيجية: " + s.Name))
	b.WriteString("\n")
	if s.TimeRequired != "" {
		b.WriteString(fieldLabel.Render("الزمن: ") + fieldValue.Render(s.TimeRequired) + "\n")
	}
	if s.MainIdea != "" {
		b.WriteString(fieldValue.Render(s.MainIdea))
		b.WriteString("\n")
	}

	b.WriteString(renderList("الأهداف السلوكية", s.Objectives))
	b.WriteString(renderList("خطوات التنفيذ", s.ImplementationSteps))
	b.WriteString(renderInline("الأدوات", s.Tools))

	if len(s.Questions) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionTitle.Render("بنك الأسئلة"))
		b.WriteString("\n")
		for i, q := range s.Questions {
			b.WriteString(fieldValue.Render(fmt.Sprintf("%d. %s", i+1, q.Question)))
			b.WriteString("\n")
			b.WriteString(theme.Correct.Render("   ✓ " + q.Answer))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderField(label, value string) string {
	if value == "" {
		return ""
	}
	return fieldLabel.Render(label+": ") + fieldValue.Render(value) + "\n"
}

func renderList(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sectionTitle.Render(title))
	b.WriteString("\n")
	for i, item := range items {
		b.WriteString(fieldValue.Render(fmt.Sprintf("%d. %s", i+1, item)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderInline(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "\n" + sectionTitle.Render(title) + "\n" +
		fieldValue.Render(strings.Join(items, "، ")) + "\n"
}

// Flashcards renders the question cards as a sheet: the front of each
// card carries the question, the back carries the answer. Cards are laid
// out two per row when the width allows.
func Flashcards(s lesson.Strategy, width int) string {
	if len(s.Questions) == 0 {
		return theme.Hint.Render("لا توجد أسئلة لعرضها")
	}

	cardWidth := width/2 - 4
	if cardWidth < 20 {
		cardWidth = width - 4
	}

	rows := make([]string, 0, len(s.Questions))
	for i, q := range s.Questions {
		front := cardFront.Width(cardWidth).Render(fmt.Sprintf("س%d: %s", i+1, q.Question))
		back := cardBack.Width(cardWidth).Render("ج: " + q.Answer)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, front, " ", back))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
