package report

import (
	"fmt"
	"strings"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

// ExportText produces the plain text report for printing or saving.
// No ANSI styling, suitable for piping to a file.
func ExportText(d lesson.Details, s lesson.Strategy) string {
	var b strings.Builder

	b.WriteString("المملكة العربية السعودية - وزارة التعليم\n")
	b.WriteString("تقرير استراتيجية التعلم النشط\n")
	b.WriteString(strings.Repeat("=", 46))
	b.WriteString("\n\n")

	writeField(&b, "المعلم", d.TeacherName)
	writeField(&b, "المدرسة", d.SchoolName)
	writeField(&b, "الإدارة التعليمية", d.Region)
	writeField(&b, "المادة", d.Subject)
	writeField(&b, "الصف", d.GradeLevel)
	writeField(&b, "الدرس", d.LessonTitle)
	writeField(&b, "التاريخ", d.Date)
	writeField(&b, "قائد المدرسة", d.PrincipalName)

	b.WriteString("\nالاستراتيجية: " + s.Name + "\n")
	if s.TimeRequired != "" {
		b.WriteString("الزمن: " + s.TimeRequired + "\n")
	}
	if s.MainIdea != "" {
		b.WriteString(s.MainIdea + "\n")
	}

	writeSection(&b, "الأهداف السلوكية", s.Objectives)
	writeSection(&b, "خطوات التنفيذ", s.ImplementationSteps)
	if len(s.Tools) > 0 {
		b.WriteString("\nالأدوات: " + strings.Join(s.Tools, "، ") + "\n")
	}

	if len(s.Questions) > 0 {
		b.WriteString("\nبنك الأسئلة:\n")
		for i, q := range s.Questions {
			fmt.Fprintf(&b, "%d. %s\n   الإجابة: %s\n", i+1, q.Question, q.Answer)
		}
	}

	return b.String()
}

// ExportFlashcardsText produces the flashcard sheet as plain text, one
// card per block with a cut line between cards.
func ExportFlashcardsText(s lesson.Strategy) string {
	var b strings.Builder

	b.WriteString("بطاقات الأسئلة: " + s.Name + "\n")
	for i, q := range s.Questions {
		b.WriteString(strings.Repeat("-", 46))
		b.WriteString("\n")
		fmt.Fprintf(&b, "الوجه %d: %s\n", i+1, q.Question)
		fmt.Fprintf(&b, "الظهر %d: %s\n", i+1, q.Answer)
	}
	b.WriteString(strings.Repeat("-", 46))
	b.WriteString("\n")

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label + ": " + value + "\n")
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + title + ":\n")
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}
