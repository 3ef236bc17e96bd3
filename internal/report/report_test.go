package report

import (
	"strings"
	"testing"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

func sampleDetails() lesson.Details {
	return lesson.Details{
		TeacherName:   "عمر العيسى",
		SchoolName:    "مدرسة الملك فهد",
		Region:        "الرياض",
		Subject:       "رياضيات",
		LessonTitle:   "جمع الكسور",
		GradeLevel:    "الخامس",
		PrincipalName: "خالد السالم",
		Date:          "2026/08/31",
	}
}

func sampleStrategy() lesson.Strategy {
	return lesson.Strategy{
		ID:                  "strat-0",
		Name:                "إكس أو",
		MainIdea:            "مسابقة بين فريقين على شبكة",
		Objectives:          []string{"يحل الطالب مسائل جمع الكسور"},
		ImplementationSteps: []string{"قسم الفصل إلى فريقين", "اطرح سؤالاً"},
		Tools:               []string{"سبورة", "مؤقت"},
		Questions: []lesson.Question{
			{Question: "ما ناتج ١/٢ + ١/٤؟", Answer: "٣/٤", WrongAnswer: "٢/٦"},
			{Question: "ما المقام المشترك؟", Answer: "٤"},
		},
		TimeRequired: "15 دقيقة",
		Kind:         lesson.KindTicTacToe,
	}
}

func TestExportTextIncludesAllSections(t *testing.T) {
	out := ExportText(sampleDetails(), sampleStrategy())

	for _, want := range []string{
		"عمر العيسى",
		"مدرسة الملك فهد",
		"الرياض",
		"جمع الكسور",
		"2026/08/31",
		"الاستراتيجية: إكس أو",
		"15 دقيقة",
		"1. يحل الطالب مسائل جمع الكسور",
		"2. اطرح سؤالاً",
		"سبورة، مؤقت",
		"1. ما ناتج ١/٢ + ١/٤؟",
		"الإجابة: ٣/٤",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestExportTextOmitsEmptyFields(t *testing.T) {
	d := sampleDetails()
	d.PrincipalName = ""
	s := sampleStrategy()
	s.Objectives = nil
	s.Tools = nil
	s.TimeRequired = ""

	out := ExportText(d, s)

	if strings.Contains(out, "قائد المدرسة") {
		t.Error("empty principal still printed")
	}
	if strings.Contains(out, "الأهداف السلوكية") {
		t.Error("empty objectives section still printed")
	}
	if strings.Contains(out, "الأدوات") {
		t.Error("empty tools section still printed")
	}
	if strings.Contains(out, "الزمن") {
		t.Error("empty time still printed")
	}
}

func TestExportTextSharedStrategy(t *testing.T) {
	s := lesson.SharedStrategy("", []lesson.Question{
		{Question: "س", Answer: "ج"},
	})

	out := ExportText(lesson.Details{Subject: "علوم"}, s)

	if !strings.Contains(out, "بطاقات الأسئلة") {
		t.Error("default shared name missing")
	}
	if !strings.Contains(out, "بنك الأسئلة") {
		t.Error("question section missing")
	}
}

func TestExportFlashcards(t *testing.T) {
	out := ExportFlashcardsText(sampleStrategy())

	if !strings.Contains(out, "الوجه 1: ما ناتج ١/٢ + ١/٤؟") {
		t.Error("card front missing")
	}
	if !strings.Contains(out, "الظهر 2: ٤") {
		t.Error("card back missing")
	}
}

func TestRenderStyledContainsContent(t *testing.T) {
	out := Render(sampleDetails(), sampleStrategy(), 80)

	if !strings.Contains(out, "إكس أو") {
		t.Error("strategy name missing from styled report")
	}
	if !strings.Contains(out, "٣/٤") {
		t.Error("answer missing from styled report")
	}
}

func TestFlashcardsEmptyQuestions(t *testing.T) {
	out := Flashcards(lesson.Strategy{}, 80)

	if !strings.Contains(out, "لا توجد أسئلة") {
		t.Error("empty sheet message missing")
	}
}

func TestFlashcardsRendersEachCard(t *testing.T) {
	out := Flashcards(sampleStrategy(), 100)

	if !strings.Contains(out, "ما المقام المشترك؟") {
		t.Error("question missing from sheet")
	}
	if !strings.Contains(out, "٣/٤") {
		t.Error("answer missing from sheet")
	}
}
