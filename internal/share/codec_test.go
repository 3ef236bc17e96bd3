package share

import (
	"strings"
	"testing"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

func samplePayload() Payload {
	return Payload{
		Title:   "الكسور العشرية",
		Subject: "رياضيات",
		Grade:   "خامس",
		Date:    "2025/03/01",
		Quizzes: []lesson.Question{
			{Question: "٢+٢؟", Answer: "٤", WrongAnswer: "٥"},
		},
		Strategy: "بطاقات الأسئلة",
		View:     ViewCards,
	}
}

func TestShareRoundTrip(t *testing.T) {
	want := samplePayload()

	token, err := Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Title != want.Title || got.Subject != want.Subject ||
		got.Grade != want.Grade || got.Date != want.Date ||
		got.Strategy != want.Strategy || got.View != want.View {
		t.Errorf("decoded payload = %+v, want %+v", got, want)
	}
	if len(got.Quizzes) != 1 || got.Quizzes[0] != want.Quizzes[0] {
		t.Errorf("decoded questions = %+v, want %+v", got.Quizzes, want.Quizzes)
	}
}

func TestNewPayloadStampsID(t *testing.T) {
	d := lesson.DefaultDetails()
	s := lesson.Strategy{Name: "بطاقات"}

	a := NewPayload(d, s, ViewCards)
	b := NewPayload(d, s, ViewCards)

	if a.ID == "" {
		t.Fatal("payload ID is empty")
	}
	if a.ID == b.ID {
		t.Errorf("two payloads share ID %q", a.ID)
	}
}

func TestShareTokenIsASCII(t *testing.T) {
	token, err := Encode(samplePayload())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := 0; i < len(token); i++ {
		if token[i] > 0x7f {
			t.Fatalf("token byte %d is non-ASCII: %q", i, token[i])
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, tc := range []string{
		"not base64 at all!!",
		"aGVsbG8gd29ybGQ=", // valid base64, not JSON
		"",
	} {
		if _, err := Decode(tc); err == nil {
			t.Errorf("Decode(%q) succeeded", tc)
		}
	}
}

func TestDecodeTruncatedToken(t *testing.T) {
	token, err := Encode(samplePayload())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := Decode(token[:len(token)/2]); err == nil {
		t.Error("truncated token decoded")
	}
}

func TestApplyFillsDetailsAndStrategy(t *testing.T) {
	d := lesson.DefaultDetails()
	d.TeacherName = "أ. عمر"

	details, strat, view := samplePayload().Apply(d)

	if details.LessonTitle != "الكسور العشرية" || details.Subject != "رياضيات" {
		t.Errorf("details = %+v", details)
	}
	if details.TeacherName != "أ. عمر" {
		t.Error("unrelated detail fields must survive")
	}
	if strat.ID != lesson.SharedStrategyID {
		t.Errorf("strategy id = %q, want %q", strat.ID, lesson.SharedStrategyID)
	}
	if len(strat.Objectives) != 0 || len(strat.Tools) != 0 || len(strat.ImplementationSteps) != 0 {
		t.Error("shared strategy must not carry objectives, tools or steps")
	}
	if view != ViewCards {
		t.Errorf("view = %q, want %q", view, ViewCards)
	}
}

func TestApplyDefaultsViewToCards(t *testing.T) {
	p := samplePayload()
	p.View = ""

	_, _, view := p.Apply(lesson.DefaultDetails())
	if view != ViewCards {
		t.Errorf("view = %q, want %q", view, ViewCards)
	}
}

func TestConfigOnlyCarriesNonDefaults(t *testing.T) {
	c := NewConfig("https://cdn.example/default.png", "https://cdn.example/moe.png", "https://cdn.example/rabbit.png", "sk-123")

	if c.CustomLogo != "" || c.MoeLogo != "" || c.RabbitLogo != "" {
		t.Errorf("hosted logos must be dropped: %+v", c)
	}
	if c.APIKey() != "sk-123" {
		t.Errorf("key round-trip = %q, want sk-123", c.APIKey())
	}
	if c.Key == "sk-123" {
		t.Error("key must be obfuscated in the payload")
	}
}

func TestConfigEmbeddedLogoKept(t *testing.T) {
	logo := "data:image/png;base64,iVBORw0KGgo="
	c := NewConfig(logo, "", "", "")

	token, err := EncodeConfig(c)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	share, config := ParseURL("https://alessa.example/?config=" + token)
	if share != "" {
		t.Errorf("share token = %q, want empty", share)
	}
	got, err := DecodeConfig(config)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.CustomLogo != logo {
		t.Errorf("custom logo = %q, want %q", got.CustomLogo, logo)
	}
	if got.APIKey() != "" {
		t.Errorf("key = %q, want empty", got.APIKey())
	}
}

func TestLessonURLRoundTrip(t *testing.T) {
	addr, err := LessonURL("https://alessa.example/", samplePayload())
	if err != nil {
		t.Fatalf("build url: %v", err)
	}
	if !strings.Contains(addr, "?share=") {
		t.Fatalf("url = %q, missing share param", addr)
	}

	token, _ := ParseURL(addr)
	got, err := Decode(token)
	if err != nil {
		t.Fatalf("decode from url: %v", err)
	}
	if got.Title != "الكسور العشرية" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestParseURLMalformedAddress(t *testing.T) {
	share, config := ParseURL("://not a url")
	if share != "" || config != "" {
		t.Errorf("tokens = %q, %q, want empties", share, config)
	}
}
