package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSettingsLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()

	settings, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != (Settings{}) {
		t.Errorf("settings = %+v, want zero value", settings)
	}
}

func TestSettingsSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	want := Settings{
		APIKey:     "sk-test",
		CustomLogo: "data:image/png;base64,AAAA",
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestSettingsSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, Settings{APIKey: "old", MoeLogo: "data:x"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Empty MoeLogo must clear the stored value.
	if err := repo.Save(ctx, Settings{APIKey: "new"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.APIKey != "new" {
		t.Errorf("api key = %q, want new", got.APIKey)
	}
	if got.MoeLogo != "" {
		t.Errorf("moe logo = %q, want empty", got.MoeLogo)
	}
}

func TestProfileLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	p, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != (Profile{}) {
		t.Errorf("profile = %+v, want zero value", p)
	}
}

func TestProfileSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	want := Profile{
		TeacherName: "أ. عمر",
		School:      "مدرسة النور",
		Region:      "الرياض",
		Subject:     "رياضيات",
		Grade:       "خامس",
		Principal:   "أ. خالد",
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("profile = %+v, want %+v", got, want)
	}

	// Second save replaces the single row.
	want.School = "مدرسة الفيصل"
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	count, err := s.Client().LessonProfile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("profile rows = %d, want 1", count)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "strategy-gen",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(1000 + i),
			Success:      true,
			RequestBody:  "[user]\nاشرح الدرس",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not newest-first: %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].RequestBody == "" || events[0].ResponseBody == "" {
		t.Error("request/response bodies not stored")
	}
}

func TestEventGetMissing(t *testing.T) {
	s := openTestStore(t)

	e, err := s.EventRepo().GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Errorf("event = %+v, want nil", e)
	}
}

func TestEventUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "strategy-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "strategy-gen", InputTokens: 200, OutputTokens: 60, LatencyMs: 1200, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "ocr", InputTokens: 50, OutputTokens: 10, LatencyMs: 500, Success: true},
	}
	for i, d := range seed {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose rows, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "strategy-gen" {
			if u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 100 {
				t.Errorf("strategy-gen usage = %+v", u)
			}
			if u.AvgLatencyMs != 1000 {
				t.Errorf("avg latency = %d, want 1000", u.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
