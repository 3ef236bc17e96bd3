package strategen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/llm"
)

func strategiesJSON(names ...string) json.RawMessage {
	type q struct {
		Question    string `json:"question"`
		Answer      string `json:"answer"`
		WrongAnswer string `json:"wrongAnswer"`
	}
	type strat struct {
		Name      string   `json:"name"`
		MainIdea  string   `json:"mainIdea"`
		Obj       []string `json:"objectives"`
		Steps     []string `json:"implementationSteps"`
		Tools     []string `json:"tools"`
		Questions []q      `json:"questions"`
	}
	var out struct {
		Strategies []strat `json:"strategies"`
	}
	for _, n := range names {
		out.Strategies = append(out.Strategies, strat{
			Name:      n,
			MainIdea:  "فكرة",
			Obj:       []string{"هدف"},
			Steps:     []string{"خطوة"},
			Tools:     []string{"بطاقات"},
			Questions: []q{{Question: "س", Answer: "ج", WrongAnswer: "خ"}},
		})
	}
	raw, _ := json.Marshal(out)
	return raw
}

func TestGenerateStrategies_AssignsIDsAndKinds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: strategiesJSON("إكس أو", "بالأربعة تربح", "قوة الذاكرة", "الكرسي الساخن"),
	})
	svc := NewService(mock, DefaultConfig())

	strategies, err := svc.GenerateStrategies(context.Background(), Input{
		Content: "درس الكسور",
		Grade:   "خامس",
		Subject: "رياضيات",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(strategies) != 4 {
		t.Fatalf("got %d strategies, want 4", len(strategies))
	}

	wantKinds := []lesson.GameKind{
		lesson.KindTicTacToe,
		lesson.KindConnectFour,
		lesson.KindMemory,
		lesson.KindNone,
	}
	for i, s := range strategies {
		if s.ID == "" {
			t.Errorf("strategy %d has no id", i)
		}
		if s.Kind != wantKinds[i] {
			t.Errorf("strategy %q kind = %q, want %q", s.Name, s.Kind, wantKinds[i])
		}
	}
}

func TestGenerateStrategies_AcceptsBareArray(t *testing.T) {
	raw := json.RawMessage(`[{"name":"البالون","mainIdea":"م","objectives":[],"implementationSteps":[],"tools":[],"questions":[]}]`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, DefaultConfig())

	strategies, err := svc.GenerateStrategies(context.Background(), Input{Content: "نص"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(strategies) != 1 || strategies[0].Kind != lesson.KindBalloon {
		t.Errorf("strategies = %+v", strategies)
	}
}

func TestGenerateStrategies_PropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateStrategies(context.Background(), Input{Content: "نص"})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}

func TestGenerateStrategies_TruncatesLongContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: strategiesJSON("إكس أو")})
	svc := NewService(mock, DefaultConfig())

	long := strings.Repeat("شرح ", 5000) // 20000 runes
	_, err := svc.GenerateStrategies(context.Background(), Input{Content: long})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if got := len([]rune(prompt)); got > maxContentRunes+2000 {
		t.Errorf("prompt is %d runes, content not truncated", got)
	}
}

func TestGenerateQuestionBank(t *testing.T) {
	raw := json.RawMessage(`{"name":"بنك الأسئلة الشامل","mainIdea":"م","objectives":[],"implementationSteps":[],"tools":[],"questions":[{"question":"س","answer":"ج","wrongAnswer":"خ"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, DefaultConfig())

	banks, err := svc.GenerateQuestionBank(context.Background(), Input{Content: "نص"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(banks) != 1 {
		t.Fatalf("got %d strategies, want 1", len(banks))
	}
	if banks[0].ID != "question-bank-1" {
		t.Errorf("id = %q, want question-bank-1", banks[0].ID)
	}
	if banks[0].Kind != lesson.KindNone {
		t.Errorf("kind = %q, want none", banks[0].Kind)
	}
}

func TestExtractText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("نص الدرس المستخرج"),
	})
	svc := NewService(mock, DefaultConfig())

	text, err := svc.ExtractText(context.Background(), llm.FilePart{
		MIMEType: "image/png",
		Data:     []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "نص الدرس المستخرج" {
		t.Errorf("text = %q", text)
	}

	if len(mock.Calls) != 1 || len(mock.Calls[0].Files) != 1 {
		t.Fatalf("file not attached to request: %+v", mock.Calls)
	}
}

func TestServiceRejectsConcurrentRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	slow := &blockingProvider{started: started, release: release}
	svc := NewService(slow, DefaultConfig())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.GenerateStrategies(context.Background(), Input{Content: "نص"})
	}()

	<-started
	if _, err := svc.GenerateStrategies(context.Background(), Input{Content: "نص"}); !errors.Is(err, ErrBusy) {
		t.Errorf("second request error = %v, want ErrBusy", err)
	}
	close(release)
	wg.Wait()

	if svc.Busy() {
		t.Error("service still busy after completion")
	}
}

// blockingProvider parks Generate until released.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Generate(context.Context, llm.Request) (*llm.Response, error) {
	close(p.started)
	<-p.release
	return &llm.Response{Content: strategiesJSON("إكس أو")}, nil
}

func (p *blockingProvider) ModelID() string { return "blocking" }
