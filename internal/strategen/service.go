// Package strategen turns lesson content into active-learning
// strategies and question banks through the LLM provider.
package strategen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/llm"
)

// QuestionBankName is the fixed display name of the generated bank.
const QuestionBankName = "بنك الأسئلة الشامل"

// questionBankID is the sentinel id of the generated bank strategy.
const questionBankID = "question-bank-1"

// ErrBusy is returned when a generation request is already in flight.
// The UI disables the submit action while busy; this guards the race.
var ErrBusy = errors.New("a generation request is already in flight")

// Input is the lesson context for a generation request.
type Input struct {
	Content        string
	Grade          string
	Subject        string
	QuestionsCount int

	// File is an optional attached lesson page (image or PDF).
	File *llm.FilePart
}

// Service generates strategies, question banks and OCR extractions.
// At most one request runs at a time.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu   sync.Mutex
	busy bool
}

// NewService creates a generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Busy reports whether a request is currently in flight.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// GenerateStrategies asks the model for 4-6 strategies with question
// lists extracted from the lesson content.
func (s *Service) GenerateStrategies(ctx context.Context, in Input) ([]lesson.Strategy, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	ctx = llm.WithPurpose(ctx, "strategy-gen")
	in = s.withDefaults(in)

	req := llm.Request{
		System: strategiesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStrategiesUserMessage(in)},
		},
		Schema:      StrategiesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
	if in.File != nil {
		req.Files = []llm.FilePart{*in.File}
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("strategy generation: %w", err)
	}

	strategies, err := parseStrategies(resp.Content)
	if err != nil {
		return nil, err
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("strategy generation: model returned no strategies")
	}

	for i := range strategies {
		if strategies[i].ID == "" {
			strategies[i].ID = fmt.Sprintf("strat-%d", i)
		}
		strategies[i].Kind = lesson.DetectGameKind(strategies[i].Name)
	}
	return strategies, nil
}

// GenerateQuestionBank asks the model for a single comprehensive
// question-bank strategy.
func (s *Service) GenerateQuestionBank(ctx context.Context, in Input) ([]lesson.Strategy, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	ctx = llm.WithPurpose(ctx, "question-bank")
	in = s.withDefaults(in)

	req := llm.Request{
		System: questionBankSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionBankUserMessage(in)},
		},
		Schema:      QuestionBankSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
	if in.File != nil {
		req.Files = []llm.FilePart{*in.File}
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question bank generation: %w", err)
	}

	var bank lesson.Strategy
	if err := json.Unmarshal(stripFences(resp.Content), &bank); err != nil {
		return nil, fmt.Errorf("parse question bank response: %w", err)
	}
	bank.ID = questionBankID
	bank.Kind = lesson.DetectGameKind(bank.Name)

	return []lesson.Strategy{bank}, nil
}

// ExtractText runs OCR over an attached file and returns the raw text.
func (s *Service) ExtractText(ctx context.Context, file llm.FilePart) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	ctx = llm.WithPurpose(ctx, "ocr")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: ocrPrompt},
		},
		Files:     []llm.FilePart{file},
		MaxTokens: s.cfg.MaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("text extraction: %w", err)
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		// Raw text responses are not always JSON-wrapped.
		text = string(resp.Content)
	}
	return text, nil
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Service) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Service) withDefaults(in Input) Input {
	if in.QuestionsCount <= 0 {
		in.QuestionsCount = s.cfg.DefaultQuestionCount
	}
	return in
}

// parseStrategies accepts both the schema-enforced wrapper object and a
// bare array, which some models emit despite the schema.
func parseStrategies(raw json.RawMessage) ([]lesson.Strategy, error) {
	raw = stripFences(raw)

	var wrapper struct {
		Strategies []lesson.Strategy `json:"strategies"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Strategies != nil {
		return wrapper.Strategies, nil
	}

	var bare []lesson.Strategy
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("parse strategies response: unrecognized structure")
}

// stripFences removes markdown code fences some models wrap around JSON.
func stripFences(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return json.RawMessage(strings.TrimSpace(s))
}
