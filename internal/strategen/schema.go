package strategen

import "github.com/boaziz1447-maker/omar-alessa/internal/llm"

// questionDef is the schema fragment shared by both generation schemas.
var questionDef = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "A question taken directly from the lesson content",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The short correct answer",
			},
			"wrongAnswer": map[string]any{
				"type":        "string",
				"description": "A plausible distractor",
			},
		},
		"required": []any{"question", "answer", "wrongAnswer"},
	},
}

var strategyDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string"},
		"name":     map[string]any{"type": "string"},
		"mainIdea": map[string]any{"type": "string"},
		"objectives": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"implementationSteps": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"tools": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"questions":    questionDef,
		"timeRequired": map[string]any{"type": "string"},
	},
	"required": []any{"name", "mainIdea", "objectives", "implementationSteps", "tools", "questions"},
}

// StrategiesSchema defines the JSON schema for a batch of strategies.
var StrategiesSchema = &llm.Schema{
	Name:        "learning-strategies",
	Description: "A batch of active learning strategies with quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strategies": map[string]any{
				"type":  "array",
				"items": strategyDef,
			},
		},
		"required": []any{"strategies"},
	},
}

// QuestionBankSchema defines the JSON schema for a single question-bank
// strategy.
var QuestionBankSchema = &llm.Schema{
	Name:        "question-bank",
	Description: "A comprehensive question bank extracted from lesson content",
	Definition:  strategyDef,
}
