// Package game holds the mini-game engines driven by a strategy's
// question list. The engines are pure state machines: every transition
// happens synchronously in response to a single call, and invalid moves
// are silently rejected rather than treated as errors.
package game

import "github.com/boaziz1447-maker/omar-alessa/internal/lesson"

// Round is the quiz-round orchestrator shared by all mini-games: reveal
// the current answer, judge it correct or wrong, and advance through the
// question queue. Per-game behavior plugs in through the OnCorrect and
// OnWrong callbacks; when a callback is nil the round simply advances,
// which is the behavior of plain (non-game) strategies.
type Round struct {
	questions   []lesson.Question
	index       int
	revealed    bool
	moveEnabled bool

	// OnCorrect and OnWrong run when the teacher judges the spoken
	// answer. They receive the round so they can open the move gate or
	// advance the queue themselves.
	OnCorrect func(*Round)
	OnWrong   func(*Round)
}

// NewRound creates a round over the given question queue.
func NewRound(questions []lesson.Question) *Round {
	return &Round{questions: questions}
}

// Current returns the active question. ok is false when the queue is empty.
func (r *Round) Current() (lesson.Question, bool) {
	if r.index < 0 || r.index >= len(r.questions) {
		return lesson.Question{}, false
	}
	return r.questions[r.index], true
}

// Index returns the zero-based position in the queue.
func (r *Round) Index() int { return r.index }

// Count returns the number of questions in the queue.
func (r *Round) Count() int { return len(r.questions) }

// Reveal shows the current answer. No-op when already revealed.
func (r *Round) Reveal() { r.revealed = true }

// Revealed reports whether the current answer is showing.
func (r *Round) Revealed() bool { return r.revealed }

// MoveEnabled reports whether the move gate is open. The gate opens only
// after the current question was answered correctly.
func (r *Round) MoveEnabled() bool { return r.moveEnabled }

// OpenGate opens the move gate for the owning game.
func (r *Round) OpenGate() { r.moveEnabled = true }

// CloseGate closes the move gate.
func (r *Round) CloseGate() { r.moveEnabled = false }

// MarkCorrect records a correct answer, delegating to OnCorrect when set.
func (r *Round) MarkCorrect() {
	if r.OnCorrect != nil {
		r.OnCorrect(r)
		return
	}
	r.Next()
}

// MarkWrong records a wrong answer, delegating to OnWrong when set.
func (r *Round) MarkWrong() {
	if r.OnWrong != nil {
		r.OnWrong(r)
		return
	}
	r.Next()
}

// Next advances to the next question, hiding the answer and closing the
// move gate. Returns false (without moving) at the end of the queue.
func (r *Round) Next() bool {
	if r.index >= len(r.questions)-1 {
		return false
	}
	r.index++
	r.revealed = false
	r.moveEnabled = false
	return true
}

// Prev steps back one question. Returns false at the start of the queue.
func (r *Round) Prev() bool {
	if r.index <= 0 {
		return false
	}
	r.index--
	r.revealed = false
	r.moveEnabled = false
	return true
}

// Exhausted reports whether the last question has been reached.
func (r *Round) Exhausted() bool {
	return r.index >= len(r.questions)-1
}

// Reset rewinds the round to the first question.
func (r *Round) Reset() {
	r.index = 0
	r.revealed = false
	r.moveEnabled = false
}
