package game

import "testing"

func TestRound_Empty(t *testing.T) {
	r := NewRound(nil)

	if _, ok := r.Current(); ok {
		t.Error("Current returned a question from an empty queue")
	}
	if r.Next() {
		t.Error("Next advanced an empty queue")
	}
	if !r.Exhausted() {
		t.Error("empty queue not exhausted")
	}
}

func TestRound_DefaultCallbacksAdvance(t *testing.T) {
	r := NewRound(testQuestions(3))

	r.MarkCorrect()
	if r.Index() != 1 {
		t.Errorf("index after correct = %d, want 1", r.Index())
	}
	r.MarkWrong()
	if r.Index() != 2 {
		t.Errorf("index after wrong = %d, want 2", r.Index())
	}
}

func TestRound_CallbacksOverrideAdvance(t *testing.T) {
	r := NewRound(testQuestions(3))
	var correct, wrong int
	r.OnCorrect = func(*Round) { correct++ }
	r.OnWrong = func(*Round) { wrong++ }

	r.MarkCorrect()
	r.MarkWrong()

	if correct != 1 || wrong != 1 {
		t.Errorf("callbacks ran %d/%d times, want 1/1", correct, wrong)
	}
	if r.Index() != 0 {
		t.Errorf("index = %d, callbacks should own advancement", r.Index())
	}
}

func TestRound_NextResetsRevealAndGate(t *testing.T) {
	r := NewRound(testQuestions(3))
	r.Reveal()
	r.OpenGate()

	if !r.Next() {
		t.Fatal("Next returned false mid-queue")
	}
	if r.Revealed() {
		t.Error("answer still revealed after Next")
	}
	if r.MoveEnabled() {
		t.Error("gate still open after Next")
	}
}

func TestRound_BoundsAndReset(t *testing.T) {
	r := NewRound(testQuestions(2))

	if r.Prev() {
		t.Error("Prev moved before the first question")
	}
	if !r.Next() {
		t.Fatal("Next failed")
	}
	if r.Next() {
		t.Error("Next moved past the last question")
	}
	if !r.Exhausted() {
		t.Error("queue not exhausted at last question")
	}
	if !r.Prev() {
		t.Error("Prev failed mid-queue")
	}

	r.Next()
	r.Reveal()
	r.Reset()
	if r.Index() != 0 || r.Revealed() || r.MoveEnabled() {
		t.Errorf("Reset left index=%d revealed=%v gate=%v", r.Index(), r.Revealed(), r.MoveEnabled())
	}
}
