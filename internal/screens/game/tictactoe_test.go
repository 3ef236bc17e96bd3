package game

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/game"
	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func xoStrategy() lesson.Strategy {
	return lesson.Strategy{
		Name: "لعبة إكس أو",
		Kind: lesson.KindTicTacToe,
		Questions: []lesson.Question{
			{Question: "ما عاصمة السعودية؟", Answer: "الرياض", WrongAnswer: "جدة"},
			{Question: "كم عدد القارات؟", Answer: "سبع", WrongAnswer: "خمس"},
		},
	}
}

func TestNewDispatchesByKind(t *testing.T) {
	strat := xoStrategy()
	if _, ok := New(strat).(*TicTacToeScreen); !ok {
		t.Fatal("expected a tic-tac-toe screen for the X kind")
	}

	strat.Kind = lesson.KindNone
	if _, ok := New(strat).(*TicTacToeScreen); ok {
		t.Fatal("non-game strategy must not get a game screen")
	}
}

func TestTicTacToeCorrectAnswerAllowsMove(t *testing.T) {
	s := newTicTacToe(xoStrategy())

	// Move is gated until the team answers correctly.
	scr, _ := s.Update(keyPress('1'))
	s = scr.(*TicTacToeScreen)
	if s.engine.Cell(0) != game.MarkNone {
		t.Fatal("move placed before answering")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	s.Update(keyPress('c'))
	if !s.engine.Round.MoveEnabled() {
		t.Fatal("correct answer must open the move gate")
	}

	s.Update(keyPress('1'))
	if s.engine.Cell(0) != game.MarkX {
		t.Errorf("cell 0 = %q, want X", s.engine.Cell(0))
	}
	if s.engine.Round.MoveEnabled() {
		t.Error("move gate must close after placing")
	}
}

func TestTicTacToeWrongAnswerAdvancesQuestion(t *testing.T) {
	s := newTicTacToe(xoStrategy())

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	s.Update(keyPress('x'))

	if s.engine.Round.MoveEnabled() {
		t.Fatal("wrong answer must not open the move gate")
	}
	if s.engine.Round.Index() != 1 {
		t.Errorf("round index = %d, want 1 after a wrong answer", s.engine.Round.Index())
	}
}

func TestTicTacToeViewShowsQuestion(t *testing.T) {
	s := newTicTacToe(xoStrategy())

	out := s.View(100, 30)
	if !strings.Contains(out, "ما عاصمة السعودية؟") {
		t.Error("view must show the current question")
	}
	if strings.Contains(out, "الرياض") {
		t.Error("answer must stay hidden until revealed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !strings.Contains(s.View(100, 30), "الرياض") {
		t.Error("revealed answer must appear in the view")
	}
}
