package game

import (
	"testing"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

func testQuestions(n int) []lesson.Question {
	qs := make([]lesson.Question, n)
	for i := range qs {
		qs[i] = lesson.Question{
			Question:    "q",
			Answer:      "a",
			WrongAnswer: "w",
		}
	}
	return qs
}

func TestTicTacToe_GateClosedRejectsMove(t *testing.T) {
	g := NewTicTacToe(testQuestions(9))

	if g.PlaceMove(0) {
		t.Fatal("move placed with gate closed")
	}
	if g.Board() != [9]Mark{} {
		t.Errorf("board changed: %v", g.Board())
	}
}

func TestTicTacToe_OccupiedCellRejected(t *testing.T) {
	g := NewTicTacToe(testQuestions(9))

	g.Round.MarkCorrect()
	if !g.PlaceMove(4) {
		t.Fatal("expected first move to land")
	}

	g.Round.MarkCorrect()
	if g.PlaceMove(4) {
		t.Error("move placed on occupied cell")
	}
	if g.Cell(4) != MarkX {
		t.Errorf("cell 4 = %q, want X", g.Cell(4))
	}
	if g.Current() != MarkO {
		t.Errorf("current = %q, want O", g.Current())
	}
}

func TestTicTacToe_MoveClosesGateAndAdvancesQuestion(t *testing.T) {
	g := NewTicTacToe(testQuestions(9))

	g.Round.MarkCorrect()
	if !g.Round.MoveEnabled() {
		t.Fatal("correct answer should open the gate")
	}
	g.PlaceMove(0)

	if g.Round.MoveEnabled() {
		t.Error("gate still open after move")
	}
	if g.Round.Index() != 1 {
		t.Errorf("question index = %d, want 1", g.Round.Index())
	}
	if g.Current() != MarkO {
		t.Errorf("current = %q, want O", g.Current())
	}
}

func TestTicTacToe_WrongAnswerAdvancesWithoutOpeningGate(t *testing.T) {
	g := NewTicTacToe(testQuestions(3))

	g.Round.MarkWrong()
	if g.Round.MoveEnabled() {
		t.Error("gate open after wrong answer")
	}
	if g.Round.Index() != 1 {
		t.Errorf("question index = %d, want 1", g.Round.Index())
	}
}

// place forces a mark onto the board through the public API.
func place(t *testing.T, g *TicTacToe, cell int) {
	t.Helper()
	g.Round.MarkCorrect()
	if !g.PlaceMove(cell) {
		t.Fatalf("move on cell %d rejected", cell)
	}
}

func TestTicTacToe_RowWin(t *testing.T) {
	g := NewTicTacToe(testQuestions(20))

	// X: 0 1 2 (top row), O: 3 4 interleaved.
	for _, cell := range []int{0, 3, 1, 4, 2} {
		place(t, g, cell)
	}

	if g.Winner() != MarkX {
		t.Fatalf("winner = %q, want X", g.Winner())
	}

	g.Round.MarkCorrect()
	if g.PlaceMove(5) {
		t.Error("move placed after game over")
	}
}

func TestTicTacToe_DiagonalWin(t *testing.T) {
	g := NewTicTacToe(testQuestions(20))

	for _, cell := range []int{0, 1, 4, 2, 8} {
		place(t, g, cell)
	}

	if g.Winner() != MarkX {
		t.Errorf("winner = %q, want X", g.Winner())
	}
}

func TestTicTacToe_MixedLineNoFalsePositive(t *testing.T) {
	g := NewTicTacToe(testQuestions(20))

	// Top row ends up X O X, not a win for anyone.
	for _, cell := range []int{0, 1, 2, 4} {
		place(t, g, cell)
	}

	if g.Winner() != MarkNone {
		t.Errorf("winner = %q, want none", g.Winner())
	}
}

func TestTicTacToe_Reset(t *testing.T) {
	g := NewTicTacToe(testQuestions(9))
	for _, cell := range []int{0, 3, 1, 4, 2} {
		place(t, g, cell)
	}

	g.Reset()

	if g.Board() != [9]Mark{} {
		t.Error("board not cleared")
	}
	if g.Current() != MarkX {
		t.Errorf("current = %q, want X", g.Current())
	}
	if g.Winner() != MarkNone {
		t.Errorf("winner = %q, want none", g.Winner())
	}
	if g.Round.Index() != 0 {
		t.Errorf("question index = %d, want 0", g.Round.Index())
	}
}
