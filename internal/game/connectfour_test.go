package game

import (
	"testing"
)

// drop forces a disc into a column through the public API.
func drop(t *testing.T, g *ConnectFour, col int) {
	t.Helper()
	g.Round.MarkCorrect()
	if !g.DropDisc(col) {
		t.Fatalf("drop into column %d rejected", col)
	}
}

func TestConnectFour_GateClosedRejectsDrop(t *testing.T) {
	g := NewConnectFour(testQuestions(10))

	if g.DropDisc(3) {
		t.Fatal("disc dropped with gate closed")
	}
	if g.Grid() != [C4Rows][C4Cols]Disc{} {
		t.Error("grid changed")
	}
}

func TestConnectFour_Gravity(t *testing.T) {
	g := NewConnectFour(testQuestions(10))

	drop(t, g, 3)
	drop(t, g, 3)

	grid := g.Grid()
	if grid[C4Rows-1][3] != DiscRed {
		t.Errorf("bottom cell = %q, want red", grid[C4Rows-1][3])
	}
	if grid[C4Rows-2][3] != DiscYellow {
		t.Errorf("second cell = %q, want yellow", grid[C4Rows-2][3])
	}
}

func TestConnectFour_FullColumnNoOp(t *testing.T) {
	g := NewConnectFour(testQuestions(40))

	for i := 0; i < C4Rows; i++ {
		drop(t, g, 0)
	}

	before := g.Grid()
	current := g.Current()
	qIdx := g.Round.Index()

	g.Round.MarkCorrect()
	if g.DropDisc(0) {
		t.Fatal("drop into full column accepted")
	}
	if g.Grid() != before {
		t.Error("grid changed on full-column drop")
	}
	if g.Current() != current {
		t.Error("player toggled on full-column drop")
	}
	if g.Round.Index() != qIdx {
		t.Error("question advanced on full-column drop")
	}
}

func TestConnectFour_VerticalWin(t *testing.T) {
	g := NewConnectFour(testQuestions(40))

	// Red stacks column 3, yellow answers into column 0.
	for i := 0; i < 3; i++ {
		drop(t, g, 3)
		drop(t, g, 0)
	}
	drop(t, g, 3)

	if g.Winner() != DiscRed {
		t.Fatalf("winner = %q, want red", g.Winner())
	}

	g.Round.MarkCorrect()
	if g.DropDisc(1) {
		t.Error("drop accepted after game over")
	}
}

func TestConnectFour_HorizontalWin(t *testing.T) {
	g := NewConnectFour(testQuestions(40))

	// Red fills columns 0-3 on the bottom row; yellow stacks column 6.
	for _, col := range []int{0, 6, 1, 6, 2, 6} {
		drop(t, g, col)
	}
	drop(t, g, 3)

	if g.Winner() != DiscRed {
		t.Errorf("winner = %q, want red", g.Winner())
	}
}

func TestConnectFour_DiagonalWin(t *testing.T) {
	g := NewConnectFour(testQuestions(60))

	// Build a red ↗ diagonal at columns 0..3 with yellow filler.
	moves := []int{
		0,    // red (0, bottom)
		1,    // yellow filler
		1,    // red (1, height 2)
		2,    // yellow filler
		3,    // red placeholder, keeps turn parity
		2,    // yellow filler
		2,    // red (2, height 3)
		3,    // yellow filler
		5,    // red elsewhere
		3,    // yellow filler
	}
	for _, col := range moves {
		drop(t, g, col)
	}
	drop(t, g, 3) // red (3, height 4) completes the diagonal

	if g.Winner() != DiscRed {
		t.Errorf("winner = %q, want red", g.Winner())
	}
}

func TestConnectFour_NoWinOnThree(t *testing.T) {
	g := NewConnectFour(testQuestions(40))

	for _, col := range []int{0, 6, 1, 6, 2} {
		drop(t, g, col)
	}

	if g.Winner() != DiscNone {
		t.Errorf("winner = %q, want none", g.Winner())
	}
}

func TestConnectFour_Reset(t *testing.T) {
	g := NewConnectFour(testQuestions(40))
	for _, col := range []int{0, 6, 1, 6, 2, 6} {
		drop(t, g, col)
	}

	g.Reset()

	if g.Grid() != [C4Rows][C4Cols]Disc{} {
		t.Error("grid not cleared")
	}
	if g.Current() != DiscRed {
		t.Errorf("current = %q, want red", g.Current())
	}
	if g.Round.Index() != 0 {
		t.Errorf("question index = %d, want 0", g.Round.Index())
	}
}
