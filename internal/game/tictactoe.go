package game

import "github.com/boaziz1447-maker/omar-alessa/internal/lesson"

// Mark is a tic-tac-toe cell owner.
type Mark string

const (
	MarkNone Mark = ""
	MarkX    Mark = "X"
	MarkO    Mark = "O"
)

// winningLines are the 8 cell triples that decide a tic-tac-toe game:
// 3 rows, 3 columns, 2 diagonals.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// TicTacToe is the X&O engine. A move may only be placed after the
// current question was answered correctly (the round's move gate).
type TicTacToe struct {
	Round *Round

	board   [9]Mark
	current Mark
	winner  Mark
}

// NewTicTacToe creates an engine over the given question queue.
// X moves first.
func NewTicTacToe(questions []lesson.Question) *TicTacToe {
	g := &TicTacToe{current: MarkX}
	g.Round = NewRound(questions)
	g.Round.OnCorrect = func(r *Round) { r.OpenGate() }
	g.Round.OnWrong = func(r *Round) { r.Next() }
	return g
}

// Board returns the current board.
func (g *TicTacToe) Board() [9]Mark { return g.board }

// Cell returns the owner of the given cell.
func (g *TicTacToe) Cell(i int) Mark { return g.board[i] }

// Current returns the mark that moves next.
func (g *TicTacToe) Current() Mark { return g.current }

// Winner returns the winning mark, or MarkNone while the game is open.
func (g *TicTacToe) Winner() Mark { return g.winner }

// PlaceMove puts the current player's mark on the given cell. It is a
// silent no-op when the move gate is closed, the cell is out of range or
// occupied, or a winner is already set. Returns true when a mark was
// placed.
func (g *TicTacToe) PlaceMove(cell int) bool {
	if !g.Round.MoveEnabled() || g.winner != MarkNone {
		return false
	}
	if cell < 0 || cell >= len(g.board) || g.board[cell] != MarkNone {
		return false
	}

	g.board[cell] = g.current

	if g.lineOwned(g.current) {
		g.winner = g.current
		return true
	}

	if g.current == MarkX {
		g.current = MarkO
	} else {
		g.current = MarkX
	}
	g.Round.CloseGate()
	g.Round.Next()
	return true
}

// lineOwned reports whether mark fully owns any winning line.
func (g *TicTacToe) lineOwned(mark Mark) bool {
	for _, line := range winningLines {
		if g.board[line[0]] == mark && g.board[line[1]] == mark && g.board[line[2]] == mark {
			return true
		}
	}
	return false
}

// Reset reinitializes the board, the current player, the winner and the
// question queue.
func (g *TicTacToe) Reset() {
	g.board = [9]Mark{}
	g.current = MarkX
	g.winner = MarkNone
	g.Round.Reset()
}
