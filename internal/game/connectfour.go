package game

import "github.com/boaziz1447-maker/omar-alessa/internal/lesson"

// Disc is a four-in-a-row cell owner.
type Disc string

const (
	DiscNone   Disc = ""
	DiscRed    Disc = "red"
	DiscYellow Disc = "yellow"
)

// Board dimensions for four-in-a-row.
const (
	C4Rows = 6
	C4Cols = 7
)

// c4Axes are the 4 principal directions a winning line can run in:
// horizontal, vertical and the two diagonals. Each axis is counted in
// both directions from the placed disc.
var c4Axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal ↘
	{1, -1}, // diagonal ↙
}

// ConnectFour is the four-in-a-row engine. Discs fall to the lowest
// empty row of their column; moves are gated on the quiz round like
// tic-tac-toe.
type ConnectFour struct {
	Round *Round

	grid    [C4Rows][C4Cols]Disc
	current Disc
	winner  Disc
}

// NewConnectFour creates an engine over the given question queue.
// Red moves first.
func NewConnectFour(questions []lesson.Question) *ConnectFour {
	g := &ConnectFour{current: DiscRed}
	g.Round = NewRound(questions)
	g.Round.OnCorrect = func(r *Round) { r.OpenGate() }
	g.Round.OnWrong = func(r *Round) { r.Next() }
	return g
}

// Grid returns the current grid, row 0 at the top.
func (g *ConnectFour) Grid() [C4Rows][C4Cols]Disc { return g.grid }

// Current returns the disc color that moves next.
func (g *ConnectFour) Current() Disc { return g.current }

// Winner returns the winning color, or DiscNone while the game is open.
func (g *ConnectFour) Winner() Disc { return g.winner }

// DropDisc drops the current player's disc into the given column. It is
// a silent no-op when the move gate is closed, the column is out of
// range or full, or a winner is already set. Returns true when a disc
// was placed.
func (g *ConnectFour) DropDisc(col int) bool {
	if !g.Round.MoveEnabled() || g.winner != DiscNone {
		return false
	}
	if col < 0 || col >= C4Cols {
		return false
	}

	row := -1
	for r := C4Rows - 1; r >= 0; r-- {
		if g.grid[r][col] == DiscNone {
			row = r
			break
		}
	}
	if row < 0 {
		return false // column full
	}

	g.grid[row][col] = g.current

	// A single disc cannot complete two lines with different owners, so
	// checking axes in a fixed order and stopping at the first win is
	// outcome-equivalent to resolving simultaneous completions.
	if g.winsAt(row, col) {
		g.winner = g.current
		return true
	}

	if g.current == DiscRed {
		g.current = DiscYellow
	} else {
		g.current = DiscRed
	}
	g.Round.CloseGate()
	g.Round.Next()
	return true
}

// winsAt reports whether the cell at (row, col) completes a run of 4 or
// more same-owner discs along any axis.
func (g *ConnectFour) winsAt(row, col int) bool {
	owner := g.grid[row][col]
	for _, axis := range c4Axes {
		count := 1
		count += g.runLength(row, col, axis[0], axis[1], owner)
		count += g.runLength(row, col, -axis[0], -axis[1], owner)
		if count >= 4 {
			return true
		}
	}
	return false
}

// runLength counts consecutive owner cells from (row, col) exclusive,
// stepping by (dr, dc).
func (g *ConnectFour) runLength(row, col, dr, dc int, owner Disc) int {
	n := 0
	r, c := row+dr, col+dc
	for r >= 0 && r < C4Rows && c >= 0 && c < C4Cols && g.grid[r][c] == owner {
		n++
		r += dr
		c += dc
	}
	return n
}

// Reset reinitializes the grid, the current player, the winner and the
// question queue.
func (g *ConnectFour) Reset() {
	g.grid = [C4Rows][C4Cols]Disc{}
	g.current = DiscRed
	g.winner = DiscNone
	g.Round.Reset()
}
