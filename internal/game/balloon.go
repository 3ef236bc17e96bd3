package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

// BalloonPhase is a state of the balloon-toss machine.
type BalloonPhase string

const (
	BalloonSetup      BalloonPhase = "setup"
	BalloonReady      BalloonPhase = "ready"
	BalloonQuestion   BalloonPhase = "question"
	BalloonCheckCatch BalloonPhase = "check_catch"
)

// Balloon scoring and roster constants.
const (
	BalloonMaxPlayers   = 10
	BalloonCaughtPoints = 30
	BalloonMissedPoints = 15
)

// Player is a balloon-toss contestant.
type Player struct {
	ID    int
	Name  string
	Score int
}

// Option is one of the two answers shown for a balloon question.
type Option struct {
	Text      string
	IsCorrect bool
}

// Balloon is the balloon-toss engine: each round one player picks
// between the correct answer and the distractor; a correct pick is
// followed by the physical catch check which decides the point value.
type Balloon struct {
	Round *Round

	phase       BalloonPhase
	players     []Player
	current     int
	options     [2]Option
	nextID      int
	lastCorrect bool

	rng *rand.Rand
}

// NewBalloon creates an engine over the given question queue.
func NewBalloon(questions []lesson.Question) *Balloon {
	g := &Balloon{phase: BalloonSetup}
	g.Round = NewRound(questions)
	return g
}

// SetRand overrides the option-order randomness source. Used by tests.
func (g *Balloon) SetRand(r *rand.Rand) { g.rng = r }

// Phase returns the current machine state.
func (g *Balloon) Phase() BalloonPhase { return g.phase }

// Players returns the roster in join order.
func (g *Balloon) Players() []Player { return g.players }

// CurrentPlayer returns the player whose turn it is.
func (g *Balloon) CurrentPlayer() Player { return g.players[g.current] }

// CurrentPlayerIndex returns the index of the player whose turn it is.
func (g *Balloon) CurrentPlayerIndex() int { return g.current }

// Options returns the two answers in display order.
func (g *Balloon) Options() [2]Option { return g.options }

// LastCorrect reports whether the most recent pick was correct.
func (g *Balloon) LastCorrect() bool { return g.lastCorrect }

// AddPlayer appends a contestant during setup. Names must be non-empty;
// duplicates are allowed.
func (g *Balloon) AddPlayer(name string) error {
	if g.phase != BalloonSetup {
		return fmt.Errorf("players can only be added during setup")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("player name is empty")
	}
	if len(g.players) >= BalloonMaxPlayers {
		return fmt.Errorf("at most %d players", BalloonMaxPlayers)
	}
	g.players = append(g.players, Player{ID: g.nextID, Name: name})
	g.nextID++
	return nil
}

// RemovePlayer deletes a contestant by id before the game starts.
func (g *Balloon) RemovePlayer(id int) {
	if g.phase != BalloonSetup {
		return
	}
	for i, p := range g.players {
		if p.ID == id {
			g.players = append(g.players[:i], g.players[i+1:]...)
			return
		}
	}
}

// Start leaves setup once at least one player has joined.
func (g *Balloon) Start() error {
	if g.phase != BalloonSetup {
		return fmt.Errorf("game already started")
	}
	if len(g.players) == 0 {
		return fmt.Errorf("at least one player is required")
	}
	g.current = 0
	g.prepareOptions()
	g.phase = BalloonReady
	return nil
}

// RevealOptions shows the two answers for the current question.
func (g *Balloon) RevealOptions() {
	if g.phase != BalloonReady {
		return
	}
	g.Round.Reveal()
	g.phase = BalloonQuestion
}

// Choose submits the player's pick. A wrong pick ends the round with no
// score; a correct pick moves to the catch check.
func (g *Balloon) Choose(i int) {
	if g.phase != BalloonQuestion || i < 0 || i > 1 {
		return
	}
	g.lastCorrect = g.options[i].IsCorrect
	if !g.lastCorrect {
		g.advanceRound()
		return
	}
	g.phase = BalloonCheckCatch
}

// ReportCatch records whether the player physically caught the balloon:
// caught earns the full points, a miss the consolation points. Either
// way the round advances.
func (g *Balloon) ReportCatch(caught bool) {
	if g.phase != BalloonCheckCatch {
		return
	}
	if caught {
		g.players[g.current].Score += BalloonCaughtPoints
	} else {
		g.players[g.current].Score += BalloonMissedPoints
	}
	g.advanceRound()
}

// advanceRound rotates to the next player and question regardless of the
// round's outcome.
func (g *Balloon) advanceRound() {
	g.current = (g.current + 1) % len(g.players)
	g.Round.Next()
	g.prepareOptions()
	g.phase = BalloonReady
}

// prepareOptions lays out the correct answer and the distractor in an
// order randomized 50/50 per question.
func (g *Balloon) prepareOptions() {
	q, ok := g.Round.Current()
	if !ok {
		g.options = [2]Option{}
		return
	}
	correct := Option{Text: q.Answer, IsCorrect: true}
	wrong := Option{Text: q.WrongAnswer}
	if g.coin() {
		g.options = [2]Option{correct, wrong}
	} else {
		g.options = [2]Option{wrong, correct}
	}
}

func (g *Balloon) coin() bool {
	if g.rng != nil {
		return g.rng.IntN(2) == 0
	}
	return rand.IntN(2) == 0
}
