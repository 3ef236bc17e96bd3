package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
)

// MemoryPhase is a state of the memory-challenge machine.
type MemoryPhase string

const (
	MemorySetup     MemoryPhase = "setup"
	MemoryQuestion  MemoryPhase = "question"
	MemoryIntro     MemoryPhase = "memory_intro"
	MemoryFlipDown  MemoryPhase = "flipping_down"
	MemoryShuffling MemoryPhase = "shuffling"
	MemoryGuessing  MemoryPhase = "guessing"
	MemoryResult    MemoryPhase = "result"
)

// Memory scoring and layout constants.
const (
	MemoryCardCount    = 6
	MemoryTargetCount  = 2
	MemoryShuffleSteps = 8
	MemoryAnswerPoints = 10
	MemoryBonusPoints  = 30
	MemoryMinTeams     = 2
	MemoryMaxTeams     = 4
)

// Team is a competing group in the memory game. The color fields are
// presentational and travel with the score for rendering convenience.
type Team struct {
	ID     int
	Name   string
	Score  int
	Color  string
	Bg     string
	Border string
}

// teamTemplates are the fixed name/color presets applied at setup.
var teamTemplates = [MemoryMaxTeams]Team{
	{Name: "الفريق الأحمر", Color: "#F43F5E", Bg: "#4C0519", Border: "#BE123C"},
	{Name: "الفريق الأزرق", Color: "#38BDF8", Bg: "#082F49", Border: "#0284C7"},
	{Name: "الفريق الأخضر", Color: "#4ADE80", Bg: "#052E16", Border: "#16A34A"},
	{Name: "الفريق الأصفر", Color: "#FACC15", Bg: "#422006", Border: "#CA8A04"},
}

// Card is one of the 6 dealt memory cards. Exactly 2 cards per round are
// targets (the hidden rabbit); the rest are decoy shapes.
type Card struct {
	ID         int
	IsTarget   bool
	Content    string
	IsRevealed bool
}

// Memory is the memory-challenge engine: teams answer a lesson question
// to unlock a card round where they hunt the two target cards.
type Memory struct {
	Round *Round

	phase        MemoryPhase
	teams        []Team
	currentTeam  int
	cards        []Card
	foundTargets int
	shuffleStep  int
	lastPickMiss bool

	rng *rand.Rand
}

// NewMemory creates an engine over the given question queue.
func NewMemory(questions []lesson.Question) *Memory {
	g := &Memory{phase: MemorySetup}
	g.Round = NewRound(questions)
	g.Round.OnCorrect = func(*Round) { g.answerCorrect() }
	g.Round.OnWrong = func(*Round) { g.answerWrong() }
	return g
}

// SetRand overrides the shuffle randomness source. Used by tests.
func (g *Memory) SetRand(r *rand.Rand) { g.rng = r }

// Phase returns the current machine state.
func (g *Memory) Phase() MemoryPhase { return g.phase }

// Teams returns the competing teams.
func (g *Memory) Teams() []Team { return g.teams }

// CurrentTeam returns the team whose turn it is.
func (g *Memory) CurrentTeam() Team { return g.teams[g.currentTeam] }

// CurrentTeamIndex returns the index of the team whose turn it is.
func (g *Memory) CurrentTeamIndex() int { return g.currentTeam }

// Cards returns the dealt cards in display order.
func (g *Memory) Cards() []Card { return g.cards }

// FoundTargets returns how many targets the current team has uncovered
// this round.
func (g *Memory) FoundTargets() int { return g.foundTargets }

// LastPickMissed reports whether the round ended on a wrong pick rather
// than on finding both targets.
func (g *Memory) LastPickMissed() bool { return g.lastPickMiss }

// Setup creates the teams and starts the first question round.
func (g *Memory) Setup(teamCount int) error {
	if g.phase != MemorySetup {
		return fmt.Errorf("setup already done")
	}
	if teamCount < MemoryMinTeams || teamCount > MemoryMaxTeams {
		return fmt.Errorf("team count must be between %d and %d, got %d", MemoryMinTeams, MemoryMaxTeams, teamCount)
	}
	g.teams = make([]Team, teamCount)
	for i := range g.teams {
		g.teams[i] = teamTemplates[i]
		g.teams[i].ID = i
	}
	g.currentTeam = 0
	g.phase = MemoryQuestion
	return nil
}

// answerCorrect awards the answer points and deals a fresh card layout
// face-up for the memorization intro.
func (g *Memory) answerCorrect() {
	if g.phase != MemoryQuestion {
		return
	}
	g.teams[g.currentTeam].Score += MemoryAnswerPoints
	g.deal()
	g.foundTargets = 0
	g.lastPickMiss = false
	g.phase = MemoryIntro
}

// answerWrong passes the turn to the next team without dealing cards or
// advancing the shared question.
func (g *Memory) answerWrong() {
	if g.phase != MemoryQuestion {
		return
	}
	g.currentTeam = (g.currentTeam + 1) % len(g.teams)
}

// deal lays out the fixed 6-card round: 4 decoys across 4 distinct
// shapes plus 2 identical target cards, all face-up.
func (g *Memory) deal() {
	g.cards = []Card{
		{ID: 0, Content: "star"},
		{ID: 1, Content: "rabbit", IsTarget: true},
		{ID: 2, Content: "triangle"},
		{ID: 3, Content: "square"},
		{ID: 4, Content: "rabbit", IsTarget: true},
		{ID: 5, Content: "hexagon"},
	}
	for i := range g.cards {
		g.cards[i].IsRevealed = true
	}
}

// FlipDown turns all cards face-down, moving intro → flipping_down.
func (g *Memory) FlipDown() {
	if g.phase != MemoryIntro {
		return
	}
	for i := range g.cards {
		g.cards[i].IsRevealed = false
	}
	g.phase = MemoryFlipDown
}

// BeginShuffle starts the cosmetic shuffle animation.
func (g *Memory) BeginShuffle() {
	if g.phase != MemoryFlipDown {
		return
	}
	g.shuffleStep = 0
	g.phase = MemoryShuffling
}

// ShuffleStep swaps one random pair of card positions. After the fixed
// number of steps the cards become clickable. Returns true while more
// steps remain.
func (g *Memory) ShuffleStep() bool {
	if g.phase != MemoryShuffling {
		return false
	}
	i, j := g.intN(len(g.cards)), g.intN(len(g.cards))
	g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	g.shuffleStep++
	if g.shuffleStep >= MemoryShuffleSteps {
		g.phase = MemoryGuessing
		return false
	}
	return true
}

// RevealCard uncovers the picked card. A target keeps the team guessing
// until the second target lands the bonus; any decoy ends the round.
// Picks outside the guessing phase or on already-revealed cards are
// silent no-ops.
func (g *Memory) RevealCard(idx int) {
	if g.phase != MemoryGuessing {
		return
	}
	if idx < 0 || idx >= len(g.cards) || g.cards[idx].IsRevealed {
		return
	}
	g.cards[idx].IsRevealed = true

	if g.cards[idx].IsTarget {
		g.foundTargets++
		if g.foundTargets == MemoryTargetCount {
			g.teams[g.currentTeam].Score += MemoryBonusPoints
			g.phase = MemoryResult
		}
		return
	}

	g.lastPickMiss = true
	g.phase = MemoryResult
}

// NextRound rotates the turn to the next team and advances the shared
// question. Returns false when the question queue is exhausted.
func (g *Memory) NextRound() bool {
	if g.phase != MemoryResult {
		return false
	}
	g.currentTeam = (g.currentTeam + 1) % len(g.teams)
	if !g.Round.Next() {
		return false
	}
	g.phase = MemoryQuestion
	return true
}

func (g *Memory) intN(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}
