package game

import (
	"math/rand/v2"
	"testing"
)

func setupMemory(t *testing.T, teams, questions int) *Memory {
	t.Helper()
	g := NewMemory(testQuestions(questions))
	if err := g.Setup(teams); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return g
}

// runShuffle drives the engine from intro through the full shuffle.
func runShuffle(g *Memory) {
	g.FlipDown()
	g.BeginShuffle()
	for g.ShuffleStep() {
	}
}

func TestMemory_SetupBounds(t *testing.T) {
	for _, n := range []int{1, 5} {
		g := NewMemory(testQuestions(3))
		if err := g.Setup(n); err == nil {
			t.Errorf("Setup(%d) accepted", n)
		}
	}
	for _, n := range []int{2, 3, 4} {
		g := NewMemory(testQuestions(3))
		if err := g.Setup(n); err != nil {
			t.Errorf("Setup(%d): %v", n, err)
		} else if len(g.Teams()) != n {
			t.Errorf("Setup(%d) created %d teams", n, len(g.Teams()))
		}
	}
}

func TestMemory_CorrectAnswerDealsAndScores(t *testing.T) {
	g := setupMemory(t, 2, 5)

	g.Round.MarkCorrect()

	if g.Phase() != MemoryIntro {
		t.Fatalf("phase = %q, want %q", g.Phase(), MemoryIntro)
	}
	if got := g.Teams()[0].Score; got != MemoryAnswerPoints {
		t.Errorf("score = %d, want %d", got, MemoryAnswerPoints)
	}
	if len(g.Cards()) != MemoryCardCount {
		t.Fatalf("dealt %d cards, want %d", len(g.Cards()), MemoryCardCount)
	}
	for _, c := range g.Cards() {
		if !c.IsRevealed {
			t.Error("cards must be dealt face-up")
		}
	}
}

func TestMemory_WrongAnswerRotatesTeamOnly(t *testing.T) {
	g := setupMemory(t, 3, 5)

	g.Round.MarkWrong()

	if g.Phase() != MemoryQuestion {
		t.Errorf("phase = %q, want %q", g.Phase(), MemoryQuestion)
	}
	if g.CurrentTeamIndex() != 1 {
		t.Errorf("current team = %d, want 1", g.CurrentTeamIndex())
	}
	if g.Round.Index() != 0 {
		t.Errorf("question advanced on wrong answer: index = %d", g.Round.Index())
	}
	if g.Teams()[0].Score != 0 {
		t.Errorf("score awarded on wrong answer")
	}
}

func TestMemory_ExactlyTwoTargetsEveryRound(t *testing.T) {
	g := setupMemory(t, 2, 2000)
	g.SetRand(rand.New(rand.NewPCG(7, 7)))

	for round := 0; round < 1000; round++ {
		g.Round.MarkCorrect()
		runShuffle(g)

		targets := 0
		for _, c := range g.Cards() {
			if c.IsTarget {
				targets++
			}
		}
		if targets != MemoryTargetCount {
			t.Fatalf("round %d: %d targets, want %d", round, targets, MemoryTargetCount)
		}

		// Pick until the round resolves; counter must never pass 2.
		for i := 0; g.Phase() == MemoryGuessing; i++ {
			g.RevealCard(i)
			if g.FoundTargets() > MemoryTargetCount {
				t.Fatalf("round %d: found-target counter reached %d", round, g.FoundTargets())
			}
		}
		if !g.NextRound() {
			t.Fatalf("round %d: question queue exhausted early", round)
		}
	}
}

func TestMemory_BothTargetsAwardBonus(t *testing.T) {
	g := setupMemory(t, 2, 5)
	g.Round.MarkCorrect()
	runShuffle(g)

	for i, c := range g.Cards() {
		if c.IsTarget {
			g.RevealCard(i)
		}
	}

	if g.Phase() != MemoryResult {
		t.Fatalf("phase = %q, want %q", g.Phase(), MemoryResult)
	}
	want := MemoryAnswerPoints + MemoryBonusPoints
	if got := g.Teams()[0].Score; got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
	if g.LastPickMissed() {
		t.Error("round flagged as missed")
	}
}

func TestMemory_WrongPickEndsRoundWithoutBonus(t *testing.T) {
	g := setupMemory(t, 2, 5)
	g.Round.MarkCorrect()
	runShuffle(g)

	for i, c := range g.Cards() {
		if !c.IsTarget {
			g.RevealCard(i)
			break
		}
	}

	if g.Phase() != MemoryResult {
		t.Fatalf("phase = %q, want %q", g.Phase(), MemoryResult)
	}
	if got := g.Teams()[0].Score; got != MemoryAnswerPoints {
		t.Errorf("score = %d, want %d", got, MemoryAnswerPoints)
	}
	if !g.LastPickMissed() {
		t.Error("round not flagged as missed")
	}
}

func TestMemory_OneTargetKeepsGuessing(t *testing.T) {
	g := setupMemory(t, 2, 5)
	g.Round.MarkCorrect()
	runShuffle(g)

	for i, c := range g.Cards() {
		if c.IsTarget {
			g.RevealCard(i)
			break
		}
	}

	if g.Phase() != MemoryGuessing {
		t.Errorf("phase = %q, want %q", g.Phase(), MemoryGuessing)
	}
	if g.FoundTargets() != 1 {
		t.Errorf("found targets = %d, want 1", g.FoundTargets())
	}
}

func TestMemory_RevealOutsideGuessingIgnored(t *testing.T) {
	g := setupMemory(t, 2, 5)
	g.Round.MarkCorrect() // intro phase, cards face-up

	g.RevealCard(0)
	if g.Phase() != MemoryIntro {
		t.Errorf("phase changed by reveal outside guessing: %q", g.Phase())
	}
}

func TestMemory_NextRoundRotatesTeamAndQuestion(t *testing.T) {
	g := setupMemory(t, 2, 5)
	g.Round.MarkCorrect()
	runShuffle(g)
	for i, c := range g.Cards() {
		if !c.IsTarget {
			g.RevealCard(i)
			break
		}
	}

	if !g.NextRound() {
		t.Fatal("NextRound returned false with questions remaining")
	}
	if g.CurrentTeamIndex() != 1 {
		t.Errorf("current team = %d, want 1", g.CurrentTeamIndex())
	}
	if g.Round.Index() != 1 {
		t.Errorf("question index = %d, want 1", g.Round.Index())
	}
	if g.Phase() != MemoryQuestion {
		t.Errorf("phase = %q, want %q", g.Phase(), MemoryQuestion)
	}
}
