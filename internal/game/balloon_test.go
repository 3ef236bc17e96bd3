package game

import (
	"math/rand/v2"
	"testing"
)

func setupBalloon(t *testing.T, players, questions int) *Balloon {
	t.Helper()
	g := NewBalloon(testQuestions(questions))
	names := []string{"سارة", "ليان", "نورة", "هند", "ريم", "جود", "لمى", "دانة", "غلا", "شهد"}
	for i := 0; i < players; i++ {
		if err := g.AddPlayer(names[i]); err != nil {
			t.Fatalf("add player: %v", err)
		}
	}
	if err := g.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return g
}

// chooseCorrect picks whichever option holds the right answer.
func chooseCorrect(g *Balloon) {
	if g.Options()[0].IsCorrect {
		g.Choose(0)
	} else {
		g.Choose(1)
	}
}

func chooseWrong(g *Balloon) {
	if g.Options()[0].IsCorrect {
		g.Choose(1)
	} else {
		g.Choose(0)
	}
}

func TestBalloon_SetupValidation(t *testing.T) {
	g := NewBalloon(testQuestions(5))

	if err := g.AddPlayer("   "); err == nil {
		t.Error("blank name accepted")
	}
	if err := g.Start(); err == nil {
		t.Error("started with no players")
	}

	for i := 0; i < BalloonMaxPlayers; i++ {
		if err := g.AddPlayer("لاعب"); err != nil {
			t.Fatalf("add player %d: %v", i, err)
		}
	}
	if err := g.AddPlayer("زيادة"); err == nil {
		t.Errorf("accepted player %d", BalloonMaxPlayers+1)
	}
}

func TestBalloon_AddAfterStartRejected(t *testing.T) {
	g := setupBalloon(t, 2, 5)

	if err := g.AddPlayer("متأخر"); err == nil {
		t.Error("player added after start")
	}
	if err := g.Start(); err == nil {
		t.Error("second start accepted")
	}
}

func TestBalloon_RemovePlayer(t *testing.T) {
	g := NewBalloon(testQuestions(5))
	g.AddPlayer("أ")
	g.AddPlayer("ب")
	g.AddPlayer("ج")

	g.RemovePlayer(g.Players()[1].ID)

	if len(g.Players()) != 2 {
		t.Fatalf("roster size = %d, want 2", len(g.Players()))
	}
	if g.Players()[0].Name != "أ" || g.Players()[1].Name != "ج" {
		t.Errorf("roster = %v", g.Players())
	}
}

func TestBalloon_OptionsHoldBothAnswers(t *testing.T) {
	g := setupBalloon(t, 2, 5)
	g.SetRand(rand.New(rand.NewPCG(1, 1)))

	g.RevealOptions()
	opts := g.Options()
	if opts[0].IsCorrect == opts[1].IsCorrect {
		t.Fatalf("options = %+v, want exactly one correct", opts)
	}
	texts := map[string]bool{opts[0].Text: true, opts[1].Text: true}
	if !texts["a"] || !texts["w"] {
		t.Errorf("options = %+v, want answer and distractor", opts)
	}
}

func TestBalloon_TurnRotationIgnoresOutcome(t *testing.T) {
	g := setupBalloon(t, 3, 20)

	want := []int{0, 1, 2, 0, 1, 2}
	for round, w := range want {
		if g.CurrentPlayerIndex() != w {
			t.Fatalf("round %d: current = %d, want %d", round, g.CurrentPlayerIndex(), w)
		}
		g.RevealOptions()
		if round%2 == 0 {
			chooseCorrect(g)
			g.ReportCatch(round%4 == 0)
		} else {
			chooseWrong(g)
		}
	}
}

func TestBalloon_CaughtAwardsFullPoints(t *testing.T) {
	g := setupBalloon(t, 2, 5)

	g.RevealOptions()
	chooseCorrect(g)
	if g.Phase() != BalloonCheckCatch {
		t.Fatalf("phase = %q, want %q", g.Phase(), BalloonCheckCatch)
	}
	g.ReportCatch(true)

	if got := g.Players()[0].Score; got != BalloonCaughtPoints {
		t.Errorf("score = %d, want %d", got, BalloonCaughtPoints)
	}
	if g.Phase() != BalloonReady {
		t.Errorf("phase = %q, want %q", g.Phase(), BalloonReady)
	}
	if g.Round.Index() != 1 {
		t.Errorf("question index = %d, want 1", g.Round.Index())
	}
}

func TestBalloon_MissedAwardsConsolation(t *testing.T) {
	g := setupBalloon(t, 2, 5)

	g.RevealOptions()
	chooseCorrect(g)
	g.ReportCatch(false)

	if got := g.Players()[0].Score; got != BalloonMissedPoints {
		t.Errorf("score = %d, want %d", got, BalloonMissedPoints)
	}
}

func TestBalloon_WrongPickScoresNothingAndAdvances(t *testing.T) {
	g := setupBalloon(t, 2, 5)

	g.RevealOptions()
	chooseWrong(g)

	if got := g.Players()[0].Score; got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
	if g.Phase() != BalloonReady {
		t.Errorf("phase = %q, want %q", g.Phase(), BalloonReady)
	}
	if g.CurrentPlayerIndex() != 1 {
		t.Errorf("current = %d, want 1", g.CurrentPlayerIndex())
	}
	if g.Round.Index() != 1 {
		t.Errorf("question index = %d, want 1", g.Round.Index())
	}
}

func TestBalloon_PhaseGuards(t *testing.T) {
	g := setupBalloon(t, 2, 5)

	// Choose and ReportCatch before the options are revealed.
	g.Choose(0)
	if g.Phase() != BalloonReady {
		t.Errorf("Choose outside question phase moved to %q", g.Phase())
	}
	g.ReportCatch(true)
	if g.Players()[0].Score != 0 {
		t.Error("catch scored outside check phase")
	}

	g.RevealOptions()
	g.Choose(2)
	if g.Phase() != BalloonQuestion {
		t.Errorf("out-of-range pick moved to %q", g.Phase())
	}
}
