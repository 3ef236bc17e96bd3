package game

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/game"
	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/layout"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// shuffleTickMsg advances the shuffle animation one swap at a time.
type shuffleTickMsg time.Time

// cardGlyphs map card contents to their face symbols.
var cardGlyphs = map[string]string{
	"star":     "★",
	"rabbit":   "🐇",
	"triangle": "▲",
	"square":   "■",
	"hexagon":  "⬢",
}

// MemoryScreen drives the memory-challenge engine. The cosmetic card
// shuffle runs on a timer, one pair swap per tick.
type MemoryScreen struct {
	name   string
	engine *game.Memory
	done   bool
}

var _ screen.Screen = (*MemoryScreen)(nil)
var _ screen.KeyHintProvider = (*MemoryScreen)(nil)

func newMemory(strat lesson.Strategy) *MemoryScreen {
	return &MemoryScreen{
		name:   strat.Name,
		engine: game.NewMemory(strat.Questions),
	}
}

func (s *MemoryScreen) Init() tea.Cmd { return nil }

func (s *MemoryScreen) Title() string { return s.name }

func (s *MemoryScreen) KeyHints() []layout.KeyHint {
	switch s.engine.Phase() {
	case game.MemorySetup:
		return []layout.KeyHint{
			{Key: "2-4", Description: "عدد الفرق"},
			{Key: "Esc", Description: "رجوع"},
		}
	case game.MemoryIntro:
		return []layout.KeyHint{
			{Key: "Space", Description: "اقلب البطاقات"},
			{Key: "Esc", Description: "رجوع"},
		}
	case game.MemoryGuessing:
		return []layout.KeyHint{
			{Key: "1-6", Description: "اختر بطاقة"},
			{Key: "Esc", Description: "رجوع"},
		}
	case game.MemoryResult:
		return []layout.KeyHint{
			{Key: "N", Description: "الجولة التالية"},
			{Key: "Esc", Description: "رجوع"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "كشف الإجابة"},
			{Key: "C/X", Description: "تقييم"},
			{Key: "Esc", Description: "رجوع"},
		}
	}
}

func (s *MemoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case shuffleTickMsg:
		if s.engine.ShuffleStep() {
			return s, s.shuffleTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *MemoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.engine.Phase() {
	case game.MemorySetup:
		if len(key) == 1 && key[0] >= '2' && key[0] <= '4' {
			_ = s.engine.Setup(int(key[0] - '0'))
		}

	case game.MemoryQuestion:
		switch key {
		case "space", " ":
			s.engine.Round.Reveal()
		case "c":
			s.engine.Round.MarkCorrect()
		case "x":
			s.engine.Round.MarkWrong()
		}

	case game.MemoryIntro:
		if key == "space" || key == " " || key == "enter" {
			s.engine.FlipDown()
			s.engine.BeginShuffle()
			return s, s.shuffleTick()
		}

	case game.MemoryGuessing:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '6' {
			s.engine.RevealCard(int(key[0] - '1'))
		}

	case game.MemoryResult:
		if key == "n" {
			if !s.engine.NextRound() {
				s.done = true
			}
		}
	}

	return s, nil
}

func (s *MemoryScreen) shuffleTick() tea.Cmd {
	return tea.Tick(350*time.Millisecond, func(t time.Time) tea.Msg {
		return shuffleTickMsg(t)
	})
}

func (s *MemoryScreen) View(width, height int) string {
	var sections []string

	switch s.engine.Phase() {
	case game.MemorySetup:
		sections = append(sections,
			questionStyle.Render("تحدي الذاكرة"),
			dimStyle.Render("اختر عدد الفرق (2 إلى 4)"))

	case game.MemoryQuestion:
		sections = append(sections, s.renderScores())
		sections = append(sections, turnStyle.Render("دور "+s.engine.CurrentTeam().Name))
		sections = append(sections, renderQuestion(s.engine.Round))
		if hint := judgeHint(s.engine.Round); hint != "" {
			sections = append(sections, hint)
		}

	case game.MemoryIntro:
		sections = append(sections, s.renderScores())
		sections = append(sections, turnStyle.Render("احفظ مكان الأرنبين!"))
		sections = append(sections, s.renderCards())

	case game.MemoryFlipDown, game.MemoryShuffling:
		sections = append(sections, s.renderScores())
		sections = append(sections, dimStyle.Render("جارٍ الخلط..."))
		sections = append(sections, s.renderCards())

	case game.MemoryGuessing:
		sections = append(sections, s.renderScores())
		sections = append(sections,
			turnStyle.Render(fmt.Sprintf("%s: أين الأرنبان؟ (%d من %d)",
				s.engine.CurrentTeam().Name, s.engine.FoundTargets(), game.MemoryTargetCount)))
		sections = append(sections, s.renderCards())

	case game.MemoryResult:
		sections = append(sections, s.renderScores())
		if s.done {
			sections = append(sections, winStyle.Render("انتهت الأسئلة! "+s.winnerLine()))
		} else if s.engine.LastPickMissed() {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("بطاقة خاطئة، انتهت الجولة"))
		} else {
			sections = append(sections, winStyle.Render(fmt.Sprintf("وجدتم الأرنبين! +%d نقطة", game.MemoryBonusPoints)))
		}
		sections = append(sections, s.renderCards())
	}

	content := strings.Join(sections, "\n\n")
	return components.GameFrame(content, width, height)
}

func (s *MemoryScreen) renderScores() string {
	var parts []string
	for i, t := range s.engine.Teams() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color))
		if i == s.engine.CurrentTeamIndex() {
			style = style.Bold(true).Underline(true)
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s: %d", t.Name, t.Score)))
	}
	return strings.Join(parts, dimStyle.Render("  ·  "))
}

func (s *MemoryScreen) renderCards() string {
	faceUp := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(5).
		Align(lipgloss.Center)

	faceDown := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Width(5).
		Align(lipgloss.Center)

	var cells []string
	for i, c := range s.engine.Cards() {
		if c.IsRevealed {
			cells = append(cells, faceUp.Render(cardGlyphs[c.Content]))
		} else {
			cells = append(cells, faceDown.Render(fmt.Sprintf("%d", i+1)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// winnerLine names the highest-scoring team.
func (s *MemoryScreen) winnerLine() string {
	teams := s.engine.Teams()
	if len(teams) == 0 {
		return ""
	}
	best := teams[0]
	for _, t := range teams[1:] {
		if t.Score > best.Score {
			best = t
		}
	}
	return fmt.Sprintf("المتصدر %s بـ %d نقطة", best.Name, best.Score)
}
