package game

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/game"
	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/layout"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// TicTacToeScreen drives the X&O engine.
type TicTacToeScreen struct {
	name   string
	engine *game.TicTacToe
}

var _ screen.Screen = (*TicTacToeScreen)(nil)
var _ screen.KeyHintProvider = (*TicTacToeScreen)(nil)

func newTicTacToe(strat lesson.Strategy) *TicTacToeScreen {
	return &TicTacToeScreen{
		name:   strat.Name,
		engine: game.NewTicTacToe(strat.Questions),
	}
}

func (s *TicTacToeScreen) Init() tea.Cmd { return nil }

func (s *TicTacToeScreen) Title() string { return s.name }

func (s *TicTacToeScreen) KeyHints() []layout.KeyHint {
	if s.engine.Winner() != game.MarkNone {
		return []layout.KeyHint{
			{Key: "R", Description: "لعبة جديدة"},
			{Key: "Esc", Description: "رجوع"},
		}
	}
	if s.engine.Round.MoveEnabled() {
		return []layout.KeyHint{
			{Key: "1-9", Description: "ضع العلامة"},
			{Key: "Esc", Description: "رجوع"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "كشف الإجابة"},
		{Key: "C/X", Description: "تقييم"},
		{Key: "Esc", Description: "رجوع"},
	}
}

func (s *TicTacToeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "space", " ":
		s.engine.Round.Reveal()
	case "c":
		s.engine.Round.MarkCorrect()
	case "x":
		s.engine.Round.MarkWrong()
	case "r":
		s.engine.Reset()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			s.engine.PlaceMove(int(key[0] - '1'))
		}
	}
	return s, nil
}

func (s *TicTacToeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderQuestion(s.engine.Round))

	if s.engine.Winner() != game.MarkNone {
		sections = append(sections, winStyle.Render(fmt.Sprintf("فاز فريق %s", s.engine.Winner())))
	} else if s.engine.Round.MoveEnabled() {
		sections = append(sections, turnStyle.Render(fmt.Sprintf("دور فريق %s، اختر خانة", s.engine.Current())))
	} else if hint := judgeHint(s.engine.Round); hint != "" {
		sections = append(sections, hint)
	}

	sections = append(sections, s.renderBoard())

	content := strings.Join(sections, "\n\n")
	return components.GameFrame(content, width, height)
}

func (s *TicTacToeScreen) renderBoard() string {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(5).
		Align(lipgloss.Center)

	xStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	oStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var rows []string
	for row := 0; row < 3; row++ {
		var cells []string
		for col := 0; col < 3; col++ {
			i := row*3 + col
			var body string
			switch s.engine.Cell(i) {
			case game.MarkX:
				body = xStyle.Render("X")
			case game.MarkO:
				body = oStyle.Render("O")
			default:
				body = dimStyle.Render(fmt.Sprintf("%d", i+1))
			}
			cells = append(cells, cell.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
