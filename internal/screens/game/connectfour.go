package game

import (
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

// discNames label the two competing teams.
var discNames = map[game.Disc]string{
	game.DiscRed:    "الفريق الأحمر",
	game.DiscYellow: "الفريق الأصفر",
}

// ConnectFourScreen drives the four-in-a-row engine.
type ConnectFourScreen struct {
	name   string
	engine *game.ConnectFour
}

var _ screen.Screen = (*ConnectFourScreen)(nil)
var _ screen.KeyHintProvider = (*ConnectFourScreen)(nil)

func newConnectFour(strat lesson.Strategy) *ConnectFourScreen {
	return &ConnectFourScreen{
		name:   strat.Name,
		engine: game.NewConnectFour(strat.Questions),
	}
}

func (s *ConnectFourScreen) Init() tea.Cmd { return nil }

func (s *ConnectFourScreen) Title() string { return s.name }

func (s *ConnectFourScreen) KeyHints() []layout.KeyHint {
	if s.engine.Winner() != game.DiscNone {
		return []layout.KeyHint{
			{Key: "R", Description: "لعبة جديدة"},
			{Key: "Esc", Description: "رجوع"},
		}
	}
	if s.engine.Round.MoveEnabled() {
		return []layout.KeyHint{
			{Key: "1-7", Description: "أسقط القرص"},
			{Key: "Esc", Description: "رجوع"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "كشف الإجابة"},
		{Key: "C/X", Description: "تقييم"},
		{Key: "Esc", Description: "رجوع"},
	}
}

func (s *ConnectFourScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		if len(key) == 1 && key[0] >= '1' && key[0] <= '7' {
			s.engine.DropDisc(int(key[0] - '1'))
		}
	}
	return s, nil
}

func (s *ConnectFourScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderQuestion(s.engine.Round))

	if winner := s.engine.Winner(); winner != game.DiscNone {
		sections = append(sections, winStyle.Render("فاز "+discNames[winner]))
	} else if s.engine.Round.MoveEnabled() {
		sections = append(sections, turnStyle.Render("دور "+discNames[s.engine.Current()]+"، اختر عموداً"))
	} else if hint := judgeHint(s.engine.Round); hint != "" {
		sections = append(sections, hint)
	}

	sections = append(sections, s.renderGrid())

	content := strings.Join(sections, "\n\n")
	return components.GameFrame(content, width, height)
}

func (s *ConnectFourScreen) renderGrid() string {
	redStyle := lipgloss.NewStyle().Foreground(theme.Error)
	yellowStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	grid := s.engine.Grid()
	var b strings.Builder

	b.WriteString(dimStyle.Render(" 1  2  3  4  5  6  7"))
	b.WriteString("\n")
	for row := 0; row < game.C4Rows; row++ {
		for col := 0; col < game.C4Cols; col++ {
			switch grid[row][col] {
			case game.DiscRed:
				b.WriteString(redStyle.Render(" ● "))
			case game.DiscYellow:
				b.WriteString(yellowStyle.Render(" ● "))
			default:
				b.WriteString(dimStyle.Render(" · "))
			}
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}
