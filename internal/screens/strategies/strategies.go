package strategies

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/router"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	gamescreen "github.com/boaziz1447-maker/omar-alessa/internal/screens/game"
	reportscreen "github.com/boaziz1447-maker/omar-alessa/internal/screens/report"
	"github.com/boaziz1447-maker/omar-alessa/internal/share"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/layout"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// kindLabels name each mini-game in the list.
var kindLabels = map[lesson.GameKind]string{
	lesson.KindTicTacToe:   "لعبة إكس أو",
	lesson.KindConnectFour: "لعبة بالأربعة تربح",
	lesson.KindMemory:      "تحدي الذاكرة",
	lesson.KindBalloon:     "لعبة البالون",
}

// StrategiesScreen lists the generated strategies for one lesson.
type StrategiesScreen struct {
	details    lesson.Details
	strategies []lesson.Strategy
	selected   int
}

var _ screen.Screen = (*StrategiesScreen)(nil)
var _ screen.KeyHintProvider = (*StrategiesScreen)(nil)

// New creates the strategy list screen.
func New(details lesson.Details, list []lesson.Strategy) *StrategiesScreen {
	return &StrategiesScreen{details: details, strategies: list}
}

func (s *StrategiesScreen) Init() tea.Cmd {
	return nil
}

func (s *StrategiesScreen) Title() string {
	return "الاستراتيجيات"
}

func (s *StrategiesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "تنقل"},
		{Key: "Enter", Description: "التقرير"},
	}
	if s.current().Kind != lesson.KindNone {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "العب"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "رجوع"})
	return hints
}

func (s *StrategiesScreen) current() lesson.Strategy {
	if len(s.strategies) == 0 {
		return lesson.Strategy{}
	}
	return s.strategies[s.selected]
}

func (s *StrategiesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.strategies) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.strategies)-1 {
			s.selected++
		}
	case "enter":
		strat := s.current()
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: reportscreen.New(s.details, strat, share.ViewReport),
			}
		}
	case "g":
		strat := s.current()
		if strat.Kind == lesson.KindNone {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: gamescreen.New(strat),
			}
		}
	}

	return s, nil
}

func (s *StrategiesScreen) View(width, height int) string {
	if len(s.strategies) == 0 {
		return theme.Hint.Width(width).Render("\n\n  لا توجد استراتيجيات")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("استراتيجيات الدرس: " + s.details.LessonTitle))
	b.WriteString("\n\n")

	for i, strat := range s.strategies {
		b.WriteString(s.renderItem(i, strat, cw))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderPreview(cw))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (s *StrategiesScreen) renderItem(i int, strat lesson.Strategy, cw int) string {
	line := strat.Name
	if label, ok := kindLabels[strat.Kind]; ok {
		line += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ◆ " + label)
	}
	line += lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  (%d أسئلة)", len(strat.Questions)))

	if i == s.selected {
		return theme.Selected.Render("  ▸ ") + theme.Selected.Render(strat.Name) +
			strings.TrimPrefix(line, strat.Name)
	}
	return "    " + line
}

// renderPreview shows the selected strategy's main idea under the list.
func (s *StrategiesScreen) renderPreview(cw int) string {
	strat := s.current()
	if strat.MainIdea == "" {
		return ""
	}
	return components.GameCard(theme.Body.Render(strat.MainIdea), cw)
}
