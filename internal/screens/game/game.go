// Package game holds the TUI screens that drive the four mini-game
// engines. Each screen owns its engine and translates key presses into
// engine calls; all rules live in the engines themselves.
package game

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/game"
	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/screens/notice"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// New builds the screen for the strategy's game kind.
func New(strat lesson.Strategy) screen.Screen {
	switch strat.Kind {
	case lesson.KindTicTacToe:
		return newTicTacToe(strat)
	case lesson.KindConnectFour:
		return newConnectFour(strat)
	case lesson.KindMemory:
		return newMemory(strat)
	case lesson.KindBalloon:
		return newBalloon(strat)
	default:
		return notice.New(strat.Name, "هذه الاستراتيجية ليست لعبة تفاعلية.\nاستخدم التقرير أو بطاقات الأسئلة.")
	}
}

var (
	questionStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true)

	turnStyle = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(theme.TextDim)

	winStyle = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 2)
)

// renderQuestion renders the shared question panel: position, text and
// the answer once revealed.
func renderQuestion(r *game.Round) string {
	q, ok := r.Current()
	if !ok {
		return dimStyle.Render("لا توجد أسئلة")
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("سؤال %d من %d", r.Index()+1, r.Count()),
		float64(r.Index())/float64(r.Count()),
		false, 32)

	s := bar.View() + "\n"
	s += questionStyle.Render(q.Question) + "\n"

	if r.Revealed() {
		s += answerStyle.Render("الإجابة: " + q.Answer)
	} else {
		s += dimStyle.Render("اضغط مسافة لكشف الإجابة")
	}
	return s
}

// judgeHint is the common prompt while the teacher scores an answer.
func judgeHint(r *game.Round) string {
	if !r.Revealed() {
		return ""
	}
	return dimStyle.Render("C إجابة صحيحة · X إجابة خاطئة")
}
