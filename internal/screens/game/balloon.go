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

// BalloonScreen drives the balloon-toss engine. The roster is typed in
// during setup; afterwards each round walks ready → choose → catch.
type BalloonScreen struct {
	name   string
	engine *game.Balloon

	nameInput components.TextInput
	chooser   components.TwoChoice
	flash     string
}

var _ screen.Screen = (*BalloonScreen)(nil)
var _ screen.KeyHintProvider = (*BalloonScreen)(nil)

func newBalloon(strat lesson.Strategy) *BalloonScreen {
	return &BalloonScreen{
		name:      strat.Name,
		engine:    game.NewBalloon(strat.Questions),
		nameInput: components.NewTextInput("اسم اللاعب", false, 40),
		chooser:   components.NewTwoChoice("", "", ""),
	}
}

func (s *BalloonScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *BalloonScreen) Title() string { return s.name }

func (s *BalloonScreen) KeyHints() []layout.KeyHint {
	switch s.engine.Phase() {
	case game.BalloonSetup:
		return []layout.KeyHint{
			{Key: "Enter", Description: "إضافة لاعب"},
			{Key: "Enter فارغ", Description: "ابدأ"},
			{Key: "Ctrl+D", Description: "حذف آخر لاعب"},
			{Key: "Esc", Description: "رجوع"},
		}
	case game.BalloonReady:
		return []layout.KeyHint{
			{Key: "Space", Description: "ارمِ البالون واكشف الخيارات"},
			{Key: "Esc", Description: "رجوع"},
		}
	case game.BalloonQuestion:
		return []layout.KeyHint{
			{Key: "←→", Description: "اختر"},
			{Key: "Enter", Description: "تأكيد"},
			{Key: "Esc", Description: "رجوع"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Y", Description: "أمسك البالون"},
			{Key: "N", Description: "سقط البالون"},
			{Key: "Esc", Description: "رجوع"},
		}
	}
}

func (s *BalloonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.engine.Phase() {
	case game.BalloonSetup:
		return s.updateSetup(msg)
	case game.BalloonReady:
		return s.updateReady(msg)
	case game.BalloonQuestion:
		return s.updateQuestion(msg)
	case game.BalloonCheckCatch:
		return s.updateCatch(msg)
	}
	return s, nil
}

func (s *BalloonScreen) updateSetup(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(s.nameInput.Value())
			if name == "" {
				if err := s.engine.Start(); err != nil {
					s.flash = "أضف لاعباً واحداً على الأقل"
				} else {
					s.flash = ""
				}
				return s, nil
			}
			if err := s.engine.AddPlayer(name); err != nil {
				s.flash = fmt.Sprintf("تعذرت الإضافة (الحد %d لاعبين)", game.BalloonMaxPlayers)
			} else {
				s.flash = ""
				s.nameInput.Model.SetValue("")
			}
			return s, nil

		case "ctrl+d":
			players := s.engine.Players()
			if len(players) > 0 {
				s.engine.RemovePlayer(players[len(players)-1].ID)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.nameInput, cmd = s.nameInput.Update(msg)
	return s, cmd
}

func (s *BalloonScreen) updateReady(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if key := kmsg.String(); key == "space" || key == " " {
		s.engine.RevealOptions()
		if q, ok := s.engine.Round.Current(); ok {
			opts := s.engine.Options()
			s.chooser.Reset(q.Question, opts[0].Text, opts[1].Text)
		}
		s.flash = ""
	}
	return s, nil
}

func (s *BalloonScreen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	player := s.engine.CurrentPlayer()

	var cmd tea.Cmd
	s.chooser, cmd = s.chooser.Update(msg)

	if s.chooser.Submitted {
		s.engine.Choose(s.chooser.Chosen)
		if !s.engine.LastCorrect() {
			s.flash = fmt.Sprintf("إجابة خاطئة يا %s، الدور التالي", player.Name)
		}
	}
	return s, cmd
}

func (s *BalloonScreen) updateCatch(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	player := s.engine.CurrentPlayer()

	switch kmsg.String() {
	case "y":
		s.engine.ReportCatch(true)
		s.flash = fmt.Sprintf("%s أمسك البالون! +%d نقطة", player.Name, game.BalloonCaughtPoints)
	case "n":
		s.engine.ReportCatch(false)
		s.flash = fmt.Sprintf("إجابة صحيحة يا %s! +%d نقطة", player.Name, game.BalloonMissedPoints)
	}
	return s, nil
}

func (s *BalloonScreen) View(width, height int) string {
	var sections []string

	switch s.engine.Phase() {
	case game.BalloonSetup:
		sections = append(sections,
			questionStyle.Render("لعبة البالون: سجل اللاعبين"),
			s.renderRoster(),
			s.nameInput.View())

	case game.BalloonReady:
		sections = append(sections, s.renderScores())
		sections = append(sections,
			turnStyle.Render("دور "+s.engine.CurrentPlayer().Name),
			dimStyle.Render("ارمِ البالون ثم اضغط مسافة لعرض الخيارين"))

	case game.BalloonQuestion:
		sections = append(sections, s.renderScores())
		sections = append(sections, turnStyle.Render("دور "+s.engine.CurrentPlayer().Name))
		sections = append(sections, s.chooser.View())

	case game.BalloonCheckCatch:
		sections = append(sections, s.renderScores())
		sections = append(sections,
			winStyle.Render("إجابة صحيحة!"),
			dimStyle.Render(fmt.Sprintf("هل أمسك %s البالون قبل أن يلمس الأرض؟", s.engine.CurrentPlayer().Name)))
	}

	if s.flash != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.flash))
	}

	content := strings.Join(sections, "\n\n")
	return components.GameFrame(content, width, height)
}

func (s *BalloonScreen) renderRoster() string {
	players := s.engine.Players()
	if len(players) == 0 {
		return dimStyle.Render("لا يوجد لاعبون بعد")
	}
	var lines []string
	for i, p := range players {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p.Name))
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

func (s *BalloonScreen) renderScores() string {
	var parts []string
	for i, p := range s.engine.Players() {
		style := theme.Body
		if i == s.engine.CurrentPlayerIndex() {
			style = turnStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s: %d", p.Name, p.Score)))
	}
	return strings.Join(parts, dimStyle.Render("  ·  "))
}
