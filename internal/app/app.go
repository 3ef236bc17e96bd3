package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/router"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/screens/home"
	reportscreen "github.com/boaziz1447-maker/omar-alessa/internal/screens/report"
	"github.com/boaziz1447-maker/omar-alessa/internal/settings"
	"github.com/boaziz1447-maker/omar-alessa/internal/share"
	"github.com/boaziz1447-maker/omar-alessa/internal/store"
	"github.com/boaziz1447-maker/omar-alessa/internal/strategen"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/layout"
)

// Options carries the dependencies the TUI runs on. Generator is nil
// when no LLM provider is configured; AI screens degrade to a notice.
type Options struct {
	Settings  *settings.Service
	Profiles  store.ProfileRepo
	Generator *strategen.Service

	// ShareLink is an optional pasted app link. It is applied exactly
	// once at startup: a lesson payload opens directly on the shared
	// strategy, a config payload is written to the settings store.
	ShareLink string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the home screen, opening the
// shared lesson on top when the link carried one.
func newAppModel(opts Options) AppModel {
	r := router.New(home.New(opts.Generator, opts.Settings, opts.Profiles))

	if opts.ShareLink != "" {
		if d, s, view, ok := applyShareLink(opts); ok {
			r.Push(reportscreen.New(d, s, view))
		}
	}

	return AppModel{router: r}
}

// applyShareLink decodes the pasted link. Decode failures are logged to
// stderr and otherwise ignored; the app starts normally.
func applyShareLink(opts Options) (lesson.Details, lesson.Strategy, string, bool) {
	shareTok, configTok := share.ParseURL(opts.ShareLink)

	if configTok != "" {
		cfg, err := share.DecodeConfig(configTok)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ignoring config link:", err)
		} else if opts.Settings != nil {
			if _, err := opts.Settings.Save(context.Background(), configPartial(cfg)); err != nil {
				fmt.Fprintln(os.Stderr, "applying config link:", err)
			}
		}
	}

	if shareTok == "" {
		return lesson.Details{}, lesson.Strategy{}, "", false
	}
	payload, err := share.Decode(shareTok)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ignoring share link:", err)
		return lesson.Details{}, lesson.Strategy{}, "", false
	}
	d, s, view := payload.Apply(lesson.DefaultDetails())
	return d, s, view, true
}

// configPartial maps the decoded config payload onto a settings update,
// touching only the fields the link carried.
func configPartial(cfg share.Config) settings.Partial {
	var p settings.Partial
	if key := cfg.APIKey(); key != "" {
		p.APIKey = settings.String(key)
	}
	if cfg.CustomLogo != "" {
		p.CustomLogo = settings.String(cfg.CustomLogo)
	}
	if cfg.MoeLogo != "" {
		p.MoeLogo = settings.String(cfg.MoeLogo)
	}
	if cfg.RabbitLogo != "" {
		p.RabbitLogo = settings.String(cfg.RabbitLogo)
	}
	return p
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", "", m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "رجوع"},
				{Key: "Ctrl+C", Description: "خروج"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "تنقل"},
				{Key: "Enter", Description: "اختيار"},
				{Key: "Ctrl+C", Description: "خروج"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
