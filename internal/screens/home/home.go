package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/router"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/screens/form"
	"github.com/boaziz1447-maker/omar-alessa/internal/screens/notice"
	settingsscreen "github.com/boaziz1447-maker/omar-alessa/internal/screens/settings"
	"github.com/boaziz1447-maker/omar-alessa/internal/settings"
	"github.com/boaziz1447-maker/omar-alessa/internal/store"
	"github.com/boaziz1447-maker/omar-alessa/internal/strategen"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	profile    store.Profile
	hasAI      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. generator is nil when no LLM provider is
// configured; the lesson form then opens as a notice instead.
func New(generator *strategen.Service, settingsService *settings.Service, profiles store.ProfileRepo) *HomeScreen {
	var profile store.Profile
	if profiles != nil {
		profile, _ = profiles.Load(context.Background())
	}

	menuLabels := []string{"تحضير درس جديد", "الإعدادات", "خروج"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if generator == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: notice.New(
						"تحضير درس",
						"ميزات الذكاء الاصطناعي غير متاحة.\n\nأضف مفتاح API من شاشة الإعدادات\nأو عبر متغير البيئة ALESSA_GEMINI_API_KEY.",
					)}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: form.New(generator, profiles)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settingsscreen.New(settingsService)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		profile:    profile,
		hasAI:      generator != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderProfileBar(h.profile, cw))

	if !h.hasAI {
		sections = append(sections, renderAIBanner(cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.GameFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "الرئيسية"
}
