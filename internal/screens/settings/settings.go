package settings

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/settings"
	"github.com/boaziz1447-maker/omar-alessa/internal/share"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/layout"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// configBaseURL is the address config share links point at.
const configBaseURL = "https://alessa.app/"

// Field order in the settings panel.
const (
	fieldAPIKey = iota
	fieldCustomLogo
	fieldMoeLogo
	fieldRabbitLogo
	fieldTotal
)

var fieldLabels = [fieldTotal]string{
	"مفتاح API",
	"شعار المنصة",
	"شعار وزارة التعليم",
	"شعار الأرنب (تحدي الذاكرة)",
}

// SettingsScreen edits the platform settings behind the admin PIN.
type SettingsScreen struct {
	service *settings.Service

	unlocked bool
	pinInput components.TextInput

	inputs [fieldTotal]components.TextInput
	focus  int

	status     string
	errMsg     string
	configLink string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen, starting at the PIN gate.
func New(service *settings.Service) *SettingsScreen {
	s := &SettingsScreen{service: service}
	s.pinInput = components.NewTextInput("****", true, 4)
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return s.pinInput.Init()
}

func (s *SettingsScreen) Title() string {
	return "الإعدادات"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if !s.unlocked {
		return []layout.KeyHint{
			{Key: "Enter", Description: "تأكيد الرقم السري"},
			{Key: "Esc", Description: "رجوع"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "تنقل"},
		{Key: "Ctrl+S", Description: "حفظ"},
		{Key: "L", Description: "رابط الإعدادات"},
		{Key: "Esc", Description: "رجوع"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.unlocked {
		return s.updatePIN(msg)
	}
	return s.updateFields(msg)
}

func (s *SettingsScreen) updatePIN(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if !s.service.VerifyPIN(s.pinInput.Value()) {
			s.errMsg = "رقم سري غير صحيح"
			s.pinInput.Model.SetValue("")
			return s, nil
		}
		s.errMsg = ""
		s.unlock()
		return s, s.inputs[s.focus].Init()
	}

	var cmd tea.Cmd
	s.pinInput, cmd = s.pinInput.Update(msg)
	return s, cmd
}

// unlock loads the current settings into the edit fields.
func (s *SettingsScreen) unlock() {
	s.unlocked = true

	s.inputs[fieldAPIKey] = components.NewTextInput("sk-...", false, 0)
	s.inputs[fieldCustomLogo] = components.NewTextInput(settings.DefaultCustomLogo, false, 0)
	s.inputs[fieldMoeLogo] = components.NewTextInput(settings.DefaultMoeLogo, false, 0)
	s.inputs[fieldRabbitLogo] = components.NewTextInput(settings.DefaultRabbitLogo, false, 0)

	current, err := s.service.Load(context.Background())
	if err != nil {
		s.errMsg = "تعذر تحميل الإعدادات: " + err.Error()
		return
	}
	s.inputs[fieldAPIKey].Model.SetValue(current.APIKey)
	s.inputs[fieldCustomLogo].Model.SetValue(current.CustomLogo)
	s.inputs[fieldMoeLogo].Model.SetValue(current.MoeLogo)
	s.inputs[fieldRabbitLogo].Model.SetValue(current.RabbitLogo)

	s.inputs[s.focus].Model.Focus()
}

func (s *SettingsScreen) updateFields(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "shift+tab":
			s.moveFocus(-1)
			return s, nil
		case "down", "tab", "enter":
			s.moveFocus(1)
			return s, nil
		case "ctrl+s":
			s.save()
			return s, nil
		case "l":
			// Only intercept when the field is empty so URLs stay typable.
			if s.inputs[s.focus].Value() == "" {
				s.toggleConfigLink()
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *SettingsScreen) moveFocus(delta int) {
	next := s.focus + delta
	if next < 0 || next >= fieldTotal {
		return
	}
	s.inputs[s.focus].Model.Blur()
	s.focus = next
	s.inputs[s.focus].Model.Focus()
}

func (s *SettingsScreen) save() {
	p := settings.Partial{
		APIKey:     settings.String(strings.TrimSpace(s.inputs[fieldAPIKey].Value())),
		CustomLogo: settings.String(strings.TrimSpace(s.inputs[fieldCustomLogo].Value())),
		MoeLogo:    settings.String(strings.TrimSpace(s.inputs[fieldMoeLogo].Value())),
		RabbitLogo: settings.String(strings.TrimSpace(s.inputs[fieldRabbitLogo].Value())),
	}

	if _, err := s.service.Save(context.Background(), p); err != nil {
		s.errMsg = "تعذر الحفظ: " + err.Error()
		return
	}
	s.errMsg = ""
	s.status = "تم حفظ الإعدادات"
}

// toggleConfigLink builds a shareable link carrying the current
// non-default settings.
func (s *SettingsScreen) toggleConfigLink() {
	if s.configLink != "" {
		s.configLink = ""
		return
	}

	cfg := share.NewConfig(
		strings.TrimSpace(s.inputs[fieldCustomLogo].Value()),
		strings.TrimSpace(s.inputs[fieldMoeLogo].Value()),
		strings.TrimSpace(s.inputs[fieldRabbitLogo].Value()),
		strings.TrimSpace(s.inputs[fieldAPIKey].Value()),
	)
	link, err := share.ConfigURL(configBaseURL, cfg)
	if err != nil {
		s.errMsg = "تعذر إنشاء الرابط: " + err.Error()
		return
	}
	s.configLink = link
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("إعدادات المنصة"))
	b.WriteString("\n\n")

	if !s.unlocked {
		b.WriteString("  " + theme.Body.Render("أدخل الرقم السري للمتابعة"))
		b.WriteString("\n\n  ")
		b.WriteString(s.pinInput.View())
	} else {
		for i := 0; i < fieldTotal; i++ {
			label := fieldLabels[i]
			if i == s.focus {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + label))
			}
			b.WriteString("\n  ")
			b.WriteString(s.inputs[i].View())
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+s.errMsg))
	}
	if s.status != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+s.status))
	}
	if s.configLink != "" {
		b.WriteString("\n\n  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("رابط الإعدادات:"))
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.configLink))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}
