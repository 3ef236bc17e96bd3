package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/store"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// Block-letter title shown in full mode.
const homeTitleFull = `  █████╗ ██╗     ███████╗███████╗███████╗ █████╗
 ██╔══██╗██║     ██╔════╝██╔════╝██╔════╝██╔══██╗
 ███████║██║     █████╗  ███████╗███████╗███████║
 ██╔══██║██║     ██╔══╝  ╚════██║╚════██║██╔══██║
 ██║  ██║███████╗███████╗███████║███████║██║  ██║
 ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝`

const homeTitleCompact = "A · L · E · S · S · A"

const homeTagline = "منصة استراتيجيات التعلم النشط"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := homeTitleFull
	if compact {
		title = homeTitleCompact
	}

	block := style.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(homeTagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderProfileBar shows the last-used teacher and school, restored from
// the store, in a bordered box matching content width.
func renderProfileBar(p store.Profile, cw int) string {
	nameStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	switch {
	case p.TeacherName != "" && p.School != "":
		line = nameStyle.Render(p.TeacherName) + dimStyle.Render("  ·  ") + nameStyle.Render(p.School)
	case p.TeacherName != "":
		line = nameStyle.Render(p.TeacherName)
	default:
		line = dimStyle.Render("لم يُحفظ ملف معلم بعد")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderAIBanner warns when no LLM API key is configured.
func renderAIBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ لم يتم ضبط مفتاح API، توليد الاستراتيجيات معطل")
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	const buttonWidth = 24

	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ChoiceButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines for very
// small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
