package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(theme.TextDim)

	labelFocused = lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(theme.Accent)

	errStyle = lipgloss.NewStyle().
			Foreground(theme.Error)

	okStyle = lipgloss.NewStyle().
			Foreground(theme.Success)
)

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("تحضير درس جديد"))
	b.WriteString("\n\n")

	for i := 0; i < fieldTotal; i++ {
		label := fieldLabels[i]
		if i == f.focus {
			b.WriteString(labelFocused.Render("▸ " + label))
		} else {
			b.WriteString(labelStyle.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	submit := components.NewButton("توليد الاستراتيجيات (Ctrl+G)", f.focus == fieldTotal-1 && !f.generating, nil)
	b.WriteString(submit.View())
	b.WriteString("\n")

	if f.generating {
		b.WriteString("\n  ")
		b.WriteString(statusStyle.Render(spinFrames[f.spinFrame] + " " + f.status))
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n  ")
		b.WriteString(errStyle.Render("✗ " + f.errMsg))
		b.WriteString("\n")
	}
	if f.extractedVia != "" && !f.generating {
		b.WriteString("\n  ")
		b.WriteString(okStyle.Render("✓ " + f.extractedVia))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}
