package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// TwoChoice is a side-by-side two-option selector. The balloon game
// uses it to offer the correct answer and the distractor.
type TwoChoice struct {
	Question  string
	Options   [2]string
	Selected  int
	Submitted bool
	Chosen    int
}

// NewTwoChoice creates a selector over exactly two options.
func NewTwoChoice(question string, left, right string) TwoChoice {
	return TwoChoice{
		Question: question,
		Options:  [2]string{left, right},
		Chosen:   -1,
	}
}

// Update handles keyboard navigation and selection.
func (t TwoChoice) Update(msg tea.Msg) (TwoChoice, tea.Cmd) {
	if t.Submitted {
		return t, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		t.Selected = 0
	case "right", "l", "down", "j":
		t.Selected = 1
	case "tab":
		t.Selected = 1 - t.Selected
	case "enter":
		t.Submitted = true
		t.Chosen = t.Selected
	}

	return t, nil
}

// View renders the question with both options side by side.
func (t TwoChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(t.Question) + "\n\n"

	boxes := make([]string, 0, 2)
	for i, opt := range t.Options {
		style := theme.ButtonInactive
		if !t.Submitted && i == t.Selected {
			style = theme.ButtonActive
		}
		if t.Submitted && i == t.Chosen {
			style = theme.ButtonActive
		}
		boxes = append(boxes, style.Render(opt))
	}

	return s + lipgloss.JoinHorizontal(lipgloss.Top, boxes[0], "   ", boxes[1])
}

// Reset clears the selection for the next question.
func (t *TwoChoice) Reset(question, left, right string) {
	t.Question = question
	t.Options = [2]string{left, right}
	t.Selected = 0
	t.Submitted = false
	t.Chosen = -1
}
