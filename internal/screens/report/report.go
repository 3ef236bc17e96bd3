package report

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/report"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/share"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/layout"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/theme"
)

// shareBaseURL is the address share links point at.
const shareBaseURL = "https://alessa.app/"

// ReportScreen shows the printable report or the flashcard sheet for one
// strategy.
type ReportScreen struct {
	details  lesson.Details
	strategy lesson.Strategy
	view     string

	status    string
	shareLink string
	scroll    int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates the report screen. view selects the initial presentation,
// share.ViewReport or share.ViewCards.
func New(details lesson.Details, strategy lesson.Strategy, view string) *ReportScreen {
	if view != share.ViewCards {
		view = share.ViewReport
	}
	return &ReportScreen{details: details, strategy: strategy, view: view}
}

func (r *ReportScreen) Init() tea.Cmd {
	return nil
}

func (r *ReportScreen) Title() string {
	if r.view == share.ViewCards {
		return "بطاقات الأسئلة"
	}
	return "التقرير"
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "F", Description: "تبديل البطاقات/التقرير"},
		{Key: "S", Description: "حفظ كملف"},
		{Key: "L", Description: "رابط المشاركة"},
		{Key: "↑↓", Description: "تمرير"},
		{Key: "Esc", Description: "رجوع"},
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "f":
		if r.view == share.ViewCards {
			r.view = share.ViewReport
		} else {
			r.view = share.ViewCards
		}
		r.scroll = 0
		r.status = ""
	case "s":
		r.status = r.export()
	case "l":
		if r.shareLink != "" {
			r.shareLink = ""
			break
		}
		payload := share.NewPayload(r.details, r.strategy, r.view)
		link, err := share.LessonURL(shareBaseURL, payload)
		if err != nil {
			r.status = "تعذر إنشاء الرابط: " + err.Error()
			break
		}
		r.shareLink = link
	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		r.scroll++
	}

	return r, nil
}

// export writes the current view as plain text next to the binary and
// returns the status line to show.
func (r *ReportScreen) export() string {
	var content, name string
	if r.view == share.ViewCards {
		content = report.ExportFlashcardsText(r.strategy)
		name = "flashcards"
	} else {
		content = report.ExportText(r.details, r.strategy)
		name = "report"
	}

	path := fmt.Sprintf("alessa-%s.txt", name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "تعذر الحفظ: " + err.Error()
	}
	return "تم الحفظ في " + path
}

func (r *ReportScreen) View(width, height int) string {
	var body string
	if r.view == share.ViewCards {
		body = report.Flashcards(r.strategy, width-8)
	} else {
		body = report.Render(r.details, r.strategy, width-8)
	}

	// Scroll by dropping leading lines; lipgloss clips the rest.
	lines := strings.Split(body, "\n")
	if r.scroll >= len(lines) {
		r.scroll = len(lines) - 1
	}
	body = strings.Join(lines[r.scroll:], "\n")

	var extra string
	if r.shareLink != "" {
		extra += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("رابط المشاركة:") +
			"\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.shareLink)
	}
	if r.status != "" {
		extra += "\n" + lipgloss.NewStyle().Foreground(theme.Success).Render(r.status)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(body + extra)
}
