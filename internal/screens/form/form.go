package form

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/boaziz1447-maker/omar-alessa/internal/lesson"
	"github.com/boaziz1447-maker/omar-alessa/internal/llm"
	"github.com/boaziz1447-maker/omar-alessa/internal/router"
	"github.com/boaziz1447-maker/omar-alessa/internal/screen"
	"github.com/boaziz1447-maker/omar-alessa/internal/screens/strategies"
	"github.com/boaziz1447-maker/omar-alessa/internal/store"
	"github.com/boaziz1447-maker/omar-alessa/internal/strategen"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/components"
	"github.com/boaziz1447-maker/omar-alessa/internal/ui/layout"
)

// Field order in the lesson form.
const (
	fieldTeacher = iota
	fieldSchool
	fieldRegion
	fieldPrincipal
	fieldSubject
	fieldGrade
	fieldTitle
	fieldContent
	fieldCount
	fieldFile
	fieldTotal
)

var fieldLabels = [fieldTotal]string{
	"اسم المعلم",
	"المدرسة",
	"الإدارة التعليمية",
	"قائد المدرسة",
	"المادة",
	"الصف",
	"عنوان الدرس",
	"محتوى الدرس",
	"عدد الأسئلة",
	"ملف الدرس (صورة أو PDF، اختياري)",
}

// FormScreen collects the lesson details and launches generation.
type FormScreen struct {
	generator *strategen.Service
	profiles  store.ProfileRepo

	inputs [fieldTotal]components.TextInput
	focus  int

	generating   bool
	spinFrame    int
	status       string
	errMsg       string
	extractedVia string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// New creates the lesson form, prefilled from the stored profile.
func New(generator *strategen.Service, profiles store.ProfileRepo) *FormScreen {
	f := &FormScreen{
		generator: generator,
		profiles:  profiles,
	}

	defaults := lesson.DefaultDetails()

	f.inputs[fieldTeacher] = components.NewTextInput("اسم المعلم", false, 60)
	f.inputs[fieldSchool] = components.NewTextInput("اسم المدرسة", false, 60)
	f.inputs[fieldRegion] = components.NewTextInput(defaults.Region, false, 60)
	f.inputs[fieldPrincipal] = components.NewTextInput("قائد المدرسة", false, 60)
	f.inputs[fieldSubject] = components.NewTextInput("رياضيات، علوم...", false, 60)
	f.inputs[fieldGrade] = components.NewTextInput("الصف", false, 60)
	f.inputs[fieldTitle] = components.NewTextInput("عنوان الدرس", false, 80)
	f.inputs[fieldContent] = components.NewTextInput("الصق محتوى الدرس هنا", false, 0)
	f.inputs[fieldCount] = components.NewTextInput("10", true, 2)
	f.inputs[fieldFile] = components.NewTextInput("/path/to/lesson.png", false, 0)

	f.inputs[fieldRegion].Model.SetValue(defaults.Region)

	if profiles != nil {
		if p, err := profiles.Load(context.Background()); err == nil {
			f.inputs[fieldTeacher].Model.SetValue(p.TeacherName)
			f.inputs[fieldSchool].Model.SetValue(p.School)
			if p.Region != "" {
				f.inputs[fieldRegion].Model.SetValue(p.Region)
			}
			f.inputs[fieldPrincipal].Model.SetValue(p.Principal)
			f.inputs[fieldSubject].Model.SetValue(p.Subject)
			f.inputs[fieldGrade].Model.SetValue(p.Grade)
		}
	}

	f.setFocus(0)
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.inputs[f.focus].Init()
}

func (f *FormScreen) Title() string {
	return "تحضير درس"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	if f.generating {
		return []layout.KeyHint{{Key: "...", Description: "جارٍ التوليد"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "تنقل"},
		{Key: "Ctrl+G", Description: "توليد الاستراتيجيات"},
		{Key: "Ctrl+B", Description: "بنك الأسئلة"},
		{Key: "Ctrl+O", Description: "استخراج نص الملف"},
		{Key: "Esc", Description: "رجوع"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case strategiesReadyMsg:
		f.generating = false
		f.status = ""
		if msg.Err != nil {
			f.errMsg = errorMessage(msg.Err)
			return f, nil
		}
		return f, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: strategies.New(msg.Details, msg.Strategies),
			}
		}

	case ocrDoneMsg:
		f.generating = false
		f.status = ""
		if msg.Err != nil {
			f.errMsg = errorMessage(msg.Err)
			return f, nil
		}
		existing := f.inputs[fieldContent].Value()
		if existing != "" {
			existing += "\n"
		}
		f.inputs[fieldContent].Model.SetValue(existing + msg.Text)
		f.extractedVia = "تم استخراج النص من الملف"
		return f, nil

	case spinnerTickMsg:
		if !f.generating {
			return f, nil
		}
		f.spinFrame = (f.spinFrame + 1) % len(spinFrames)
		return f, f.spinnerTick()

	case tea.KeyMsg:
		if f.generating {
			return f, nil
		}
		f.errMsg = ""

		switch msg.String() {
		case "up", "shift+tab":
			return f, f.moveFocus(-1)
		case "down", "tab":
			return f, f.moveFocus(1)
		case "enter":
			if f.focus == fieldTotal-1 {
				return f.startStrategies()
			}
			return f, f.moveFocus(1)
		case "ctrl+g":
			return f.startStrategies()
		case "ctrl+b":
			return f.startQuestionBank()
		case "ctrl+o":
			return f.startOCR()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *FormScreen) setFocus(i int) {
	f.inputs[f.focus].Model.Blur()
	f.focus = i
	f.inputs[f.focus].Model.Focus()
}

func (f *FormScreen) moveFocus(delta int) tea.Cmd {
	next := f.focus + delta
	if next < 0 {
		next = 0
	}
	if next >= fieldTotal {
		next = fieldTotal - 1
	}
	f.setFocus(next)
	return nil
}

// details assembles the lesson metadata from the form fields.
func (f *FormScreen) details() lesson.Details {
	return lesson.Details{
		TeacherName:   strings.TrimSpace(f.inputs[fieldTeacher].Value()),
		SchoolName:    strings.TrimSpace(f.inputs[fieldSchool].Value()),
		Region:        strings.TrimSpace(f.inputs[fieldRegion].Value()),
		PrincipalName: strings.TrimSpace(f.inputs[fieldPrincipal].Value()),
		Subject:       strings.TrimSpace(f.inputs[fieldSubject].Value()),
		GradeLevel:    strings.TrimSpace(f.inputs[fieldGrade].Value()),
		LessonTitle:   strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Content:       strings.TrimSpace(f.inputs[fieldContent].Value()),
		Date:          lesson.FreshDate(),
	}
}

func (f *FormScreen) generateInput(d lesson.Details) strategen.Input {
	in := strategen.Input{
		Content: d.Content,
		Grade:   d.GradeLevel,
		Subject: d.Subject,
	}
	if n, err := f.inputs[fieldCount].NumericValue(); err == nil {
		in.QuestionsCount = n
	}
	if file, err := f.loadFile(); err == nil && file != nil {
		in.File = file
	}
	return in
}

// loadFile reads the attached lesson page, when a path was given.
func (f *FormScreen) loadFile() (*llm.FilePart, error) {
	path := strings.TrimSpace(f.inputs[fieldFile].Value())
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &llm.FilePart{MIMEType: mimeForPath(path), Data: data}, nil
}

func mimeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func (f *FormScreen) startStrategies() (screen.Screen, tea.Cmd) {
	d := f.details()
	if d.Content == "" && strings.TrimSpace(f.inputs[fieldFile].Value()) == "" {
		f.errMsg = "أدخل محتوى الدرس أو أرفق ملفاً أولاً"
		return f, nil
	}

	f.generating = true
	f.status = "جارٍ توليد الاستراتيجيات..."
	f.saveProfile(d)

	in := f.generateInput(d)
	gen := func() tea.Msg {
		strategies, err := f.generator.GenerateStrategies(context.Background(), in)
		return strategiesReadyMsg{Details: d, Strategies: strategies, Err: err}
	}
	return f, tea.Batch(gen, f.spinnerTick())
}

func (f *FormScreen) startQuestionBank() (screen.Screen, tea.Cmd) {
	d := f.details()
	if d.Content == "" && strings.TrimSpace(f.inputs[fieldFile].Value()) == "" {
		f.errMsg = "أدخل محتوى الدرس أو أرفق ملفاً أولاً"
		return f, nil
	}

	f.generating = true
	f.status = "جارٍ توليد بنك الأسئلة..."
	f.saveProfile(d)

	in := f.generateInput(d)
	gen := func() tea.Msg {
		strategies, err := f.generator.GenerateQuestionBank(context.Background(), in)
		return strategiesReadyMsg{Details: d, Strategies: strategies, Err: err}
	}
	return f, tea.Batch(gen, f.spinnerTick())
}

func (f *FormScreen) startOCR() (screen.Screen, tea.Cmd) {
	file, err := f.loadFile()
	if err != nil {
		f.errMsg = "تعذر قراءة الملف: " + err.Error()
		return f, nil
	}
	if file == nil {
		f.errMsg = "أدخل مسار الملف أولاً"
		return f, nil
	}

	f.generating = true
	f.status = "جارٍ استخراج النص..."

	ocr := func() tea.Msg {
		text, err := f.generator.ExtractText(context.Background(), *file)
		return ocrDoneMsg{Text: text, Err: err}
	}
	return f, tea.Batch(ocr, f.spinnerTick())
}

// saveProfile persists the reusable lesson metadata for the next run.
func (f *FormScreen) saveProfile(d lesson.Details) {
	if f.profiles == nil {
		return
	}
	_ = f.profiles.Save(context.Background(), store.Profile{
		TeacherName: d.TeacherName,
		School:      d.SchoolName,
		Region:      d.Region,
		Subject:     d.Subject,
		Grade:       d.GradeLevel,
		Principal:   d.PrincipalName,
	})
}

func (f *FormScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
