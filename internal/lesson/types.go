package lesson

import "time"

// Details holds the lesson metadata captured by the form. All fields are
// free text; the report renderer prints them as-is.
type Details struct {
	TeacherName   string `json:"teacherName"`
	SchoolName    string `json:"schoolName"`
	Region        string `json:"region"`
	Subject       string `json:"subject"`
	LessonTitle   string `json:"lessonTitle"`
	GradeLevel    string `json:"gradeLevel"`
	Content       string `json:"content"`
	PrincipalName string `json:"principalName"`
	Date          string `json:"date"`
}

// DefaultDetails returns a fresh Details with today's date and the
// default education region.
func DefaultDetails() Details {
	return Details{
		Region: "الرياض",
		Date:   FreshDate(),
	}
}

// FreshDate formats today's date for the report header. A new date is
// assigned every time the form is loaded, even when the rest of the
// metadata is restored from the store.
func FreshDate() string {
	return time.Now().Format("2006/01/02")
}

// Question is a single quiz question extracted from the lesson content.
// WrongAnswer is the distractor used by the balloon game; it may be empty
// when the question was reconstructed from a share link.
type Question struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	WrongAnswer string `json:"wrongAnswer,omitempty"`
}

// Strategy is a generated active-learning plan for one lesson.
type Strategy struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	MainIdea            string     `json:"mainIdea"`
	Objectives          []string   `json:"objectives"`
	ImplementationSteps []string   `json:"implementationSteps"`
	Tools               []string   `json:"tools"`
	Questions           []Question `json:"questions"`
	TimeRequired        string     `json:"timeRequired,omitempty"`

	// Kind selects which mini-game (if any) this strategy drives.
	// Assigned once at creation time; see DetectGameKind.
	Kind GameKind `json:"kind"`
}

// SharedStrategyID is the sentinel id of strategies reconstructed from a
// share link.
const SharedStrategyID = "shared-1"

// SharedStrategy builds the minimal strategy a share payload can carry:
// a name and a question list, with no objectives, steps or tools.
func SharedStrategy(name string, questions []Question) Strategy {
	if name == "" {
		name = "بطاقات الأسئلة"
	}
	return Strategy{
		ID:                  SharedStrategyID,
		Name:                name,
		MainIdea:            "مجموعة بطاقات تفاعلية للدرس",
		Objectives:          []string{},
		ImplementationSteps: []string{},
		Tools:               []string{},
		Questions:           questions,
		Kind:                DetectGameKind(name),
	}
}
