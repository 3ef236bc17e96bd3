// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonProfile is the predicate function for lessonprofile builders.
type LessonProfile func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
