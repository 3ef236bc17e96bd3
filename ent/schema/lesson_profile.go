package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LessonProfile holds the stable part of the lesson form so the teacher
// does not retype it every session. Lesson title, content and date are
// deliberately absent: those change per lesson.
type LessonProfile struct {
	ent.Schema
}

func (LessonProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("teacher_name").Default(""),
		field.String("school").Default(""),
		field.String("region").Default(""),
		field.String("subject").Default(""),
		field.String("grade").Default(""),
		field.String("principal").Default(""),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
