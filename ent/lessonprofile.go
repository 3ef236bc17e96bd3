// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/boaziz1447-maker/omar-alessa/ent/lessonprofile"
)

// LessonProfile is the model entity for the LessonProfile schema.
type LessonProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TeacherName holds the value of the "teacher_name" field.
	TeacherName string `json:"teacher_name,omitempty"`
	// School holds the value of the "school" field.
	School string `json:"school,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Principal holds the value of the "principal" field.
	Principal string `json:"principal,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonprofile.FieldID:
			values[i] = new(sql.NullInt64)
		case lessonprofile.FieldTeacherName, lessonprofile.FieldSchool, lessonprofile.FieldRegion, lessonprofile.FieldSubject, lessonprofile.FieldGrade, lessonprofile.FieldPrincipal:
			values[i] = new(sql.NullString)
		case lessonprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonProfile fields.
func (_m *LessonProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonprofile.FieldTeacherName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field teacher_name", values[i])
			} else if value.Valid {
				_m.TeacherName = value.String
			}
		case lessonprofile.FieldSchool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field school", values[i])
			} else if value.Valid {
				_m.School = value.String
			}
		case lessonprofile.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case lessonprofile.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case lessonprofile.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case lessonprofile.FieldPrincipal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principal", values[i])
			} else if value.Valid {
				_m.Principal = value.String
			}
		case lessonprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonProfile.
// This includes values selected through modifiers, order, etc.
func (_m *LessonProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonProfile.
// Note that you need to call LessonProfile.Unwrap() before calling this method if this LessonProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonProfile) Update() *LessonProfileUpdateOne {
	return NewLessonProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonProfile) Unwrap() *LessonProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonProfile) String() string {
	var builder strings.Builder
	builder.WriteString("LessonProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("teacher_name=")
	builder.WriteString(_m.TeacherName)
	builder.WriteString(", ")
	builder.WriteString("school=")
	builder.WriteString(_m.School)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("principal=")
	builder.WriteString(_m.Principal)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonProfiles is a parsable slice of LessonProfile.
type LessonProfiles []*LessonProfile
