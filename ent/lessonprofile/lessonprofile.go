// Code generated by ent, DO NOT EDIT.

package lessonprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonprofile type in the database.
	Label = "lesson_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTeacherName holds the string denoting the teacher_name field in the database.
	FieldTeacherName = "teacher_name"
	// FieldSchool holds the string denoting the school field in the database.
	FieldSchool = "school"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldPrincipal holds the string denoting the principal field in the database.
	FieldPrincipal = "principal"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lessonprofile in the database.
	Table = "lesson_profiles"
)

// Columns holds all SQL columns for lessonprofile fields.
var Columns = []string{
	FieldID,
	FieldTeacherName,
	FieldSchool,
	FieldRegion,
	FieldSubject,
	FieldGrade,
	FieldPrincipal,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTeacherName holds the default value on creation for the "teacher_name" field.
	DefaultTeacherName string
	// DefaultSchool holds the default value on creation for the "school" field.
	DefaultSchool string
	// DefaultRegion holds the default value on creation for the "region" field.
	DefaultRegion string
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultGrade holds the default value on creation for the "grade" field.
	DefaultGrade string
	// DefaultPrincipal holds the default value on creation for the "principal" field.
	DefaultPrincipal string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LessonProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTeacherName orders the results by the teacher_name field.
func ByTeacherName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeacherName, opts...).ToFunc()
}

// BySchool orders the results by the school field.
func BySchool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchool, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByPrincipal orders the results by the principal field.
func ByPrincipal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrincipal, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
