// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/boaziz1447-maker/omar-alessa/ent/lessonprofile"
	"github.com/boaziz1447-maker/omar-alessa/ent/predicate"
)

// LessonProfileUpdate is the builder for updating LessonProfile entities.
type LessonProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProfileMutation
}

// Where appends a list predicates to the LessonProfileUpdate builder.
func (_u *LessonProfileUpdate) Where(ps ...predicate.LessonProfile) *LessonProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTeacherName sets the "teacher_name" field.
func (_u *LessonProfileUpdate) SetTeacherName(v string) *LessonProfileUpdate {
	_u.mutation.SetTeacherName(v)
	return _u
}

// SetNillableTeacherName sets the "teacher_name" field if the given value is not nil.
func (_u *LessonProfileUpdate) SetNillableTeacherName(v *string) *LessonProfileUpdate {
	if v != nil {
		_u.SetTeacherName(*v)
	}
	return _u
}

// SetSchool sets the "school" field.
func (_u *LessonProfileUpdate) SetSchool(v string) *LessonProfileUpdate {
	_u.mutation.SetSchool(v)
	return _u
}

// SetNillableSchool sets the "school" field if the given value is not nil.
func (_u *LessonProfileUpdate) SetNillableSchool(v *string) *LessonProfileUpdate {
	if v != nil {
		_u.SetSchool(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *LessonProfileUpdate) SetRegion(v string) *LessonProfileUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *LessonProfileUpdate) SetNillableRegion(v *string) *LessonProfileUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonProfileUpdate) SetSubject(v string) *LessonProfileUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonProfileUpdate) SetNillableSubject(v *string) *LessonProfileUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *LessonProfileUpdate) SetGrade(v string) *LessonProfileUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LessonProfileUpdate) SetNillableGrade(v *string) *LessonProfileUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetPrincipal sets the "principal" field.
func (_u *LessonProfileUpdate) SetPrincipal(v string) *LessonProfileUpdate {
	_u.mutation.SetPrincipal(v)
	return _u
}

// SetNillablePrincipal sets the "principal" field if the given value is not nil.
func (_u *LessonProfileUpdate) SetNillablePrincipal(v *string) *LessonProfileUpdate {
	if v != nil {
		_u.SetPrincipal(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProfileUpdate) SetUpdatedAt(v time.Time) *LessonProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProfileMutation object of the builder.
func (_u *LessonProfileUpdate) Mutation() *LessonProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonprofile.Table, lessonprofile.Columns, sqlgraph.NewFieldSpec(lessonprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TeacherName(); ok {
		_spec.SetField(lessonprofile.FieldTeacherName, field.TypeString, value)
	}
	if value, ok := _u.mutation.School(); ok {
		_spec.SetField(lessonprofile.FieldSchool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(lessonprofile.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonprofile.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(lessonprofile.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Principal(); ok {
		_spec.SetField(lessonprofile.FieldPrincipal, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonProfileUpdateOne is the builder for updating a single LessonProfile entity.
type LessonProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProfileMutation
}

// SetTeacherName sets the "teacher_name" field.
func (_u *LessonProfileUpdateOne) SetTeacherName(v string) *LessonProfileUpdateOne {
	_u.mutation.SetTeacherName(v)
	return _u
}

// SetNillableTeacherName sets the "teacher_name" field if the given value is not nil.
func (_u *LessonProfileUpdateOne) SetNillableTeacherName(v *string) *LessonProfileUpdateOne {
	if v != nil {
		_u.SetTeacherName(*v)
	}
	return _u
}

// SetSchool sets the "school" field.
func (_u *LessonProfileUpdateOne) SetSchool(v string) *LessonProfileUpdateOne {
	_u.mutation.SetSchool(v)
	return _u
}

// SetNillableSchool sets the "school" field if the given value is not nil.
func (_u *LessonProfileUpdateOne) SetNillableSchool(v *string) *LessonProfileUpdateOne {
	if v != nil {
		_u.SetSchool(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *LessonProfileUpdateOne) SetRegion(v string) *LessonProfileUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *LessonProfileUpdateOne) SetNillableRegion(v *string) *LessonProfileUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonProfileUpdateOne) SetSubject(v string) *LessonProfileUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonProfileUpdateOne) SetNillableSubject(v *string) *LessonProfileUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *LessonProfileUpdateOne) SetGrade(v string) *LessonProfileUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LessonProfileUpdateOne) SetNillableGrade(v *string) *LessonProfileUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetPrincipal sets the "principal" field.
func (_u *LessonProfileUpdateOne) SetPrincipal(v string) *LessonProfileUpdateOne {
	_u.mutation.SetPrincipal(v)
	return _u
}

// SetNillablePrincipal sets the "principal" field if the given value is not nil.
func (_u *LessonProfileUpdateOne) SetNillablePrincipal(v *string) *LessonProfileUpdateOne {
	if v != nil {
		_u.SetPrincipal(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProfileUpdateOne) SetUpdatedAt(v time.Time) *LessonProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProfileMutation object of the builder.
func (_u *LessonProfileUpdateOne) Mutation() *LessonProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonProfileUpdate builder.
func (_u *LessonProfileUpdateOne) Where(ps ...predicate.LessonProfile) *LessonProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonProfileUpdateOne) Select(field string, fields ...string) *LessonProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonProfile entity.
func (_u *LessonProfileUpdateOne) Save(ctx context.Context) (*LessonProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProfileUpdateOne) SaveX(ctx context.Context) *LessonProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonProfileUpdateOne) sqlSave(ctx context.Context) (_node *LessonProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonprofile.Table, lessonprofile.Columns, sqlgraph.NewFieldSpec(lessonprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprofile.FieldID)
		for _, f := range fields {
			if !lessonprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TeacherName(); ok {
		_spec.SetField(lessonprofile.FieldTeacherName, field.TypeString, value)
	}
	if value, ok := _u.mutation.School(); ok {
		_spec.SetField(lessonprofile.FieldSchool, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(lessonprofile.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lessonprofile.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(lessonprofile.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Principal(); ok {
		_spec.SetField(lessonprofile.FieldPrincipal, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LessonProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
