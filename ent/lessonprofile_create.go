// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/boaziz1447-maker/omar-alessa/ent/lessonprofile"
)

// LessonProfileCreate is the builder for creating a LessonProfile entity.
type LessonProfileCreate struct {
	config
	mutation *LessonProfileMutation
	hooks    []Hook
}

// SetTeacherName sets the "teacher_name" field.
func (_c *LessonProfileCreate) SetTeacherName(v string) *LessonProfileCreate {
	_c.mutation.SetTeacherName(v)
	return _c
}

// SetNillableTeacherName sets the "teacher_name" field if the given value is not nil.
func (_c *LessonProfileCreate) SetNillableTeacherName(v *string) *LessonProfileCreate {
	if v != nil {
		_c.SetTeacherName(*v)
	}
	return _c
}

// SetSchool sets the "school" field.
func (_c *LessonProfileCreate) SetSchool(v string) *LessonProfileCreate {
	_c.mutation.SetSchool(v)
	return _c
}

// SetNillableSchool sets the "school" field if the given value is not nil.
func (_c *LessonProfileCreate) SetNillableSchool(v *string) *LessonProfileCreate {
	if v != nil {
		_c.SetSchool(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *LessonProfileCreate) SetRegion(v string) *LessonProfileCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *LessonProfileCreate) SetNillableRegion(v *string) *LessonProfileCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *LessonProfileCreate) SetSubject(v string) *LessonProfileCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *LessonProfileCreate) SetNillableSubject(v *string) *LessonProfileCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *LessonProfileCreate) SetGrade(v string) *LessonProfileCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *LessonProfileCreate) SetNillableGrade(v *string) *LessonProfileCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetPrincipal sets the "principal" field.
func (_c *LessonProfileCreate) SetPrincipal(v string) *LessonProfileCreate {
	_c.mutation.SetPrincipal(v)
	return _c
}

// SetNillablePrincipal sets the "principal" field if the given value is not nil.
func (_c *LessonProfileCreate) SetNillablePrincipal(v *string) *LessonProfileCreate {
	if v != nil {
		_c.SetPrincipal(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonProfileCreate) SetUpdatedAt(v time.Time) *LessonProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonProfileCreate) SetNillableUpdatedAt(v *time.Time) *LessonProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonProfileMutation object of the builder.
func (_c *LessonProfileCreate) Mutation() *LessonProfileMutation {
	return _c.mutation
}

// Save creates the LessonProfile in the database.
func (_c *LessonProfileCreate) Save(ctx context.Context) (*LessonProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonProfileCreate) SaveX(ctx context.Context) *LessonProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonProfileCreate) defaults() {
	if _, ok := _c.mutation.TeacherName(); !ok {
		v := lessonprofile.DefaultTeacherName
		_c.mutation.SetTeacherName(v)
	}
	if _, ok := _c.mutation.School(); !ok {
		v := lessonprofile.DefaultSchool
		_c.mutation.SetSchool(v)
	}
	if _, ok := _c.mutation.Region(); !ok {
		v := lessonprofile.DefaultRegion
		_c.mutation.SetRegion(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := lessonprofile.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Grade(); !ok {
		v := lessonprofile.DefaultGrade
		_c.mutation.SetGrade(v)
	}
	if _, ok := _c.mutation.Principal(); !ok {
		v := lessonprofile.DefaultPrincipal
		_c.mutation.SetPrincipal(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessonprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonProfileCreate) check() error {
	if _, ok := _c.mutation.TeacherName(); !ok {
		return &ValidationError{Name: "teacher_name", err: errors.New(`ent: missing required field "LessonProfile.teacher_name"`)}
	}
	if _, ok := _c.mutation.School(); !ok {
		return &ValidationError{Name: "school", err: errors.New(`ent: missing required field "LessonProfile.school"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "LessonProfile.region"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "LessonProfile.subject"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "LessonProfile.grade"`)}
	}
	if _, ok := _c.mutation.Principal(); !ok {
		return &ValidationError{Name: "principal", err: errors.New(`ent: missing required field "LessonProfile.principal"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonProfile.updated_at"`)}
	}
	return nil
}

func (_c *LessonProfileCreate) sqlSave(ctx context.Context) (*LessonProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonProfileCreate) createSpec() (*LessonProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonprofile.Table, sqlgraph.NewFieldSpec(lessonprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TeacherName(); ok {
		_spec.SetField(lessonprofile.FieldTeacherName, field.TypeString, value)
		_node.TeacherName = value
	}
	if value, ok := _c.mutation.School(); ok {
		_spec.SetField(lessonprofile.FieldSchool, field.TypeString, value)
		_node.School = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(lessonprofile.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(lessonprofile.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(lessonprofile.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Principal(); ok {
		_spec.SetField(lessonprofile.FieldPrincipal, field.TypeString, value)
		_node.Principal = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LessonProfileCreateBulk is the builder for creating many LessonProfile entities in bulk.
type LessonProfileCreateBulk struct {
	config
	err      error
	builders []*LessonProfileCreate
}

// Save creates the LessonProfile entities in the database.
func (_c *LessonProfileCreateBulk) Save(ctx context.Context) ([]*LessonProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonProfileCreateBulk) SaveX(ctx context.Context) []*LessonProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
