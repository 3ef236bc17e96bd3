// Code generated by ent, DO NOT EDIT.

package lessonprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/boaziz1447-maker/omar-alessa/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldID, id))
}

// TeacherName applies equality check predicate on the "teacher_name" field. It's identical to TeacherNameEQ.
func TeacherName(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldTeacherName, v))
}

// School applies equality check predicate on the "school" field. It's identical to SchoolEQ.
func School(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldSchool, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldRegion, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldSubject, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldGrade, v))
}

// Principal applies equality check predicate on the "principal" field. It's identical to PrincipalEQ.
func Principal(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldPrincipal, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// TeacherNameEQ applies the EQ predicate on the "teacher_name" field.
func TeacherNameEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldTeacherName, v))
}

// TeacherNameNEQ applies the NEQ predicate on the "teacher_name" field.
func TeacherNameNEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldTeacherName, v))
}

// TeacherNameIn applies the In predicate on the "teacher_name" field.
func TeacherNameIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldTeacherName, vs...))
}

// TeacherNameNotIn applies the NotIn predicate on the "teacher_name" field.
func TeacherNameNotIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldTeacherName, vs...))
}

// TeacherNameGT applies the GT predicate on the "teacher_name" field.
func TeacherNameGT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldTeacherName, v))
}

// TeacherNameGTE applies the GTE predicate on the "teacher_name" field.
func TeacherNameGTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldTeacherName, v))
}

// TeacherNameLT applies the LT predicate on the "teacher_name" field.
func TeacherNameLT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldTeacherName, v))
}

// TeacherNameLTE applies the LTE predicate on the "teacher_name" field.
func TeacherNameLTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldTeacherName, v))
}

// TeacherNameContains applies the Contains predicate on the "teacher_name" field.
func TeacherNameContains(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContains(FieldTeacherName, v))
}

// TeacherNameHasPrefix applies the HasPrefix predicate on the "teacher_name" field.
func TeacherNameHasPrefix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasPrefix(FieldTeacherName, v))
}

// TeacherNameHasSuffix applies the HasSuffix predicate on the "teacher_name" field.
func TeacherNameHasSuffix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasSuffix(FieldTeacherName, v))
}

// TeacherNameEqualFold applies the EqualFold predicate on the "teacher_name" field.
func TeacherNameEqualFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEqualFold(FieldTeacherName, v))
}

// TeacherNameContainsFold applies the ContainsFold predicate on the "teacher_name" field.
func TeacherNameContainsFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContainsFold(FieldTeacherName, v))
}

// SchoolEQ applies the EQ predicate on the "school" field.
func SchoolEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldSchool, v))
}

// SchoolNEQ applies the NEQ predicate on the "school" field.
func SchoolNEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldSchool, v))
}

// SchoolIn applies the In predicate on the "school" field.
func SchoolIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldSchool, vs...))
}

// SchoolNotIn applies the NotIn predicate on the "school" field.
func SchoolNotIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldSchool, vs...))
}

// SchoolGT applies the GT predicate on the "school" field.
func SchoolGT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldSchool, v))
}

// SchoolGTE applies the GTE predicate on the "school" field.
func SchoolGTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldSchool, v))
}

// SchoolLT applies the LT predicate on the "school" field.
func SchoolLT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldSchool, v))
}

// SchoolLTE applies the LTE predicate on the "school" field.
func SchoolLTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldSchool, v))
}

// SchoolContains applies the Contains predicate on the "school" field.
func SchoolContains(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContains(FieldSchool, v))
}

// SchoolHasPrefix applies the HasPrefix predicate on the "school" field.
func SchoolHasPrefix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasPrefix(FieldSchool, v))
}

// SchoolHasSuffix applies the HasSuffix predicate on the "school" field.
func SchoolHasSuffix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasSuffix(FieldSchool, v))
}

// SchoolEqualFold applies the EqualFold predicate on the "school" field.
func SchoolEqualFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEqualFold(FieldSchool, v))
}

// SchoolContainsFold applies the ContainsFold predicate on the "school" field.
func SchoolContainsFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContainsFold(FieldSchool, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContainsFold(FieldRegion, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContainsFold(FieldSubject, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContainsFold(FieldGrade, v))
}

// PrincipalEQ applies the EQ predicate on the "principal" field.
func PrincipalEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldPrincipal, v))
}

// PrincipalNEQ applies the NEQ predicate on the "principal" field.
func PrincipalNEQ(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldPrincipal, v))
}

// PrincipalIn applies the In predicate on the "principal" field.
func PrincipalIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldPrincipal, vs...))
}

// PrincipalNotIn applies the NotIn predicate on the "principal" field.
func PrincipalNotIn(vs ...string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldPrincipal, vs...))
}

// PrincipalGT applies the GT predicate on the "principal" field.
func PrincipalGT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldPrincipal, v))
}

// PrincipalGTE applies the GTE predicate on the "principal" field.
func PrincipalGTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldPrincipal, v))
}

// PrincipalLT applies the LT predicate on the "principal" field.
func PrincipalLT(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldPrincipal, v))
}

// PrincipalLTE applies the LTE predicate on the "principal" field.
func PrincipalLTE(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldPrincipal, v))
}

// PrincipalContains applies the Contains predicate on the "principal" field.
func PrincipalContains(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContains(FieldPrincipal, v))
}

// PrincipalHasPrefix applies the HasPrefix predicate on the "principal" field.
func PrincipalHasPrefix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasPrefix(FieldPrincipal, v))
}

// PrincipalHasSuffix applies the HasSuffix predicate on the "principal" field.
func PrincipalHasSuffix(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldHasSuffix(FieldPrincipal, v))
}

// PrincipalEqualFold applies the EqualFold predicate on the "principal" field.
func PrincipalEqualFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEqualFold(FieldPrincipal, v))
}

// PrincipalContainsFold applies the ContainsFold predicate on the "principal" field.
func PrincipalContainsFold(v string) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldContainsFold(FieldPrincipal, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonProfile {
	return predicate.LessonProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonProfile) predicate.LessonProfile {
	return predicate.LessonProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonProfile) predicate.LessonProfile {
	return predicate.LessonProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonProfile) predicate.LessonProfile {
	return predicate.LessonProfile(sql.NotPredicates(p))
}
