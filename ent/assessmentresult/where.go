// Code generated by ent, DO NOT EDIT.

package assessmentresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cozmiclearning/cozmic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldStudentID, v))
}

// ScorePercent applies equality check predicate on the "score_percent" field. It's identical to ScorePercentEQ.
func ScorePercent(v float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldScorePercent, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldRecordedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldContainsFold(FieldStudentID, v))
}

// ScorePercentEQ applies the EQ predicate on the "score_percent" field.
func ScorePercentEQ(v float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldScorePercent, v))
}

// ScorePercentNEQ applies the NEQ predicate on the "score_percent" field.
func ScorePercentNEQ(v float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldScorePercent, v))
}

// ScorePercentIn applies the In predicate on the "score_percent" field.
func ScorePercentIn(vs ...float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldScorePercent, vs...))
}

// ScorePercentNotIn applies the NotIn predicate on the "score_percent" field.
func ScorePercentNotIn(vs ...float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldScorePercent, vs...))
}

// ScorePercentGT applies the GT predicate on the "score_percent" field.
func ScorePercentGT(v float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldScorePercent, v))
}

// ScorePercentGTE applies the GTE predicate on the "score_percent" field.
func ScorePercentGTE(v float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldScorePercent, v))
}

// ScorePercentLT applies the LT predicate on the "score_percent" field.
func ScorePercentLT(v float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldScorePercent, v))
}

// ScorePercentLTE applies the LTE predicate on the "score_percent" field.
func ScorePercentLTE(v float64) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldScorePercent, v))
}

// ScorePercentIsNil applies the IsNil predicate on the "score_percent" field.
func ScorePercentIsNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIsNull(FieldScorePercent))
}

// ScorePercentNotNil applies the NotNil predicate on the "score_percent" field.
func ScorePercentNotNil() predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotNull(FieldScorePercent))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.FieldLTE(FieldRecordedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentResult) predicate.AssessmentResult {
	return predicate.AssessmentResult(sql.NotPredicates(p))
}
