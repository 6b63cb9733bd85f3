// Code generated by ent, DO NOT EDIT.

package adaptivesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cozmiclearning/cozmic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldStudentID, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldAssignmentID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldPhase, v))
}

// CurrentQuestionIndex applies equality check predicate on the "current_question_index" field. It's identical to CurrentQuestionIndexEQ.
func CurrentQuestionIndex(v int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldCurrentQuestionIndex, v))
}

// McPhaseComplete applies equality check predicate on the "mc_phase_complete" field. It's identical to McPhaseCompleteEQ.
func McPhaseComplete(v bool) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldMcPhaseComplete, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldTrack, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldVersion, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContainsFold(FieldStudentID, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContainsFold(FieldAssignmentID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContainsFold(FieldPhase, v))
}

// CurrentQuestionIndexEQ applies the EQ predicate on the "current_question_index" field.
func CurrentQuestionIndexEQ(v int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexNEQ applies the NEQ predicate on the "current_question_index" field.
func CurrentQuestionIndexNEQ(v int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexIn applies the In predicate on the "current_question_index" field.
func CurrentQuestionIndexIn(vs ...int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldCurrentQuestionIndex, vs...))
}

// CurrentQuestionIndexNotIn applies the NotIn predicate on the "current_question_index" field.
func CurrentQuestionIndexNotIn(vs ...int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldCurrentQuestionIndex, vs...))
}

// CurrentQuestionIndexGT applies the GT predicate on the "current_question_index" field.
func CurrentQuestionIndexGT(v int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexGTE applies the GTE predicate on the "current_question_index" field.
func CurrentQuestionIndexGTE(v int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexLT applies the LT predicate on the "current_question_index" field.
func CurrentQuestionIndexLT(v int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldCurrentQuestionIndex, v))
}

// CurrentQuestionIndexLTE applies the LTE predicate on the "current_question_index" field.
func CurrentQuestionIndexLTE(v int) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldCurrentQuestionIndex, v))
}

// McPhaseCompleteEQ applies the EQ predicate on the "mc_phase_complete" field.
func McPhaseCompleteEQ(v bool) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldMcPhaseComplete, v))
}

// McPhaseCompleteNEQ applies the NEQ predicate on the "mc_phase_complete" field.
func McPhaseCompleteNEQ(v bool) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldMcPhaseComplete, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldContainsFold(FieldTrack, v))
}

// AnswerLogIsNil applies the IsNil predicate on the "answer_log" field.
func AnswerLogIsNil() predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIsNull(FieldAnswerLog))
}

// AnswerLogNotNil applies the NotNil predicate on the "answer_log" field.
func AnswerLogNotNil() predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotNull(FieldAnswerLog))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldVersion, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptiveSession) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptiveSession) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptiveSession) predicate.AdaptiveSession {
	return predicate.AdaptiveSession(sql.NotPredicates(p))
}
