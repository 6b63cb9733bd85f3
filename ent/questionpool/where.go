// Code generated by ent, DO NOT EDIT.

package questionpool

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cozmiclearning/cozmic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldID, id))
}

// PoolID applies equality check predicate on the "pool_id" field. It's identical to PoolIDEQ.
func PoolID(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldPoolID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldTopic, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldSubject, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldGrade, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldMode, v))
}

// TargetAbility applies equality check predicate on the "target_ability" field. It's identical to TargetAbilityEQ.
func TargetAbility(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldTargetAbility, v))
}

// FinalMessage applies equality check predicate on the "final_message" field. It's identical to FinalMessageEQ.
func FinalMessage(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldFinalMessage, v))
}

// Synthetic applies equality check predicate on the "synthetic" field. It's identical to SyntheticEQ.
func Synthetic(v bool) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldSynthetic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldCreatedAt, v))
}

// PoolIDEQ applies the EQ predicate on the "pool_id" field.
func PoolIDEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldPoolID, v))
}

// PoolIDNEQ applies the NEQ predicate on the "pool_id" field.
func PoolIDNEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldPoolID, v))
}

// PoolIDIn applies the In predicate on the "pool_id" field.
func PoolIDIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldPoolID, vs...))
}

// PoolIDNotIn applies the NotIn predicate on the "pool_id" field.
func PoolIDNotIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldPoolID, vs...))
}

// PoolIDGT applies the GT predicate on the "pool_id" field.
func PoolIDGT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldPoolID, v))
}

// PoolIDGTE applies the GTE predicate on the "pool_id" field.
func PoolIDGTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldPoolID, v))
}

// PoolIDLT applies the LT predicate on the "pool_id" field.
func PoolIDLT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldPoolID, v))
}

// PoolIDLTE applies the LTE predicate on the "pool_id" field.
func PoolIDLTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldPoolID, v))
}

// PoolIDContains applies the Contains predicate on the "pool_id" field.
func PoolIDContains(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContains(FieldPoolID, v))
}

// PoolIDHasPrefix applies the HasPrefix predicate on the "pool_id" field.
func PoolIDHasPrefix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasPrefix(FieldPoolID, v))
}

// PoolIDHasSuffix applies the HasSuffix predicate on the "pool_id" field.
func PoolIDHasSuffix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasSuffix(FieldPoolID, v))
}

// PoolIDEqualFold applies the EqualFold predicate on the "pool_id" field.
func PoolIDEqualFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEqualFold(FieldPoolID, v))
}

// PoolIDContainsFold applies the ContainsFold predicate on the "pool_id" field.
func PoolIDContainsFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContainsFold(FieldPoolID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContainsFold(FieldTopic, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContainsFold(FieldSubject, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContainsFold(FieldGrade, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContainsFold(FieldMode, v))
}

// TargetAbilityEQ applies the EQ predicate on the "target_ability" field.
func TargetAbilityEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldTargetAbility, v))
}

// TargetAbilityNEQ applies the NEQ predicate on the "target_ability" field.
func TargetAbilityNEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldTargetAbility, v))
}

// TargetAbilityIn applies the In predicate on the "target_ability" field.
func TargetAbilityIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldTargetAbility, vs...))
}

// TargetAbilityNotIn applies the NotIn predicate on the "target_ability" field.
func TargetAbilityNotIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldTargetAbility, vs...))
}

// TargetAbilityGT applies the GT predicate on the "target_ability" field.
func TargetAbilityGT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldTargetAbility, v))
}

// TargetAbilityGTE applies the GTE predicate on the "target_ability" field.
func TargetAbilityGTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldTargetAbility, v))
}

// TargetAbilityLT applies the LT predicate on the "target_ability" field.
func TargetAbilityLT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldTargetAbility, v))
}

// TargetAbilityLTE applies the LTE predicate on the "target_ability" field.
func TargetAbilityLTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldTargetAbility, v))
}

// TargetAbilityContains applies the Contains predicate on the "target_ability" field.
func TargetAbilityContains(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContains(FieldTargetAbility, v))
}

// TargetAbilityHasPrefix applies the HasPrefix predicate on the "target_ability" field.
func TargetAbilityHasPrefix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasPrefix(FieldTargetAbility, v))
}

// TargetAbilityHasSuffix applies the HasSuffix predicate on the "target_ability" field.
func TargetAbilityHasSuffix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasSuffix(FieldTargetAbility, v))
}

// TargetAbilityEqualFold applies the EqualFold predicate on the "target_ability" field.
func TargetAbilityEqualFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEqualFold(FieldTargetAbility, v))
}

// TargetAbilityContainsFold applies the ContainsFold predicate on the "target_ability" field.
func TargetAbilityContainsFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContainsFold(FieldTargetAbility, v))
}

// FinalMessageEQ applies the EQ predicate on the "final_message" field.
func FinalMessageEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldFinalMessage, v))
}

// FinalMessageNEQ applies the NEQ predicate on the "final_message" field.
func FinalMessageNEQ(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldFinalMessage, v))
}

// FinalMessageIn applies the In predicate on the "final_message" field.
func FinalMessageIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldFinalMessage, vs...))
}

// FinalMessageNotIn applies the NotIn predicate on the "final_message" field.
func FinalMessageNotIn(vs ...string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldFinalMessage, vs...))
}

// FinalMessageGT applies the GT predicate on the "final_message" field.
func FinalMessageGT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldFinalMessage, v))
}

// FinalMessageGTE applies the GTE predicate on the "final_message" field.
func FinalMessageGTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldFinalMessage, v))
}

// FinalMessageLT applies the LT predicate on the "final_message" field.
func FinalMessageLT(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldFinalMessage, v))
}

// FinalMessageLTE applies the LTE predicate on the "final_message" field.
func FinalMessageLTE(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldFinalMessage, v))
}

// FinalMessageContains applies the Contains predicate on the "final_message" field.
func FinalMessageContains(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContains(FieldFinalMessage, v))
}

// FinalMessageHasPrefix applies the HasPrefix predicate on the "final_message" field.
func FinalMessageHasPrefix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasPrefix(FieldFinalMessage, v))
}

// FinalMessageHasSuffix applies the HasSuffix predicate on the "final_message" field.
func FinalMessageHasSuffix(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldHasSuffix(FieldFinalMessage, v))
}

// FinalMessageEqualFold applies the EqualFold predicate on the "final_message" field.
func FinalMessageEqualFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEqualFold(FieldFinalMessage, v))
}

// FinalMessageContainsFold applies the ContainsFold predicate on the "final_message" field.
func FinalMessageContainsFold(v string) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldContainsFold(FieldFinalMessage, v))
}

// SyntheticEQ applies the EQ predicate on the "synthetic" field.
func SyntheticEQ(v bool) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldSynthetic, v))
}

// SyntheticNEQ applies the NEQ predicate on the "synthetic" field.
func SyntheticNEQ(v bool) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldSynthetic, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionPool {
	return predicate.QuestionPool(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionPool) predicate.QuestionPool {
	return predicate.QuestionPool(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionPool) predicate.QuestionPool {
	return predicate.QuestionPool(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionPool) predicate.QuestionPool {
	return predicate.QuestionPool(sql.NotPredicates(p))
}
