// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cozmiclearning/cozmic/ent/adaptivesession"
	"github.com/cozmiclearning/cozmic/ent/answerevent"
	"github.com/cozmiclearning/cozmic/ent/assessmentresult"
	"github.com/cozmiclearning/cozmic/ent/llmrequestevent"
	"github.com/cozmiclearning/cozmic/ent/questionpool"
	"github.com/cozmiclearning/cozmic/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptivesessionFields := schema.AdaptiveSession{}.Fields()
	_ = adaptivesessionFields
	// adaptivesessionDescStudentID is the schema descriptor for student_id field.
	adaptivesessionDescStudentID := adaptivesessionFields[0].Descriptor()
	// adaptivesession.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	adaptivesession.StudentIDValidator = adaptivesessionDescStudentID.Validators[0].(func(string) error)
	// adaptivesessionDescAssignmentID is the schema descriptor for assignment_id field.
	adaptivesessionDescAssignmentID := adaptivesessionFields[1].Descriptor()
	// adaptivesession.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	adaptivesession.AssignmentIDValidator = adaptivesessionDescAssignmentID.Validators[0].(func(string) error)
	// adaptivesessionDescPhase is the schema descriptor for phase field.
	adaptivesessionDescPhase := adaptivesessionFields[2].Descriptor()
	// adaptivesession.DefaultPhase holds the default value on creation for the phase field.
	adaptivesession.DefaultPhase = adaptivesessionDescPhase.Default.(string)
	// adaptivesessionDescCurrentQuestionIndex is the schema descriptor for current_question_index field.
	adaptivesessionDescCurrentQuestionIndex := adaptivesessionFields[3].Descriptor()
	// adaptivesession.DefaultCurrentQuestionIndex holds the default value on creation for the current_question_index field.
	adaptivesession.DefaultCurrentQuestionIndex = adaptivesessionDescCurrentQuestionIndex.Default.(int)
	// adaptivesessionDescMcPhaseComplete is the schema descriptor for mc_phase_complete field.
	adaptivesessionDescMcPhaseComplete := adaptivesessionFields[4].Descriptor()
	// adaptivesession.DefaultMcPhaseComplete holds the default value on creation for the mc_phase_complete field.
	adaptivesession.DefaultMcPhaseComplete = adaptivesessionDescMcPhaseComplete.Default.(bool)
	// adaptivesessionDescTrack is the schema descriptor for track field.
	adaptivesessionDescTrack := adaptivesessionFields[5].Descriptor()
	// adaptivesession.DefaultTrack holds the default value on creation for the track field.
	adaptivesession.DefaultTrack = adaptivesessionDescTrack.Default.(string)
	// adaptivesessionDescVersion is the schema descriptor for version field.
	adaptivesessionDescVersion := adaptivesessionFields[7].Descriptor()
	// adaptivesession.DefaultVersion holds the default value on creation for the version field.
	adaptivesession.DefaultVersion = adaptivesessionDescVersion.Default.(int64)
	// adaptivesessionDescUpdatedAt is the schema descriptor for updated_at field.
	adaptivesessionDescUpdatedAt := adaptivesessionFields[8].Descriptor()
	// adaptivesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	adaptivesession.DefaultUpdatedAt = adaptivesessionDescUpdatedAt.Default.(func() time.Time)
	// adaptivesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	adaptivesession.UpdateDefaultUpdatedAt = adaptivesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescStudentID is the schema descriptor for student_id field.
	answereventDescStudentID := answereventFields[0].Descriptor()
	// answerevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	answerevent.StudentIDValidator = answereventDescStudentID.Validators[0].(func(string) error)
	// answereventDescAssignmentID is the schema descriptor for assignment_id field.
	answereventDescAssignmentID := answereventFields[1].Descriptor()
	// answerevent.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	answerevent.AssignmentIDValidator = answereventDescAssignmentID.Validators[0].(func(string) error)
	// answereventDescPhase is the schema descriptor for phase field.
	answereventDescPhase := answereventFields[2].Descriptor()
	// answerevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	answerevent.PhaseValidator = answereventDescPhase.Validators[0].(func(string) error)
	// answereventDescQuestionPrompt is the schema descriptor for question_prompt field.
	answereventDescQuestionPrompt := answereventFields[4].Descriptor()
	// answerevent.QuestionPromptValidator is a validator for the "question_prompt" field. It is called by the builders before save.
	answerevent.QuestionPromptValidator = answereventDescQuestionPrompt.Validators[0].(func(string) error)
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[7].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	assessmentresultFields := schema.AssessmentResult{}.Fields()
	_ = assessmentresultFields
	// assessmentresultDescStudentID is the schema descriptor for student_id field.
	assessmentresultDescStudentID := assessmentresultFields[0].Descriptor()
	// assessmentresult.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	assessmentresult.StudentIDValidator = assessmentresultDescStudentID.Validators[0].(func(string) error)
	// assessmentresultDescRecordedAt is the schema descriptor for recorded_at field.
	assessmentresultDescRecordedAt := assessmentresultFields[2].Descriptor()
	// assessmentresult.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	assessmentresult.DefaultRecordedAt = assessmentresultDescRecordedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	questionpoolFields := schema.QuestionPool{}.Fields()
	_ = questionpoolFields
	// questionpoolDescPoolID is the schema descriptor for pool_id field.
	questionpoolDescPoolID := questionpoolFields[0].Descriptor()
	// questionpool.PoolIDValidator is a validator for the "pool_id" field. It is called by the builders before save.
	questionpool.PoolIDValidator = questionpoolDescPoolID.Validators[0].(func(string) error)
	// questionpoolDescTopic is the schema descriptor for topic field.
	questionpoolDescTopic := questionpoolFields[1].Descriptor()
	// questionpool.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	questionpool.TopicValidator = questionpoolDescTopic.Validators[0].(func(string) error)
	// questionpoolDescSubject is the schema descriptor for subject field.
	questionpoolDescSubject := questionpoolFields[2].Descriptor()
	// questionpool.DefaultSubject holds the default value on creation for the subject field.
	questionpool.DefaultSubject = questionpoolDescSubject.Default.(string)
	// questionpoolDescGrade is the schema descriptor for grade field.
	questionpoolDescGrade := questionpoolFields[3].Descriptor()
	// questionpool.DefaultGrade holds the default value on creation for the grade field.
	questionpool.DefaultGrade = questionpoolDescGrade.Default.(string)
	// questionpoolDescMode is the schema descriptor for mode field.
	questionpoolDescMode := questionpoolFields[4].Descriptor()
	// questionpool.DefaultMode holds the default value on creation for the mode field.
	questionpool.DefaultMode = questionpoolDescMode.Default.(string)
	// questionpoolDescTargetAbility is the schema descriptor for target_ability field.
	questionpoolDescTargetAbility := questionpoolFields[5].Descriptor()
	// questionpool.DefaultTargetAbility holds the default value on creation for the target_ability field.
	questionpool.DefaultTargetAbility = questionpoolDescTargetAbility.Default.(string)
	// questionpoolDescFinalMessage is the schema descriptor for final_message field.
	questionpoolDescFinalMessage := questionpoolFields[7].Descriptor()
	// questionpool.DefaultFinalMessage holds the default value on creation for the final_message field.
	questionpool.DefaultFinalMessage = questionpoolDescFinalMessage.Default.(string)
	// questionpoolDescSynthetic is the schema descriptor for synthetic field.
	questionpoolDescSynthetic := questionpoolFields[8].Descriptor()
	// questionpool.DefaultSynthetic holds the default value on creation for the synthetic field.
	questionpool.DefaultSynthetic = questionpoolDescSynthetic.Default.(bool)
	// questionpoolDescCreatedAt is the schema descriptor for created_at field.
	questionpoolDescCreatedAt := questionpoolFields[9].Descriptor()
	// questionpool.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionpool.DefaultCreatedAt = questionpoolDescCreatedAt.Default.(func() time.Time)
}
