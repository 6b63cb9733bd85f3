package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent is the append-only audit record of one accepted answer
// submission. Rejected (stale-index) submissions are not recorded; the
// session row is the authoritative runtime state, this table feeds
// analytics.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("assignment_id").
			NotEmpty(),
		field.String("phase").
			NotEmpty().
			Comment("mc_phase or mastery_phase"),
		field.Int("question_index"),
		field.String("question_prompt").
			NotEmpty(),
		field.String("submitted_answer"),
		field.Bool("correct"),
		field.String("kind").
			NotEmpty().
			Comment("multiple_choice or free"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "assignment_id"),
		index.Fields("correct"),
	}
}
