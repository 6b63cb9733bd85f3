package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptiveSession is the per-(student, assignment) progress record for
// adaptive assignments. Exactly one row exists per pair; it is created
// lazily on first access and every mutation goes through a versioned
// compare-and-swap so concurrent submissions cannot both win.
type AdaptiveSession struct {
	ent.Schema
}

// AnswerLogEntry is the serialized form of one submitted answer.
type AnswerLogEntry struct {
	Phase         string    `json:"phase"`
	QuestionIndex int       `json:"question_index"`
	Submitted     string    `json:"submitted_answer"`
	Correct       bool      `json:"correct"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

func (AdaptiveSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.String("assignment_id").
			NotEmpty(),
		field.String("phase").
			Default("not_started").
			Comment("not_started, mc_phase, mastery_phase, or complete; forward-only"),
		field.Int("current_question_index").
			Default(0).
			Comment("Index into the current phase's pool; monotone within a phase"),
		field.Bool("mc_phase_complete").
			Default(false).
			Comment("Latches true once the diagnostic phase ends; never reverts"),
		field.String("track").
			Default("").
			Comment("remediation or enrichment once bound; empty before branching"),
		field.JSON("answer_log", []AnswerLogEntry{}).
			Optional(),
		field.Int64("version").
			Default(0).
			Comment("Optimistic concurrency token; bumped on every write"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (AdaptiveSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "assignment_id").Unique(),
	}
}
