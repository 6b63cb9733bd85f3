package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentResult is one recorded assessment score. The ability
// classifier reads the 10 most recent rows per student.
type AssessmentResult struct {
	ent.Schema
}

func (AssessmentResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.Float("score_percent").
			Optional().
			Comment("0-100; missing scores count as 0 during classification"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AssessmentResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "recorded_at"),
	}
}
