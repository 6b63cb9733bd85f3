package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionPool stores a generated, validated question set. Pools are
// immutable once written; regeneration inserts a new row.
type QuestionPool struct {
	ent.Schema
}

// QuestionData is the serialized form of one question in the pool.
type QuestionData struct {
	Prompt      string   `json:"prompt"`
	Kind        string   `json:"kind"`
	Choices     []string `json:"choices,omitempty"`
	Expected    []string `json:"expected"`
	Hint        string   `json:"hint"`
	Explanation string   `json:"explanation"`
	Difficulty  string   `json:"difficulty"`
	Synthetic   bool     `json:"synthetic,omitempty"`
}

func (QuestionPool) Fields() []ent.Field {
	return []ent.Field{
		field.String("pool_id").
			Unique().
			NotEmpty().
			Comment("UUID assigned at build time"),
		field.String("topic").
			NotEmpty(),
		field.String("subject").
			Default(""),
		field.String("grade").
			Default(""),
		field.String("mode").
			Default("none"),
		field.String("target_ability").
			Default("on_level"),
		field.JSON("questions", []QuestionData{}),
		field.String("final_message").
			Default(""),
		field.Bool("synthetic").
			Default(false).
			Comment("True when the whole pool came from fallback synthesis"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuestionPool) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("mode"),
	}
}
