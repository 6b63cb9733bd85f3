// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptiveSessionsColumns holds the columns for the "adaptive_sessions" table.
	AdaptiveSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString, Default: "not_started"},
		{Name: "current_question_index", Type: field.TypeInt, Default: 0},
		{Name: "mc_phase_complete", Type: field.TypeBool, Default: false},
		{Name: "track", Type: field.TypeString, Default: ""},
		{Name: "answer_log", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AdaptiveSessionsTable holds the schema information for the "adaptive_sessions" table.
	AdaptiveSessionsTable = &schema.Table{
		Name:       "adaptive_sessions",
		Columns:    AdaptiveSessionsColumns,
		PrimaryKey: []*schema.Column{AdaptiveSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptivesession_student_id_assignment_id",
				Unique:  true,
				Columns: []*schema.Column{AdaptiveSessionsColumns[1], AdaptiveSessionsColumns[2]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "question_prompt", Type: field.TypeString},
		{Name: "submitted_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "kind", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_student_id_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// AssessmentResultsColumns holds the columns for the "assessment_results" table.
	AssessmentResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "score_percent", Type: field.TypeFloat64, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// AssessmentResultsTable holds the schema information for the "assessment_results" table.
	AssessmentResultsTable = &schema.Table{
		Name:       "assessment_results",
		Columns:    AssessmentResultsColumns,
		PrimaryKey: []*schema.Column{AssessmentResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentresult_student_id_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentResultsColumns[1], AssessmentResultsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionPoolsColumns holds the columns for the "question_pools" table.
	QuestionPoolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pool_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "grade", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString, Default: "none"},
		{Name: "target_ability", Type: field.TypeString, Default: "on_level"},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "final_message", Type: field.TypeString, Default: ""},
		{Name: "synthetic", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionPoolsTable holds the schema information for the "question_pools" table.
	QuestionPoolsTable = &schema.Table{
		Name:       "question_pools",
		Columns:    QuestionPoolsColumns,
		PrimaryKey: []*schema.Column{QuestionPoolsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionpool_topic",
				Unique:  false,
				Columns: []*schema.Column{QuestionPoolsColumns[2]},
			},
			{
				Name:    "questionpool_mode",
				Unique:  false,
				Columns: []*schema.Column{QuestionPoolsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptiveSessionsTable,
		AnswerEventsTable,
		AssessmentResultsTable,
		LlmRequestEventsTable,
		QuestionPoolsTable,
	}
)

func init() {
}
