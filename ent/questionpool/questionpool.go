// Code generated by ent, DO NOT EDIT.

package questionpool

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionpool type in the database.
	Label = "question_pool"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPoolID holds the string denoting the pool_id field in the database.
	FieldPoolID = "pool_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldTargetAbility holds the string denoting the target_ability field in the database.
	FieldTargetAbility = "target_ability"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldFinalMessage holds the string denoting the final_message field in the database.
	FieldFinalMessage = "final_message"
	// FieldSynthetic holds the string denoting the synthetic field in the database.
	FieldSynthetic = "synthetic"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the questionpool in the database.
	Table = "question_pools"
)

// Columns holds all SQL columns for questionpool fields.
var Columns = []string{
	FieldID,
	FieldPoolID,
	FieldTopic,
	FieldSubject,
	FieldGrade,
	FieldMode,
	FieldTargetAbility,
	FieldQuestions,
	FieldFinalMessage,
	FieldSynthetic,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PoolIDValidator is a validator for the "pool_id" field. It is called by the builders before save.
	PoolIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultGrade holds the default value on creation for the "grade" field.
	DefaultGrade string
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
	// DefaultTargetAbility holds the default value on creation for the "target_ability" field.
	DefaultTargetAbility string
	// DefaultFinalMessage holds the default value on creation for the "final_message" field.
	DefaultFinalMessage string
	// DefaultSynthetic holds the default value on creation for the "synthetic" field.
	DefaultSynthetic bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QuestionPool queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPoolID orders the results by the pool_id field.
func ByPoolID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoolID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTargetAbility orders the results by the target_ability field.
func ByTargetAbility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAbility, opts...).ToFunc()
}

// ByFinalMessage orders the results by the final_message field.
func ByFinalMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalMessage, opts...).ToFunc()
}

// BySynthetic orders the results by the synthetic field.
func BySynthetic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthetic, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
