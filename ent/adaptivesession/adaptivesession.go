// Code generated by ent, DO NOT EDIT.

package adaptivesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptivesession type in the database.
	Label = "adaptive_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldCurrentQuestionIndex holds the string denoting the current_question_index field in the database.
	FieldCurrentQuestionIndex = "current_question_index"
	// FieldMcPhaseComplete holds the string denoting the mc_phase_complete field in the database.
	FieldMcPhaseComplete = "mc_phase_complete"
	// FieldTrack holds the string denoting the track field in the database.
	FieldTrack = "track"
	// FieldAnswerLog holds the string denoting the answer_log field in the database.
	FieldAnswerLog = "answer_log"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the adaptivesession in the database.
	Table = "adaptive_sessions"
)

// Columns holds all SQL columns for adaptivesession fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldAssignmentID,
	FieldPhase,
	FieldCurrentQuestionIndex,
	FieldMcPhaseComplete,
	FieldTrack,
	FieldAnswerLog,
	FieldVersion,
	FieldUpdatedAt,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	AssignmentIDValidator func(string) error
	// DefaultPhase holds the default value on creation for the "phase" field.
	DefaultPhase string
	// DefaultCurrentQuestionIndex holds the default value on creation for the "current_question_index" field.
	DefaultCurrentQuestionIndex int
	// DefaultMcPhaseComplete holds the default value on creation for the "mc_phase_complete" field.
	DefaultMcPhaseComplete bool
	// DefaultTrack holds the default value on creation for the "track" field.
	DefaultTrack string
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AdaptiveSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByAssignmentID orders the results by the assignment_id field.
func ByAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByCurrentQuestionIndex orders the results by the current_question_index field.
func ByCurrentQuestionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentQuestionIndex, opts...).ToFunc()
}

// ByMcPhaseComplete orders the results by the mc_phase_complete field.
func ByMcPhaseComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMcPhaseComplete, opts...).ToFunc()
}

// ByTrack orders the results by the track field.
func ByTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrack, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
