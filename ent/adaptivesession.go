// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cozmiclearning/cozmic/ent/adaptivesession"
	"github.com/cozmiclearning/cozmic/ent/schema"
)

// AdaptiveSession is the model entity for the AdaptiveSession schema.
type AdaptiveSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID string `json:"assignment_id,omitempty"`
	// not_started, mc_phase, mastery_phase, or complete; forward-only
	Phase string `json:"phase,omitempty"`
	// Index into the current phase's pool; monotone within a phase
	CurrentQuestionIndex int `json:"current_question_index,omitempty"`
	// Latches true once the diagnostic phase ends; never reverts
	McPhaseComplete bool `json:"mc_phase_complete,omitempty"`
	// remediation or enrichment once bound; empty before branching
	Track string `json:"track,omitempty"`
	// AnswerLog holds the value of the "answer_log" field.
	AnswerLog []schema.AnswerLogEntry `json:"answer_log,omitempty"`
	// Optimistic concurrency token; bumped on every write
	Version int64 `json:"version,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptiveSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptivesession.FieldAnswerLog:
			values[i] = new([]byte)
		case adaptivesession.FieldMcPhaseComplete:
			values[i] = new(sql.NullBool)
		case adaptivesession.FieldID, adaptivesession.FieldCurrentQuestionIndex, adaptivesession.FieldVersion:
			values[i] = new(sql.NullInt64)
		case adaptivesession.FieldStudentID, adaptivesession.FieldAssignmentID, adaptivesession.FieldPhase, adaptivesession.FieldTrack:
			values[i] = new(sql.NullString)
		case adaptivesession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptiveSession fields.
func (_m *AdaptiveSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptivesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptivesession.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case adaptivesession.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = value.String
			}
		case adaptivesession.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case adaptivesession.FieldCurrentQuestionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_question_index", values[i])
			} else if value.Valid {
				_m.CurrentQuestionIndex = int(value.Int64)
			}
		case adaptivesession.FieldMcPhaseComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mc_phase_complete", values[i])
			} else if value.Valid {
				_m.McPhaseComplete = value.Bool
			}
		case adaptivesession.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case adaptivesession.FieldAnswerLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answer_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnswerLog); err != nil {
					return fmt.Errorf("unmarshal field answer_log: %w", err)
				}
			}
		case adaptivesession.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case adaptivesession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptiveSession.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptiveSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptiveSession.
// Note that you need to call AdaptiveSession.Unwrap() before calling this method if this AdaptiveSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptiveSession) Update() *AdaptiveSessionUpdateOne {
	return NewAdaptiveSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptiveSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptiveSession) Unwrap() *AdaptiveSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptiveSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptiveSession) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptiveSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(_m.AssignmentID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("current_question_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentQuestionIndex))
	builder.WriteString(", ")
	builder.WriteString("mc_phase_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.McPhaseComplete))
	builder.WriteString(", ")
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("answer_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerLog))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdaptiveSessions is a parsable slice of AdaptiveSession.
type AdaptiveSessions []*AdaptiveSession
