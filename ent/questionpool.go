// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cozmiclearning/cozmic/ent/questionpool"
	"github.com/cozmiclearning/cozmic/ent/schema"
)

// QuestionPool is the model entity for the QuestionPool schema.
type QuestionPool struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at build time
	PoolID string `json:"pool_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode string `json:"mode,omitempty"`
	// TargetAbility holds the value of the "target_ability" field.
	TargetAbility string `json:"target_ability,omitempty"`
	// Questions holds the value of the "questions" field.
	Questions []schema.QuestionData `json:"questions,omitempty"`
	// FinalMessage holds the value of the "final_message" field.
	FinalMessage string `json:"final_message,omitempty"`
	// True when the whole pool came from fallback synthesis
	Synthetic bool `json:"synthetic,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionPool) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionpool.FieldQuestions:
			values[i] = new([]byte)
		case questionpool.FieldSynthetic:
			values[i] = new(sql.NullBool)
		case questionpool.FieldID:
			values[i] = new(sql.NullInt64)
		case questionpool.FieldPoolID, questionpool.FieldTopic, questionpool.FieldSubject, questionpool.FieldGrade, questionpool.FieldMode, questionpool.FieldTargetAbility, questionpool.FieldFinalMessage:
			values[i] = new(sql.NullString)
		case questionpool.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionPool fields.
func (_m *QuestionPool) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionpool.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionpool.FieldPoolID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pool_id", values[i])
			} else if value.Valid {
				_m.PoolID = value.String
			}
		case questionpool.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case questionpool.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case questionpool.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case questionpool.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case questionpool.FieldTargetAbility:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_ability", values[i])
			} else if value.Valid {
				_m.TargetAbility = value.String
			}
		case questionpool.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case questionpool.FieldFinalMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_message", values[i])
			} else if value.Valid {
				_m.FinalMessage = value.String
			}
		case questionpool.FieldSynthetic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synthetic", values[i])
			} else if value.Valid {
				_m.Synthetic = value.Bool
			}
		case questionpool.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionPool.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionPool) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionPool.
// Note that you need to call QuestionPool.Unwrap() before calling this method if this QuestionPool
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionPool) Update() *QuestionPoolUpdateOne {
	return NewQuestionPoolClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionPool entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionPool) Unwrap() *QuestionPool {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionPool is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionPool) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionPool(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pool_id=")
	builder.WriteString(_m.PoolID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("target_ability=")
	builder.WriteString(_m.TargetAbility)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("final_message=")
	builder.WriteString(_m.FinalMessage)
	builder.WriteString(", ")
	builder.WriteString("synthetic=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synthetic))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionPools is a parsable slice of QuestionPool.
type QuestionPools []*QuestionPool
