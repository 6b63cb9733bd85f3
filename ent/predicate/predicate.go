// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptiveSession is the predicate function for adaptivesession builders.
type AdaptiveSession func(*sql.Selector)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// AssessmentResult is the predicate function for assessmentresult builders.
type AssessmentResult func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionPool is the predicate function for questionpool builders.
type QuestionPool func(*sql.Selector)
