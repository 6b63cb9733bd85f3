package store

import (
	"context"
	"time"

	"github.com/cozmiclearning/cozmic/internal/adaptive"
	"github.com/cozmiclearning/cozmic/internal/question"
)

// SessionRepo persists per-(student, assignment) adaptive session
// state. It satisfies adaptive.SessionStore: Save is a compare-and-swap
// on the state's version and returns adaptive.ErrVersionConflict when
// the row moved underneath the caller.
type SessionRepo interface {
	// Get returns the session for the pair, or nil if none exists yet.
	Get(ctx context.Context, studentID, assignmentID string) (*adaptive.State, error)

	// Create inserts a fresh session. Fails if one already exists.
	Create(ctx context.Context, st *adaptive.State) error

	// Save writes st back conditioned on st.Version matching the stored
	// row, bumping the version on success.
	Save(ctx context.Context, st *adaptive.State) error
}

// PoolRepo persists generated question pools. Pools are immutable;
// there is no update operation.
type PoolRepo interface {
	Save(ctx context.Context, pool *question.Pool) error
	Get(ctx context.Context, poolID string) (*question.Pool, error)
}

// AssessmentRepo records assessment scores and serves the rolling
// window the ability classifier reads.
type AssessmentRepo interface {
	Record(ctx context.Context, studentID string, scorePercent float64, at time.Time) error

	// RecentScores returns up to limit scores for the student, most
	// recent first. Rows with a missing score yield 0.
	RecentScores(ctx context.Context, studentID string, limit int) ([]float64, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageSummary aggregates the LLM event log for the stats command.
type LLMUsageSummary struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	ByModel      map[string]TokenCount
}

// TokenCount is per-model token usage.
type TokenCount struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// AnswerEventData captures one accepted answer submission for the
// audit log.
type AnswerEventData struct {
	StudentID       string
	AssignmentID    string
	Phase           string
	QuestionIndex   int
	QuestionPrompt  string
	SubmittedAnswer string
	Correct         bool
	Kind            string
}

// EventRepo provides append access to the event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAnswer records an accepted answer submission.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// LLMUsage summarizes the LLM request log.
	LLMUsage(ctx context.Context) (*LLMUsageSummary, error)
}
