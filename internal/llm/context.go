package llm

import "context"

// Purpose labels stamped onto LLM request events so usage can be
// broken down by what the tokens were spent on. Free-form strings;
// these are the labels the engine itself emits.
const (
	// PurposePoolGen marks question-pool generation requests.
	PurposePoolGen = "pool-gen"

	// purposeUntagged is recorded when a caller never labeled the
	// context.
	purposeUntagged = "untagged"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return purposeUntagged
}
