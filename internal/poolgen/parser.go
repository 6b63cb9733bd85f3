package poolgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cozmiclearning/cozmic/internal/question"
)

// Fixed defaults attached when the generator omits support fields.
const (
	defaultHint         = "Think carefully."
	defaultExplanation  = "Let's walk through it together."
	defaultFinalMessage = "Mission complete! Great work."
)

// ParseResult is the outcome of interpreting generator output. A
// Fallback result carries synthetic questions and is otherwise
// indistinguishable downstream; callers never special-case it.
type ParseResult struct {
	Questions    []question.Question
	FinalMessage string
	Fallback     bool
}

// poolPayload mirrors the structure the generator is asked to return.
// Fields stay raw so one malformed step cannot sink the whole payload.
type poolPayload struct {
	Steps        []json.RawMessage `json:"steps"`
	FinalMessage json.RawMessage   `json:"final_message"`
}

type stepPayload struct {
	Prompt      string          `json:"prompt"`
	Type        string          `json:"type"`
	Choices     json.RawMessage `json:"choices"`
	Expected    json.RawMessage `json:"expected"`
	Hint        string          `json:"hint"`
	Explanation string          `json:"explanation"`
}

// Parse interprets raw generator text as a question set. Unparseable
// text, a payload failing the envelope schema, or a payload yielding
// zero usable steps all fall through to full synthetic fallback of
// exactly requested questions; the result is never empty and Parse
// never fails. A partial harvest is returned as-is, not padded.
func Parse(raw string, requested int, topic string) ParseResult {
	text := extractJSON(raw)

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return fallback(topic, requested)
	}
	if !wellFormed(doc) {
		return fallback(topic, requested)
	}

	var payload poolPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return fallback(topic, requested)
	}

	var questions []question.Question
	for _, rawStep := range payload.Steps {
		if q, ok := parseStep(rawStep); ok {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return fallback(topic, requested)
	}

	final := firstString(coerceStrings(payload.FinalMessage))
	if final == "" {
		final = defaultFinalMessage
	}

	return ParseResult{Questions: questions, FinalMessage: final}
}

// parseStep coerces one raw step into a Question. Steps with no usable
// prompt are dropped.
func parseStep(raw json.RawMessage) (question.Question, bool) {
	var step stepPayload
	if err := json.Unmarshal(raw, &step); err != nil {
		return question.Question{}, false
	}

	prompt := strings.TrimSpace(step.Prompt)
	if prompt == "" {
		return question.Question{}, false
	}

	kind := question.KindFree
	if step.Type == string(question.KindMultipleChoice) {
		kind = question.KindMultipleChoice
	}

	var choices []string
	if kind == question.KindMultipleChoice {
		choices = coerceStringArray(step.Choices)
		if len(choices) == 0 {
			// A choiceless multiple-choice question cannot be answered
			// by label; serve it as free response instead.
			kind = question.KindFree
		}
	}

	expected := normalizeExpected(coerceStrings(step.Expected))
	if kind == question.KindMultipleChoice {
		expected = remapExpected(expected, choices)
	}
	if len(expected) == 0 {
		expected = []string{question.ExpectedAny}
	}

	hint := strings.TrimSpace(step.Hint)
	if hint == "" {
		hint = defaultHint
	}
	explanation := strings.TrimSpace(step.Explanation)
	if explanation == "" {
		explanation = defaultExplanation
	}

	q := question.Question{
		Prompt:      prompt,
		Kind:        kind,
		Choices:     choices,
		Expected:    expected,
		Hint:        hint,
		Explanation: explanation,
		Status:      question.StatusUnanswered,
	}
	q.Difficulty = question.Estimate(&q)
	return q, true
}

// remapExpected maps declared expected answers onto the choice label
// set: a direct label match is kept, otherwise the answer text is
// matched case-insensitively against choice text and remapped to that
// choice's label. When nothing matches, the first labeled choice wins.
func remapExpected(expected, choices []string) []string {
	labels := make([]string, len(choices))
	labelSet := make(map[string]bool, len(choices))
	for i, ch := range choices {
		labels[i] = question.ChoiceLabel(ch)
		if labels[i] != "" {
			labelSet[labels[i]] = true
		}
	}

	var corrected []string
	for _, exp := range expected {
		if len(exp) == 1 && labelSet[exp] {
			corrected = append(corrected, exp)
			continue
		}
		for i, ch := range choices {
			if labels[i] != "" && strings.Contains(strings.ToLower(ch), exp) {
				corrected = append(corrected, labels[i])
				break
			}
		}
	}

	if len(corrected) == 0 {
		if labels[0] != "" {
			return []string{labels[0]}
		}
		return []string{"a"}
	}
	return corrected
}

// extractJSON cuts the candidate JSON object out of raw generator
// text, tolerating markdown fences and prose around the object.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}

// coerceStrings accepts an array, a scalar, or garbage and returns the
// string forms, dropping empties.
func coerceStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		var single any
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		list = []any{single}
	}
	return stringifyAll(list)
}

// coerceStringArray accepts only a JSON array. Scalars are not
// promoted: a choice list must really be a list.
func coerceStringArray(raw json.RawMessage) []string {
	var list []any
	if len(raw) == 0 || json.Unmarshal(raw, &list) != nil {
		return nil
	}
	return stringifyAll(list)
}

func stringifyAll(list []any) []string {
	var out []string
	for _, v := range list {
		if s := strings.TrimSpace(stringify(v)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func normalizeExpected(vals []string) []string {
	var out []string
	for _, v := range vals {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstString(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// fallback synthesizes a full pool of generic free-response questions.
// The Synthetic flag keeps them auditable; students see ordinary
// questions.
func fallback(topic string, requested int) ParseResult {
	if requested < 1 {
		requested = 1
	}
	if topic == "" {
		topic = "the last skill you reviewed"
	}

	qs := make([]question.Question, requested)
	for i := range qs {
		q := question.Question{
			Prompt:      fmt.Sprintf("Check-in %d: tell me one thing you know about %s.", i+1, topic),
			Kind:        question.KindFree,
			Expected:    []string{question.ExpectedAny},
			Hint:        "Anything related works.",
			Explanation: "Just share any detail you remember.",
			Status:      question.StatusUnanswered,
			Synthetic:   true,
		}
		q.Difficulty = question.Estimate(&q)
		qs[i] = q
	}

	return ParseResult{
		Questions:    qs,
		FinalMessage: "Great work finishing this warm-up mission!",
		Fallback:     true,
	}
}
