package question

import "strings"

// Question is a single practice item served to a student.
type Question struct {
	// Prompt is the question text shown to the student. Never empty.
	Prompt string

	// Kind indicates how the student answers this question.
	Kind Kind

	// Choices is populated only when Kind is KindMultipleChoice.
	// Each choice carries a leading letter label, e.g. "A. 3/4".
	Choices []string

	// Expected holds the accepted answers, lower-cased. For multiple
	// choice this is one or more choice letters. Never empty; the parser
	// substitutes a placeholder when the generator supplied none.
	Expected []string

	// Hint is a short nudge the student can request.
	Hint string

	// Explanation is the worked solution shown after answering.
	Explanation string

	// Difficulty is derived from the question's structure by Estimate,
	// never author-supplied.
	Difficulty Difficulty

	// Status is runtime state owned by the session layer.
	Status Status

	// Synthetic marks fallback questions synthesized when the generator
	// output could not be used. Kept for audit; students see these as
	// ordinary questions.
	Synthetic bool
}

// Kind describes how the student answers.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindFree           Kind = "free"
)

// Status tracks a question's runtime answer state.
type Status string

const (
	StatusUnanswered        Status = "unanswered"
	StatusAnsweredCorrect   Status = "answered_correct"
	StatusAnsweredIncorrect Status = "answered_incorrect"
)

// ExpectedAny is the placeholder expected value for fallback and
// open-ended free-response questions. CheckAnswer accepts any non-empty
// response when it is the sole expected value.
const ExpectedAny = "any"

// CheckAnswer compares a student's answer against the question's
// expected set. Matching is case-insensitive and ignores surrounding
// whitespace.
func CheckAnswer(answer string, q *Question) bool {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	if normalized == "" {
		return false
	}
	if len(q.Expected) == 1 && q.Expected[0] == ExpectedAny {
		return true
	}
	for _, exp := range q.Expected {
		if normalized == exp {
			return true
		}
	}
	return false
}

// ChoiceLabel extracts the letter label from a choice string: the text
// before the first "." or ")" separator, lower-cased. Returns "" when
// the choice carries no recognizable label.
func ChoiceLabel(choice string) string {
	sep := strings.IndexAny(choice, ".)")
	if sep < 0 {
		return ""
	}
	label := strings.ToLower(strings.TrimSpace(choice[:sep]))
	if len(label) != 1 || label[0] < 'a' || label[0] > 'z' {
		return ""
	}
	return label
}
