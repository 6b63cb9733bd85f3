package poolgen

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/cozmiclearning/cozmic/internal/question"
)

func wellFormedPayload(n int) string {
	steps := make([]string, n)
	for i := range steps {
		steps[i] = fmt.Sprintf(`{
			"prompt": "What is %d + %d?",
			"type": "multiple_choice",
			"choices": ["A. %d", "B. %d"],
			"expected": ["a"],
			"hint": "Count it out.",
			"explanation": "Add the two numbers."
		}`, i, i, i+i, i+i+1)
	}
	return fmt.Sprintf(`{"steps": [%s], "final_message": "Mission accomplished!"}`, strings.Join(steps, ","))
}

func TestParse_RoundTrip(t *testing.T) {
	res := Parse(wellFormedPayload(5), 5, "addition")
	if res.Fallback {
		t.Fatal("well-formed input must not fall back")
	}
	if len(res.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(res.Questions))
	}
	for i, q := range res.Questions {
		if len(q.Expected) == 0 {
			t.Errorf("question %d has empty expected set", i)
		}
		if q.Difficulty == "" {
			t.Errorf("question %d missing difficulty", i)
		}
		if q.Synthetic {
			t.Errorf("question %d wrongly marked synthetic", i)
		}
	}
	if res.FinalMessage != "Mission accomplished!" {
		t.Errorf("final message not carried through: %q", res.FinalMessage)
	}
}

func TestParse_FallbackTotality(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		"",
		`{"wrong": "shape"}`,
		`{"steps": "not an array"}`,
		`{"steps": []}`,
		`{"steps": [{"prompt": ""}]}`,
	} {
		res := Parse(raw, 7, "fractions")
		if !res.Fallback {
			t.Errorf("%q: expected fallback", raw)
			continue
		}
		if len(res.Questions) != 7 {
			t.Errorf("%q: expected exactly 7 synthetic questions, got %d", raw, len(res.Questions))
		}
		for _, q := range res.Questions {
			if !q.Synthetic {
				t.Errorf("%q: fallback question not marked synthetic", raw)
			}
			if len(q.Expected) == 0 {
				t.Errorf("%q: fallback question has empty expected set", raw)
			}
		}
	}
}

func TestParse_PartialHarvestNotPadded(t *testing.T) {
	// Two usable steps out of a requested five; the shortfall stays.
	raw := `{"steps": [
		{"prompt": "First?", "type": "free", "expected": ["one"]},
		{"prompt": ""},
		{"prompt": "Second?", "type": "free", "expected": ["two"]}
	]}`
	res := Parse(raw, 5, "counting")
	if res.Fallback {
		t.Fatal("partial harvest must not fall back")
	}
	if len(res.Questions) != 2 {
		t.Errorf("expected 2 questions without padding, got %d", len(res.Questions))
	}
}

func TestParse_StripsMarkdownFence(t *testing.T) {
	raw := "```json\n" + wellFormedPayload(2) + "\n```"
	res := Parse(raw, 2, "addition")
	if res.Fallback || len(res.Questions) != 2 {
		t.Errorf("fenced payload not recovered: fallback=%t n=%d", res.Fallback, len(res.Questions))
	}
}

func TestParse_ExpectedRemap(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		want     []string
	}{
		{"label kept", `["b"]`, []string{"b"}},
		{"answer text remapped to label", `["paris"]`, []string{"b"}},
		{"scalar coerced then remapped", `"Paris"`, []string{"b"}},
		{"unmatched defaults to first label", `["berlin"]`, []string{"a"}},
		{"missing defaults to first label", `[]`, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := fmt.Sprintf(`{"steps": [{
				"prompt": "Capital of France?",
				"type": "multiple_choice",
				"choices": ["A. London", "B. Paris"],
				"expected": %s
			}]}`, tt.expected)
			res := Parse(raw, 1, "geography")
			if res.Fallback || len(res.Questions) != 1 {
				t.Fatalf("parse failed: %+v", res)
			}
			got := res.Questions[0].Expected
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestParse_CoercesStepFields(t *testing.T) {
	raw := `{"steps": [
		{"prompt": "Odd type?", "type": "essay", "choices": ["A. x"], "expected": ["yes"]},
		{"prompt": "Choiceless MC?", "type": "multiple_choice", "choices": [], "expected": ["yes"]},
		{"prompt": "Bad choices?", "type": "multiple_choice", "choices": 42, "expected": ["yes"]}
	]}`
	res := Parse(raw, 3, "misc")
	if res.Fallback {
		t.Fatal("coercible steps must not fall back")
	}
	for i, q := range res.Questions {
		if q.Kind != question.KindFree {
			t.Errorf("question %d: expected coercion to free, got %s", i, q.Kind)
		}
		if len(q.Choices) != 0 {
			t.Errorf("question %d: free question kept choices %v", i, q.Choices)
		}
	}
}

func TestParse_AttachesDefaults(t *testing.T) {
	raw := `{"steps": [{"prompt": "No support fields?", "type": "free", "expected": ["x"]}]}`
	res := Parse(raw, 1, "misc")
	q := res.Questions[0]
	if q.Hint != defaultHint {
		t.Errorf("expected default hint, got %q", q.Hint)
	}
	if q.Explanation != defaultExplanation {
		t.Errorf("expected default explanation, got %q", q.Explanation)
	}
	if res.FinalMessage != defaultFinalMessage {
		t.Errorf("expected default final message, got %q", res.FinalMessage)
	}
}

func TestParse_NormalizesExpected(t *testing.T) {
	raw := `{"steps": [{"prompt": "Normalize?", "type": "free", "expected": ["  YES  ", "", "No"]}]}`
	res := Parse(raw, 1, "misc")
	got := res.Questions[0].Expected
	if len(got) != 2 || got[0] != "yes" || got[1] != "no" {
		t.Errorf("expected [yes no], got %v", got)
	}
}

func TestCoerceStrings(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`["a", "b"]`, 2},
		{`"solo"`, 1},
		{`3`, 1},
		{`["", "  "]`, 0},
		{`{"not": "a list"}`, 0},
	}
	for _, tt := range tests {
		got := coerceStrings(json.RawMessage(tt.raw))
		if len(got) != tt.want {
			t.Errorf("coerceStrings(%s) = %v, want %d items", tt.raw, got, tt.want)
		}
	}
}
