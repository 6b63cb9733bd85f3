package poolgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cozmiclearning/cozmic/internal/question"
)

const systemPromptHeader = `You are COZMICLEARNING PRACTICE MODE, a galaxy-themed tutor
guiding students through "missions" of questions.`

const userPrompt = `Generate the full JSON practice mission now.
ONLY return the JSON object. No commentary.`

// difficultyForGrade maps a grade band to the difficulty phrasing used
// in the generation brief.
func difficultyForGrade(grade string) string {
	g, err := strconv.Atoi(strings.TrimSpace(grade))
	if err != nil {
		return "medium difficulty"
	}
	switch {
	case g <= 3:
		return "very easy early-elementary difficulty"
	case g <= 6:
		return "easy to medium upper-elementary difficulty"
	case g <= 8:
		return "middle-school difficulty"
	case g <= 10:
		return "medium-hard early high-school difficulty"
	default:
		return "advanced high-school difficulty"
	}
}

// subjectFlavor maps each CozmicLearning planet to its question flavor.
var subjectFlavor = map[string]string{
	"num_forge":   "math skills, word problems, equations, percentages, and reasoning.",
	"atom_sphere": "science concepts, experiments, cause-and-effect, and reasoning steps.",
	"faith_realm": "Bible knowledge, stories, verses, and application questions.",
	"chrono_core": "history timelines, events, causes, effects, and comparisons.",
	"ink_haven":   "grammar, writing clarity, sentence improvement, and editing.",
	"truth_forge": "apologetics, reasoning, evidence, worldview logic.",
	"stock_star":  "investing scenarios, percentages, returns, and decision-making.",
	"coin_quest":  "money concepts: saving, spending, budgeting, interest, and value.",
	"terra_nova":  "general knowledge, logic puzzles, problem solving.",
	"story_verse": "reading comprehension, inference, theme, characters.",
	"power_grid":  "deep multi-step reasoning based on the topic.",
}

func flavorFor(subject string) string {
	if f, ok := subjectFlavor[subject]; ok {
		return f
	}
	return "general educational reasoning questions."
}

// abilityAdjustment shapes the brief for the student's ability tier.
func abilityAdjustment(tier question.Tier) string {
	switch tier {
	case question.TierStruggling:
		return "Use simpler language, shorter prompts, and a supportive hint on every question."
	case question.TierAdvanced:
		return "Lean into multi-step reasoning and include several genuinely challenging questions."
	default:
		return "Mix straightforward questions with a few stretch questions."
	}
}

// modeInstruction tells the generator what composition the declared
// differentiation mode expects.
func modeInstruction(mode question.Mode) string {
	switch mode {
	case question.ModeScaffold:
		return "Give nearly every question a concrete, specific hint and a worked explanation."
	case question.ModeMastery:
		return "Favor hard, free-response questions that prove the skill is mastered."
	case question.ModeGapFill:
		return "Target common gaps; most questions need a supportive hint and explanation."
	case question.ModeAdaptive:
		return "Spread difficulty from easy through hard so the set can adapt."
	case question.ModeMultipleChoiceOnly:
		return "Every question must be multiple choice."
	case question.ModeQuickAssessment:
		return "Short, crisp multiple-choice checks."
	case question.ModeDeepConceptual:
		return "Favor free-response questions that probe why, not just what."
	case question.ModeCrossTopic:
		return "Weave in connected topics the student has already seen."
	default:
		return ""
	}
}

// buildSystemPrompt assembles the generation brief for one pool.
func buildSystemPrompt(in BuildInput, count int) string {
	topic := in.Topic
	if topic == "" {
		topic = "the last skill the student reviewed"
	}

	var b strings.Builder
	b.WriteString(systemPromptHeader)
	b.WriteString("\n\nGOAL:\n")
	fmt.Fprintf(&b, "Generate a %d-question interactive practice mission:\n", count)
	b.WriteString("- Some multiple-choice questions\n")
	b.WriteString("- Some free-response questions\n")
	fmt.Fprintf(&b, "- ALL tightly focused on this skill/topic: %s\n", topic)
	fmt.Fprintf(&b, "- Subject flavor: %s\n", flavorFor(in.Subject))
	fmt.Fprintf(&b, "- Difficulty: %s\n", difficultyForGrade(in.Grade))
	fmt.Fprintf(&b, "- Ability adjustment: %s\n", abilityAdjustment(in.TargetAbility))
	if mi := modeInstruction(in.Mode); mi != "" {
		fmt.Fprintf(&b, "- Mode: %s\n", mi)
	}

	b.WriteString(`
THE EXPERIENCE:
- It should feel like a learning "mission" on a CozmicLearning planet.
- Questions should be clear, unambiguous, and age-appropriate.
- Hints should gently guide, not generic.
- Explanations should feel like a teacher walking them through it.

RETURN ONLY VALID JSON in this format:

{
  "steps": [
    {
      "prompt": "...",
      "type": "multiple_choice" OR "free",
      "choices": ["A. ...", "B. ..."],
      "expected": ["a"],
      "hint": "...",
      "explanation": "..."
    }
  ],
  "final_message": "..."
}`)

	return b.String()
}
