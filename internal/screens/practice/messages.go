package practice

import (
	"github.com/cozmiclearning/cozmic/internal/adaptive"
	"github.com/cozmiclearning/cozmic/internal/question"
)

// assignmentReadyMsg carries the freshly built assignment, or the
// build error.
type assignmentReadyMsg struct {
	Asg  *adaptive.Assignment
	Tier question.Tier
	Err  error
}

// questionReadyMsg carries the next question to serve. A nil Question
// with nil Err means the mission completed while advancing.
type questionReadyMsg struct {
	Question *question.Question
	State    *adaptive.State
	Err      error
}

// answerGradedMsg carries the grading outcome of a submission.
type answerGradedMsg struct {
	State  *adaptive.State
	Result adaptive.Result
	Answer string
	Err    error
}

// missionCompleteMsg carries the end-of-mission summary.
type missionCompleteMsg struct {
	Summary missionSummary
	Err     error
}

// missionSummary is what the completion view renders.
type missionSummary struct {
	Total        int
	Correct      int
	Percent      float64
	Track        adaptive.Track
	FinalMessage string
}
