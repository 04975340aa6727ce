package session

import (
	"time"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/store"
)

// Challenge is a scored session with a pass mark.
type Challenge struct {
	Tables    []int
	Operation facts.Operation
	Total     int
	Required  int
	Reward    string
	Mode      problemgen.Mode
}

// DefaultChallenge returns a 20 question multiple-choice multiplication
// challenge that needs 18 correct to pass.
func DefaultChallenge() Challenge {
	return Challenge{
		Mode:      problemgen.ModeMultipleChoice,
		Operation: facts.Multiplication,
		Total:     20,
		Required:  18,
	}
}

// Passed reports whether correct meets the pass mark.
func (c Challenge) Passed(correct int) bool {
	return correct >= c.Required
}

// Summarize builds the immutable record of a finished challenge.
func Summarize(s State, c Challenge, now time.Time) store.ChallengeSummary {
	return store.ChallengeSummary{
		Date:      now.UTC().Format(time.RFC3339),
		Tables:    append([]int(nil), c.Tables...),
		Operation: c.Operation,
		Total:     c.Total,
		Required:  c.Required,
		Correct:   s.CorrectCount,
		Reward:    c.Reward,
		Success:   c.Passed(s.CorrectCount),
	}
}
