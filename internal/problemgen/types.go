package problemgen

import (
	"github.com/abhisek/mathfacts/internal/facts"
)

// Mode describes how the learner answers a question.
type Mode string

const (
	// ModeTyped means the learner types the numeric answer.
	ModeTyped Mode = "typed"

	// ModeMultipleChoice means the learner picks one of Options.
	ModeMultipleChoice Mode = "multiple-choice"
)

// ParseMode accepts "typed", "mc" or "multiple-choice".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "typed":
		return ModeTyped, true
	case "mc", "multiple-choice":
		return ModeMultipleChoice, true
	}
	return "", false
}

// Orientation records whether the smaller or larger operand is shown first.
type Orientation string

const (
	MinFirst Orientation = "min-first"
	MaxFirst Orientation = "max-first"
)

// OrientationOf returns MinFirst when a <= b, MaxFirst otherwise.
func OrientationOf(a, b int) Orientation {
	if a <= b {
		return MinFirst
	}
	return MaxFirst
}

// Question is a single fact ready for presentation. Treat it as immutable.
type Question struct {
	// A and B are the operands in presentation order.
	A int
	B int

	Operation facts.Operation

	// Answer is Operation applied to (A, B).
	Answer int

	Mode Mode

	// Options is set only for ModeMultipleChoice. It holds the answer
	// exactly once plus one or two distractors, in random order.
	Options []int

	// Placeholder pre-fills a typed answer on the first-ever attempt.
	Placeholder string

	// Key identifies the fact in the learner's history.
	Key facts.Key

	Orientation Orientation
}

// Text renders the question prompt, e.g. "7 x 8".
func (q *Question) Text() string {
	return facts.Text(q.A, q.Operation, q.B)
}

// newQuestion builds the arithmetic part of a question.
func newQuestion(a int, op facts.Operation, b int) Question {
	return Question{
		A:           a,
		B:           b,
		Operation:   op,
		Answer:      facts.Apply(a, op, b),
		Mode:        ModeTyped,
		Key:         facts.NewKey(a, op, b),
		Orientation: OrientationOf(a, b),
	}
}

// NewQuestion builds a question for a op b presented in mode. For
// ModeMultipleChoice the three-option set from d is attached.
func NewQuestion(a int, op facts.Operation, b int, mode Mode, d *Distractors) Question {
	q := newQuestion(a, op, b)
	q.Mode = mode
	if mode == ModeMultipleChoice {
		q.Options = d.ThreeOptions(q.Answer)
	}
	return q
}
