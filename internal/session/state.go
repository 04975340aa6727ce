package session

import (
	"github.com/abhisek/mathfacts/internal/problemgen"
)

// Result is the outcome recorded for one question slot.
type Result int

const (
	Pending Result = iota
	Correct
	Incorrect
)

func (r Result) String() string {
	switch r {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	}
	return "pending"
}

// State is the runtime state of a fixed-length session. Transitions are
// pure: Record returns the next State and leaves its input untouched.
type State struct {
	// Questions is the batch being worked through.
	Questions []problemgen.Question

	// Index is the question currently presented.
	Index int

	// Results holds the latest outcome per question index.
	Results []Result

	// CorrectCount counts correct submissions.
	CorrectCount int

	// Answered counts every submission, including repeats.
	Answered int

	// RepeatIncorrect keeps the index on a wrong answer.
	RepeatIncorrect bool

	// Done is set once the index moves past the last question.
	Done bool
}

// New returns the initial state for questions.
func New(questions []problemgen.Question, repeatIncorrect bool) State {
	return State{
		Questions:       questions,
		Results:         make([]Result, len(questions)),
		RepeatIncorrect: repeatIncorrect,
		Done:            len(questions) == 0,
	}
}

// Current returns the question at the index, or false when done.
func Current(s State) (*problemgen.Question, bool) {
	if s.Done || s.Index < 0 || s.Index >= len(s.Questions) {
		return nil, false
	}
	q := s.Questions[s.Index]
	return &q, true
}

// Record applies an answer to the current question.
func Record(s State, correct bool) State {
	if s.Done {
		return s
	}
	next := s
	next.Results = append([]Result(nil), s.Results...)
	next.Answered++

	if correct {
		next.Results[s.Index] = Correct
		next.CorrectCount++
	} else {
		next.Results[s.Index] = Incorrect
		if s.RepeatIncorrect {
			return next
		}
	}

	next.Index++
	if next.Index >= len(next.Questions) {
		next.Done = true
	}
	return next
}

// Remaining is the number of questions not yet passed.
func Remaining(s State) int {
	if s.Done {
		return 0
	}
	return len(s.Questions) - s.Index
}

// Accuracy is the rounded percentage of correct submissions.
func Accuracy(s State) int {
	if s.Answered == 0 {
		return 0
	}
	return (s.CorrectCount*100 + s.Answered/2) / s.Answered
}
