package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/store"
)

// ErrSessionDone is returned by Submit after the last question.
var ErrSessionDone = errors.New("session is done")

// ChallengeSaver persists finished challenge summaries.
type ChallengeSaver interface {
	SaveChallenge(ctx context.Context, summary store.ChallengeSummary) error
}

// Runner drives a State, recording every answer through a Recorder.
// When a challenge is attached, its summary is saved once the session
// finishes.
type Runner struct {
	state     State
	recorder  problemgen.Recorder
	challenge *Challenge
	saver     ChallengeSaver
	summary   *store.ChallengeSummary
	started   time.Time
	now       func() time.Time
}

// NewRunner returns a Runner over a plain quiz.
func NewRunner(questions []problemgen.Question, repeatIncorrect bool, recorder problemgen.Recorder) *Runner {
	return &Runner{
		state:    New(questions, repeatIncorrect),
		recorder: recorder,
		started:  time.Now(),
		now:      time.Now,
	}
}

// NewChallengeRunner returns a Runner that saves a ChallengeSummary
// through saver on completion.
func NewChallengeRunner(questions []problemgen.Question, repeatIncorrect bool, recorder problemgen.Recorder, c Challenge, saver ChallengeSaver) *Runner {
	r := NewRunner(questions, repeatIncorrect, recorder)
	r.challenge = &c
	r.saver = saver
	return r
}

// State returns the current session state.
func (r *Runner) State() State { return r.state }

// Current returns the question awaiting an answer.
func (r *Runner) Current() (*problemgen.Question, bool) { return Current(r.state) }

// Challenge returns the attached challenge, if any.
func (r *Runner) Challenge() (Challenge, bool) {
	if r.challenge == nil {
		return Challenge{}, false
	}
	return *r.challenge, true
}

// ChallengeSummary returns the saved summary once a challenge finishes.
func (r *Runner) ChallengeSummary() (store.ChallengeSummary, bool) {
	if r.summary == nil {
		return store.ChallengeSummary{}, false
	}
	return *r.summary, true
}

// Submit records the outcome for the current question and advances.
func (r *Runner) Submit(ctx context.Context, correct bool) error {
	q, ok := r.Current()
	if !ok {
		return ErrSessionDone
	}
	if err := r.recorder.RecordAnswer(ctx, q, correct); err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	r.state = Record(r.state, correct)

	if r.state.Done && r.challenge != nil && r.summary == nil {
		summary := Summarize(r.state, *r.challenge, r.now())
		if err := r.saver.SaveChallenge(ctx, summary); err != nil {
			return fmt.Errorf("save challenge: %w", err)
		}
		r.summary = &summary
	}
	return nil
}

// SubmitInput checks typed input against the current question and submits
// the result.
func (r *Runner) SubmitInput(ctx context.Context, input string) (bool, error) {
	q, ok := r.Current()
	if !ok {
		return false, ErrSessionDone
	}
	correct := problemgen.CheckAnswer(input, q)
	return correct, r.Submit(ctx, correct)
}

// SubmitChoice checks a chosen option index and submits the result.
func (r *Runner) SubmitChoice(ctx context.Context, index int) (bool, error) {
	q, ok := r.Current()
	if !ok {
		return false, ErrSessionDone
	}
	correct := problemgen.CheckChoice(index, q)
	return correct, r.Submit(ctx, correct)
}

// Summary builds the end-of-session figures.
func (r *Runner) Summary() Summary {
	return BuildSummary(r.state, r.now().Sub(r.started))
}
