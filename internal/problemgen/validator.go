package problemgen

import (
	"fmt"

	"github.com/abhisek/mathfacts/internal/facts"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the arithmetic and presentation checks.
func DefaultValidators() []Validator {
	return []Validator{&ArithmeticValidator{}, &PresentationValidator{}}
}

// Validate runs validators in order and returns the first failure.
func Validate(q *Question, validators []Validator) error {
	for _, v := range validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

// ArithmeticValidator recomputes the answer and key.
type ArithmeticValidator struct{}

func (v *ArithmeticValidator) Name() string { return "arithmetic" }

func (v *ArithmeticValidator) Validate(q *Question) *ValidationError {
	if !q.Operation.Valid() {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown operation %q", q.Operation)}
	}
	if want := facts.Apply(q.A, q.Operation, q.B); q.Answer != want {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("%s: answer %d, computed %d", q.Text(), q.Answer, want)}
	}
	if q.Answer < 0 {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("%s: negative answer", q.Text())}
	}
	if want := facts.NewKey(q.A, q.Operation, q.B); q.Key != want {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("key %q, want %q", q.Key, want)}
	}
	return nil
}

// PresentationValidator checks mode, options and placeholder agree.
type PresentationValidator struct{}

func (v *PresentationValidator) Name() string { return "presentation" }

func (v *PresentationValidator) Validate(q *Question) *ValidationError {
	switch q.Mode {
	case ModeTyped:
		if len(q.Options) != 0 {
			return &ValidationError{Validator: v.Name(), Message: "typed question carries options"}
		}
	case ModeMultipleChoice:
		if q.Placeholder != "" {
			return &ValidationError{Validator: v.Name(), Message: "multiple-choice question carries a placeholder"}
		}
		if n := len(q.Options); n != 2 && n != 3 {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("%d options, want 2 or 3", n)}
		}
		hits := 0
		for _, o := range q.Options {
			if o < 0 {
				return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("negative option %d", o)}
			}
			if o == q.Answer {
				hits++
			}
		}
		if hits != 1 {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("answer appears %d times in options", hits)}
		}
	default:
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown mode %q", q.Mode)}
	}
	return nil
}
