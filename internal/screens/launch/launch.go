// Package launch builds the top-level screens from the engine
// collaborators, so the home menu and the CLI open them the same way.
package launch

import (
	"math/rand/v2"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/logging"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/quiz"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/screens/history"
	"github.com/abhisek/mathfacts/internal/screens/practice"
	quizscreen "github.com/abhisek/mathfacts/internal/screens/quiz"
	"github.com/abhisek/mathfacts/internal/screens/stats"
	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/store"
)

// DefaultQuizLength is the question count of a quiz opened from the menu.
const DefaultQuizLength = 20

// Deps are the collaborators shared by every screen.
type Deps struct {
	Progress  *store.Progress
	Generator *problemgen.Generator
	Assembler *quiz.Assembler
	// Rng belongs to the engine. Generator.Next runs on command
	// goroutines, so screens draw feedback from their own generators.
	Rng       *rand.Rand
	Log       *logging.Logger
}

// Practice opens the adaptive drill.
func (d Deps) Practice() screen.Screen {
	return practice.New(d.Generator, problemgen.NewRand(), d.Log)
}

// Quiz assembles a batch from opts and opens it.
func (d Deps) Quiz(opts quiz.Options, repeatIncorrect bool) screen.Screen {
	questions := d.Assembler.Build(opts)
	d.logger().Info("quiz started", "style", opts.Style, "op", opts.Operation, "count", len(questions))
	runner := session.NewRunner(questions, repeatIncorrect, d.Generator)
	return quizscreen.New(runner, "Quiz", problemgen.NewRand(), d.Log)
}

// Challenge assembles a random batch for c and opens it as a challenge.
func (d Deps) Challenge(c session.Challenge, repeatIncorrect bool) screen.Screen {
	questions := d.Assembler.Random(c.Tables, c.Total, c.Mode, c.Operation)
	d.logger().Info("challenge started", "tables", c.Tables, "op", c.Operation, "total", c.Total, "required", c.Required)
	runner := session.NewChallengeRunner(questions, repeatIncorrect, d.Generator, c, d.Progress)
	return quizscreen.New(runner, "Challenge", problemgen.NewRand(), d.Log)
}

// Stats opens the lifetime and grid view.
func (d Deps) Stats() screen.Screen {
	return stats.New(d.Progress)
}

// History opens the past challenges list.
func (d Deps) History() screen.Screen {
	return history.New(d.Progress)
}

// DefaultQuiz is a random multiple-choice multiplication quiz over the
// user's selected numbers.
func (d Deps) DefaultQuiz() quiz.Options {
	return quiz.Options{
		Style:     quiz.StyleRandom,
		Operands:  d.Progress.SelectedNumbers(),
		Count:     DefaultQuizLength,
		Mode:      problemgen.ModeMultipleChoice,
		Operation: facts.Multiplication,
	}
}

// DefaultChallenge is session.DefaultChallenge over the user's selected
// numbers.
func (d Deps) DefaultChallenge() session.Challenge {
	c := session.DefaultChallenge()
	c.Tables = d.Progress.SelectedNumbers()
	return c
}

func (d Deps) logger() *logging.Logger {
	if d.Log == nil {
		return logging.Nop()
	}
	return d.Log
}
