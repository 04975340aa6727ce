// Package quiz assembles fixed batches of questions for scored sessions.
// Assembled questions are not recorded anywhere; callers route answers
// through a problemgen.Recorder.
package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/problemgen"
)

// Style selects how a quiz is assembled.
type Style string

const (
	StyleRandom     Style = "random"
	StyleSequential Style = "sequential"
)

// ParseStyle parses "random" or "sequential".
func ParseStyle(s string) (Style, bool) {
	switch Style(s) {
	case StyleRandom, StyleSequential:
		return Style(s), true
	}
	return "", false
}

// Assembler builds question batches.
type Assembler struct {
	rng         *rand.Rand
	distractors *problemgen.Distractors
	cfg         Config
}

// New returns an Assembler. A nil rng is replaced with problemgen.NewRand()
// and a nil distractors with one drawing from rng.
func New(rng *rand.Rand, distractors *problemgen.Distractors, cfg Config) *Assembler {
	if rng == nil {
		rng = problemgen.NewRand()
	}
	if distractors == nil {
		distractors = problemgen.NewDistractors(rng)
	}
	return &Assembler{rng: rng, distractors: distractors, cfg: cfg}
}

// Options describes a batch request.
type Options struct {
	Style     Style
	Operands  []int
	Count     int
	Mode      problemgen.Mode
	Operation facts.Operation

	// Reverse applies to StyleSequential only.
	Reverse bool
}

// Build dispatches on opts.Style.
func (a *Assembler) Build(opts Options) []problemgen.Question {
	if opts.Style == StyleSequential {
		return a.Sequential(opts.Operands, opts.Count, opts.Mode, opts.Operation, opts.Reverse)
	}
	return a.Random(opts.Operands, opts.Count, opts.Mode, opts.Operation)
}

// Random samples count independent questions. Repeats are possible.
// Multiplication draws the first operand from operands ({1} when empty)
// and the second from 1..RandomMultiplierMax; addition and subtraction
// draw both from 1..AddSubMax, swapping subtraction operands so the
// result is never negative.
func (a *Assembler) Random(operands []int, count int, mode problemgen.Mode, op facts.Operation) []problemgen.Question {
	if op == facts.Multiplication && len(operands) == 0 {
		operands = []int{1}
	}

	questions := make([]problemgen.Question, 0, max(count, 0))
	for range count {
		var x, y int
		switch op {
		case facts.Multiplication:
			x = operands[a.rng.IntN(len(operands))]
			y = 1 + a.rng.IntN(a.cfg.RandomMultiplierMax)
		default:
			x = 1 + a.rng.IntN(a.cfg.AddSubMax)
			y = 1 + a.rng.IntN(a.cfg.AddSubMax)
			if op == facts.Subtraction && x < y {
				x, y = y, x
			}
		}
		questions = append(questions, problemgen.NewQuestion(x, op, y, mode, a.distractors))
	}
	return questions
}

// Sequential enumerates facts in table order and keeps the first total.
// Multiplication walks a over operands (as given) and b over
// 1..TableMax; addition and subtraction walk 1..AddSubMax twice, skipping
// negative differences. With reverse the operands are presented b first
// and orientation is max-first; otherwise min-first. Subtraction keeps
// its operand order under reverse so the difference stays non-negative.
func (a *Assembler) Sequential(operands []int, total int, mode problemgen.Mode, op facts.Operation, reverse bool) []problemgen.Question {
	if total <= 0 {
		return []problemgen.Question{}
	}
	if op == facts.Multiplication && len(operands) == 0 {
		operands = []int{1}
	}

	var pairs [][2]int
	if op == facts.Multiplication {
		for _, x := range operands {
			for y := 1; y <= a.cfg.TableMax; y++ {
				pairs = append(pairs, [2]int{x, y})
			}
		}
	} else {
		for x := 1; x <= a.cfg.AddSubMax; x++ {
			for y := 1; y <= a.cfg.AddSubMax; y++ {
				if op == facts.Subtraction && x < y {
					continue
				}
				pairs = append(pairs, [2]int{x, y})
			}
		}
	}
	if len(pairs) > total {
		pairs = pairs[:total]
	}

	questions := make([]problemgen.Question, 0, len(pairs))
	for _, p := range pairs {
		x, y := p[0], p[1]
		orientation := problemgen.MinFirst
		if reverse {
			if op != facts.Subtraction {
				x, y = y, x
			}
			orientation = problemgen.MaxFirst
		}
		q := problemgen.NewQuestion(x, op, y, mode, a.distractors)
		q.Orientation = orientation
		questions = append(questions, q)
	}
	return questions
}
