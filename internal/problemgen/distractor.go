package problemgen

import "math/rand/v2"

// Distractors builds plausible wrong answers for multiple-choice questions.
type Distractors struct {
	rng *rand.Rand
}

// NewDistractors returns a Distractors drawing from rng.
func NewDistractors(rng *rand.Rand) *Distractors {
	return &Distractors{rng: rng}
}

// Close returns answer +/- 1 or 2, clamped at zero. When clamping lands on
// the answer itself (answer 0), the positive offset is used instead.
func (d *Distractors) Close(answer int) int {
	delta := 1 + d.rng.IntN(2)
	c := answer + delta
	if d.rng.IntN(2) == 0 {
		c = answer - delta
	}
	if c < 0 {
		c = 0
	}
	if c == answer {
		c = answer + delta
	}
	return c
}

// Far returns answer +/- 5..14. A negative result becomes answer + 10.
func (d *Distractors) Far(answer int) int {
	delta := 5 + d.rng.IntN(10)
	f := answer + delta
	if d.rng.IntN(2) == 0 {
		f = answer - delta
	}
	if f < 0 {
		f = answer + 10
	}
	return f
}

// TwoOptions returns the answer and one far distractor, shuffled.
func (d *Distractors) TwoOptions(answer int) []int {
	return d.shuffle([]int{answer, d.Far(answer)})
}

// ThreeOptions returns the answer, a close and a far distractor, shuffled.
func (d *Distractors) ThreeOptions(answer int) []int {
	return d.shuffle([]int{answer, d.Close(answer), d.Far(answer)})
}

func (d *Distractors) shuffle(opts []int) []int {
	d.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
