package problemgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/store"
)

// Settings exposes the practice configuration the generator reads.
type Settings interface {
	Mode() facts.PracticeMode
	SelectedNumbers() []int
}

// StatsStore is the slice of the progress ledger the generator writes.
type StatsStore interface {
	GetStats(ctx context.Context, key facts.Key) (store.ProblemStats, error)
	SaveStats(ctx context.Context, key facts.Key, stats store.ProblemStats) error
	RecordLifetimeDelta(ctx context.Context, total, correct uint) error
}

// Recorder records the outcome of an answered question.
type Recorder interface {
	RecordAnswer(ctx context.Context, q *Question, correct bool) error
}

// Generator produces adaptive single questions. The presentation of each
// question depends on how many times its fact has been shown.
type Generator struct {
	settings    Settings
	stats       StatsStore
	rng         *rand.Rand
	distractors *Distractors
	cfg         Config
	now         func() time.Time
}

var _ Recorder = (*Generator)(nil)

// New returns a Generator. A nil rng is replaced with NewRand().
func New(settings Settings, stats StatsStore, rng *rand.Rand, cfg Config) *Generator {
	if rng == nil {
		rng = NewRand()
	}
	return &Generator{
		settings:    settings,
		stats:       stats,
		rng:         rng,
		distractors: NewDistractors(rng),
		cfg:         cfg,
		now:         time.Now,
	}
}

// Distractors returns the distractor source shared with the generator.
func (g *Generator) Distractors() *Distractors {
	return g.distractors
}

// Next picks the next fact, bumps its attempt counter, persists it and
// returns the question in the tier matching the new attempt count.
func (g *Generator) Next(ctx context.Context) (*Question, error) {
	a, op, b := g.pickOperands()
	q := newQuestion(a, op, b)

	stats, err := g.stats.GetStats(ctx, q.Key)
	if err != nil {
		return nil, fmt.Errorf("get stats %s: %w", q.Key, err)
	}
	stats.Attempts++
	stats.LastSeenUTC = g.stamp()
	if err := g.stats.SaveStats(ctx, q.Key, stats); err != nil {
		return nil, fmt.Errorf("save stats %s: %w", q.Key, err)
	}

	g.applyTier(&q, stats.Attempts)

	if err := Validate(&q, g.cfg.Validators); err != nil {
		return nil, fmt.Errorf("generated question %s: %w", q.Text(), err)
	}
	return &q, nil
}

// RecordAnswer bumps the correct or wrong counter on q's fact and adds the
// answer to the lifetime totals. Attempts are left alone.
func (g *Generator) RecordAnswer(ctx context.Context, q *Question, correct bool) error {
	stats, err := g.stats.GetStats(ctx, q.Key)
	if err != nil {
		return fmt.Errorf("get stats %s: %w", q.Key, err)
	}
	var correctDelta uint
	if correct {
		stats.Correct++
		correctDelta = 1
	} else {
		stats.Wrong++
	}
	stats.LastSeenUTC = g.stamp()
	if err := g.stats.SaveStats(ctx, q.Key, stats); err != nil {
		return fmt.Errorf("save stats %s: %w", q.Key, err)
	}
	if err := g.stats.RecordLifetimeDelta(ctx, 1, correctDelta); err != nil {
		return fmt.Errorf("record lifetime: %w", err)
	}
	return nil
}

func (g *Generator) pickOperands() (int, facts.Operation, int) {
	if g.settings.Mode() == facts.ModeSingleDigit {
		a := 1 + g.rng.IntN(g.cfg.SingleDigitMax)
		b := 1 + g.rng.IntN(g.cfg.SingleDigitMax)
		if g.rng.IntN(2) == 0 {
			return a, facts.Addition, b
		}
		if a < b {
			a, b = b, a
		}
		return a, facts.Subtraction, b
	}

	tables := g.settings.SelectedNumbers()
	a := 1
	if len(tables) > 0 {
		a = tables[g.rng.IntN(len(tables))]
	}
	b := 1 + g.rng.IntN(g.cfg.TableMultiplierMax)
	return a, facts.Multiplication, b
}

// applyTier sets the presentation for the given attempt count.
func (g *Generator) applyTier(q *Question, attempts uint) {
	switch Tier(attempts) {
	case TierHinted:
		q.Mode = ModeTyped
		q.Placeholder = fmt.Sprint(q.Answer)
	case TierTwoChoice:
		q.Mode = ModeMultipleChoice
		q.Options = g.distractors.TwoOptions(q.Answer)
	case TierThreeChoice:
		q.Mode = ModeMultipleChoice
		q.Options = g.distractors.ThreeOptions(q.Answer)
	default:
		q.Mode = ModeTyped
	}
}

func (g *Generator) stamp() string {
	return g.now().UTC().Format(time.RFC3339)
}
