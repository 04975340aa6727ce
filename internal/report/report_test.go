package report

import (
	"testing"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		percent int
		want    Band
	}{
		{0, BandNoData},
		{1, BandBad},
		{49, BandBad},
		{50, BandOK},
		{79, BandOK},
		{80, BandGood},
		{100, BandGood},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, BandFor(tc.percent), "percent %d", tc.percent)
	}
}

func TestLifetimePercent(t *testing.T) {
	assert.Equal(t, 0, LifetimePercent(store.LifetimeStats{}))
	assert.Equal(t, 60, LifetimePercent(store.LifetimeStats{Total: 10, Correct: 6}))
	assert.Equal(t, 67, LifetimePercent(store.LifetimeStats{Total: 3, Correct: 2}))
	assert.Equal(t, 100, LifetimePercent(store.LifetimeStats{Total: 4, Correct: 4}))
}

func TestGridTables(t *testing.T) {
	history := map[facts.Key]store.ProblemStats{
		facts.NewKey(3, facts.Multiplication, 4): {Correct: 4, Wrong: 1, Attempts: 7},
		facts.NewKey(4, facts.Multiplication, 3): {Correct: 1, Wrong: 3},
		facts.NewKey(3, facts.Addition, 4):       {Correct: 9},
	}
	g := NewGrid(history, facts.ModeTables)
	require.Equal(t, 12, g.Size)
	require.Len(t, g.Cells, 12)
	require.Len(t, g.Cells[11], 12)

	c := g.At(3, 4)
	assert.Equal(t, uint(4), c.Correct)
	assert.Equal(t, uint(1), c.Wrong)
	assert.Equal(t, uint(5), c.Answered, "answered counts correct plus wrong")
	assert.Equal(t, 80, c.Percent)
	assert.Equal(t, BandGood, c.Band)

	rev := g.At(4, 3)
	assert.Equal(t, 25, rev.Percent, "orderings stay separate")
	assert.Equal(t, BandBad, rev.Band)

	empty := g.At(12, 12)
	assert.Zero(t, empty.Answered)
	assert.Equal(t, BandNoData, empty.Band)
}

func TestGridSingleDigit(t *testing.T) {
	history := map[facts.Key]store.ProblemStats{
		facts.NewKey(7, facts.Addition, 2):       {Correct: 2, Wrong: 1},
		facts.NewKey(7, facts.Subtraction, 2):    {Correct: 1, Wrong: 0},
		facts.NewKey(7, facts.Multiplication, 2): {Correct: 0, Wrong: 5},
	}
	g := NewGrid(history, facts.ModeSingleDigit)
	require.Equal(t, 9, g.Size)

	c := g.At(7, 2)
	assert.Equal(t, uint(3), c.Correct)
	assert.Equal(t, uint(1), c.Wrong)
	assert.Equal(t, 75, c.Percent)
	assert.Equal(t, BandOK, c.Band)
}
