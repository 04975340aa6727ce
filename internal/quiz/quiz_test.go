package quiz

import (
	"testing"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssembler(seed uint64) *Assembler {
	return New(problemgen.NewSeededRand(seed), nil, DefaultConfig())
}

func TestSequentialSingleTable(t *testing.T) {
	qs := newTestAssembler(1).Sequential([]int{3}, 12, problemgen.ModeTyped, facts.Multiplication, false)
	require.Len(t, qs, 12)

	for i, q := range qs {
		assert.Equal(t, 3, q.A)
		assert.Equal(t, i+1, q.B)
		assert.Equal(t, 3*(i+1), q.Answer)
		assert.Equal(t, facts.NewKey(3, facts.Multiplication, i+1), q.Key)
		assert.Equal(t, problemgen.MinFirst, q.Orientation)
		assert.Equal(t, problemgen.ModeTyped, q.Mode)
		assert.Empty(t, q.Options)
	}
}

func TestSequentialTableOrder(t *testing.T) {
	qs := newTestAssembler(2).Sequential([]int{7, 2}, 30, problemgen.ModeTyped, facts.Multiplication, false)
	require.Len(t, qs, 24, "enumeration shorter than total is returned whole")

	assert.Equal(t, "7 x 1", qs[0].Text())
	assert.Equal(t, "7 x 12", qs[11].Text())
	assert.Equal(t, "2 x 1", qs[12].Text())
	assert.Equal(t, "2 x 12", qs[23].Text())
}

func TestSequentialTruncates(t *testing.T) {
	a := newTestAssembler(3)
	qs := a.Sequential([]int{5, 6}, 14, problemgen.ModeTyped, facts.Multiplication, false)
	require.Len(t, qs, 14)
	assert.Equal(t, "6 x 2", qs[13].Text())

	assert.Empty(t, a.Sequential([]int{5}, 0, problemgen.ModeTyped, facts.Multiplication, false))
	assert.Empty(t, a.Sequential([]int{5}, -3, problemgen.ModeTyped, facts.Multiplication, false))
}

func TestSequentialReverse(t *testing.T) {
	qs := newTestAssembler(4).Sequential([]int{4}, 12, problemgen.ModeTyped, facts.Multiplication, true)
	require.Len(t, qs, 12)
	for i, q := range qs {
		assert.Equal(t, i+1, q.A)
		assert.Equal(t, 4, q.B)
		assert.Equal(t, 4*(i+1), q.Answer)
		assert.Equal(t, facts.NewKey(i+1, facts.Multiplication, 4), q.Key)
		assert.Equal(t, problemgen.MaxFirst, q.Orientation)
	}
}

func TestSequentialAddition(t *testing.T) {
	qs := newTestAssembler(5).Sequential(nil, 1000, problemgen.ModeTyped, facts.Addition, false)
	require.Len(t, qs, 144)
	assert.Equal(t, "1 + 1", qs[0].Text())
	assert.Equal(t, "1 + 12", qs[11].Text())
	assert.Equal(t, "2 + 1", qs[12].Text())
	assert.Equal(t, "12 + 12", qs[143].Text())
}

func TestSequentialSubtractionSkipsNegatives(t *testing.T) {
	a := newTestAssembler(6)
	for _, reverse := range []bool{false, true} {
		qs := a.Sequential(nil, 1000, problemgen.ModeTyped, facts.Subtraction, reverse)
		require.Len(t, qs, 78, "12*13/2 non-negative pairs")
		assert.Equal(t, "1 - 1", qs[0].Text())
		assert.Equal(t, "2 - 1", qs[1].Text())
		for _, q := range qs {
			assert.GreaterOrEqual(t, q.A, q.B)
			assert.Equal(t, q.A-q.B, q.Answer)
			assert.GreaterOrEqual(t, q.Answer, 0)
		}
	}
}

func TestSequentialMultipleChoice(t *testing.T) {
	qs := newTestAssembler(7).Sequential([]int{9}, 12, problemgen.ModeMultipleChoice, facts.Multiplication, false)
	for _, q := range qs {
		require.Len(t, q.Options, 3)
		assert.NoError(t, problemgen.Validate(&q, problemgen.DefaultValidators()))
	}
}

func TestRandomSingleTable(t *testing.T) {
	qs := newTestAssembler(8).Random([]int{7}, 5, problemgen.ModeTyped, facts.Multiplication)
	require.Len(t, qs, 5)
	for _, q := range qs {
		assert.Equal(t, 7, q.A)
		assert.GreaterOrEqual(t, q.B, 1)
		assert.LessOrEqual(t, q.B, 10)
		assert.Equal(t, 7*q.B, q.Answer)
	}
}

func TestRandomEmptyOperandsUsesOne(t *testing.T) {
	qs := newTestAssembler(9).Random(nil, 20, problemgen.ModeTyped, facts.Multiplication)
	require.Len(t, qs, 20)
	for _, q := range qs {
		assert.Equal(t, 1, q.A)
	}
}

func TestRandomAddSub(t *testing.T) {
	a := newTestAssembler(10)
	for _, op := range []facts.Operation{facts.Addition, facts.Subtraction} {
		qs := a.Random([]int{3}, 200, problemgen.ModeMultipleChoice, op)
		require.Len(t, qs, 200)
		for _, q := range qs {
			assert.Equal(t, op, q.Operation)
			assert.GreaterOrEqual(t, q.A, 1)
			assert.LessOrEqual(t, q.A, 12)
			assert.GreaterOrEqual(t, q.B, 1)
			assert.LessOrEqual(t, q.B, 12)
			assert.Equal(t, problemgen.OrientationOf(q.A, q.B), q.Orientation)
			require.Len(t, q.Options, 3)
			assert.NoError(t, problemgen.Validate(&q, problemgen.DefaultValidators()))
		}
	}
}

func TestRandomZeroCount(t *testing.T) {
	assert.Empty(t, newTestAssembler(11).Random([]int{2}, 0, problemgen.ModeTyped, facts.Multiplication))
}

func TestBuildDispatches(t *testing.T) {
	a := newTestAssembler(12)
	seq := a.Build(Options{Style: StyleSequential, Operands: []int{2}, Count: 3, Mode: problemgen.ModeTyped, Operation: facts.Multiplication})
	require.Len(t, seq, 3)
	assert.Equal(t, "2 x 3", seq[2].Text())

	rnd := a.Build(Options{Style: StyleRandom, Operands: []int{2}, Count: 4, Mode: problemgen.ModeTyped, Operation: facts.Multiplication})
	assert.Len(t, rnd, 4)
}

func TestParseStyle(t *testing.T) {
	s, ok := ParseStyle("sequential")
	assert.True(t, ok)
	assert.Equal(t, StyleSequential, s)
	_, ok = ParseStyle("shuffled")
	assert.False(t, ok)
}
