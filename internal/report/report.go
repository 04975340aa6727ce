// Package report aggregates a learner's problem history for display.
// Aggregation folds facts into (row, col) cells; the ledger itself keeps
// every ordered fact separate.
package report

import (
	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/store"
)

// Band classifies a cell's accuracy for colouring.
type Band string

const (
	BandNoData Band = "no-data"
	BandGood   Band = "good"
	BandOK     Band = "ok"
	BandBad    Band = "bad"
)

// BandFor returns the band for a rounded percentage.
func BandFor(percent int) Band {
	switch {
	case percent == 0:
		return BandNoData
	case percent >= 80:
		return BandGood
	case percent >= 50:
		return BandOK
	default:
		return BandBad
	}
}

// Cell is one (row, col) entry of the grid.
type Cell struct {
	Row      int
	Col      int
	Correct  uint
	Wrong    uint
	Answered uint
	Percent  int
	Band     Band
}

// Grid is a square accuracy table indexed from 1.
type Grid struct {
	Mode  facts.PracticeMode
	Size  int
	Cells [][]Cell
}

// At returns the cell for row, col (both 1-based).
func (g Grid) At(row, col int) Cell {
	return g.Cells[row-1][col-1]
}

// NewGrid folds history into a grid. Tables mode is 12x12 over
// multiplication; single-digit mode is 9x9 summing addition and
// subtraction for the same (row, col).
func NewGrid(history map[facts.Key]store.ProblemStats, mode facts.PracticeMode) Grid {
	size := 12
	ops := []facts.Operation{facts.Multiplication}
	if mode == facts.ModeSingleDigit {
		size = 9
		ops = []facts.Operation{facts.Addition, facts.Subtraction}
	}

	g := Grid{Mode: mode, Size: size, Cells: make([][]Cell, size)}
	for r := 1; r <= size; r++ {
		g.Cells[r-1] = make([]Cell, size)
		for c := 1; c <= size; c++ {
			cell := Cell{Row: r, Col: c}
			for _, op := range ops {
				s, ok := history[facts.NewKey(r, op, c)]
				if !ok {
					continue
				}
				cell.Correct += s.Correct
				cell.Wrong += s.Wrong
			}
			cell.Answered = cell.Correct + cell.Wrong
			cell.Percent = percent(cell.Correct, cell.Answered)
			cell.Band = BandFor(cell.Percent)
			g.Cells[r-1][c-1] = cell
		}
	}
	return g
}

// LifetimePercent is the rounded overall accuracy, 0 with no answers.
func LifetimePercent(lt store.LifetimeStats) int {
	return percent(lt.Correct, lt.Total)
}

func percent(correct, total uint) int {
	if total == 0 {
		return 0
	}
	return int((correct*100 + total/2) / total)
}
