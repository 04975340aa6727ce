package stats

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/report"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/store"
)

type fakeSource struct {
	history  map[facts.Key]store.ProblemStats
	lifetime store.LifetimeStats
	mode     facts.PracticeMode
	err      error
}

func (f *fakeSource) History(context.Context) (map[facts.Key]store.ProblemStats, error) {
	return f.history, f.err
}

func (f *fakeSource) Lifetime(context.Context) (store.LifetimeStats, error) {
	return f.lifetime, nil
}

func (f *fakeSource) Mode() facts.PracticeMode { return f.mode }

func loaded(t *testing.T, src *fakeSource) *StatsScreen {
	t.Helper()
	s := New(src)
	s.Update(s.Init()())
	require.True(t, s.loaded)
	return s
}

func testSource() *fakeSource {
	return &fakeSource{
		mode: facts.ModeTables,
		history: map[facts.Key]store.ProblemStats{
			facts.NewKey(3, facts.Multiplication, 4): {Correct: 4, Wrong: 1, Attempts: 5},
		},
		lifetime: store.LifetimeStats{Total: 10, Correct: 6},
	}
}

func TestStatsScreen_LifetimeAndGrid(t *testing.T) {
	s := loaded(t, testSource())
	assert.Equal(t, 12, s.grid.Size)

	view := s.View(100, 30)
	assert.Contains(t, view, "Lifetime: 60%")
	assert.Contains(t, view, "80")
}

func TestStatsScreen_CursorDetails(t *testing.T) {
	s := loaded(t, testSource())
	for range 2 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	for range 3 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, 3, s.row)
	assert.Equal(t, 4, s.col)
	assert.Contains(t, s.View(100, 30), "3 x 4: 80%")

	for range 20 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	assert.Equal(t, 1, s.row)
}

func TestStatsScreen_SwitchMode(t *testing.T) {
	s := loaded(t, testSource())
	for range 11 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.Update(tea.KeyPressMsg{Code: 'm', Text: "m"})
	assert.Equal(t, facts.ModeSingleDigit, s.grid.Mode)
	assert.Equal(t, 9, s.grid.Size)
	assert.Equal(t, 9, s.row)
}

func TestStatsScreen_Error(t *testing.T) {
	s := loaded(t, &fakeSource{mode: facts.ModeTables, err: errors.New("boom")})
	assert.Contains(t, s.View(80, 24), "boom")
}

func TestStatsScreen_EscPops(t *testing.T) {
	s := loaded(t, testSource())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestLifetimeLine(t *testing.T) {
	assert.Equal(t, "No answers yet", LifetimeLine(store.LifetimeStats{}))
}

func TestRenderGrid_SingleDigit(t *testing.T) {
	g := report.NewGrid(nil, facts.ModeSingleDigit)
	out := RenderGrid(g, 0, 0)
	assert.Contains(t, out, "±")
	assert.Contains(t, out, "9")
}
