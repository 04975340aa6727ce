package home

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/quiz"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screens/launch"
	"github.com/abhisek/mathfacts/internal/store"
)

func testDeps(t *testing.T) launch.Deps {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	p, err := store.NewProgress(ctx, s.KV(), nil)
	require.NoError(t, err)
	_, err = p.SetActiveUser(ctx, "ada", "Ada")
	require.NoError(t, err)

	rng := problemgen.NewSeededRand(3)
	gen := problemgen.New(p, p, rng, problemgen.DefaultConfig())
	return launch.Deps{
		Progress:  p,
		Generator: gen,
		Assembler: quiz.New(rng, gen.Distractors(), quiz.DefaultConfig()),
		Rng:       rng,
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestHomeScreen_MenuLabels(t *testing.T) {
	h := New(testDeps(t))
	assert.Equal(t, []string{"PRACTICE", "QUIZ", "CHALLENGE", "STATS", "PAST CHALLENGES", "QUIT"}, h.menuLabels)
}

func TestHomeScreen_StatusLoaded(t *testing.T) {
	d := testDeps(t)
	require.NoError(t, d.Progress.RecordLifetimeDelta(context.Background(), 10, 9))

	h := New(d)
	h.Update(h.Init()())

	assert.Equal(t, "Ada", h.user)
	assert.Equal(t, 90, h.percent)
	assert.Equal(t, uint(10), h.answered)
	assert.Equal(t, MascotCelebrating, h.mascot)
	assert.Contains(t, h.View(120, 40), "90% CORRECT")
}

func TestHomeScreen_ShortcutsPushScreens(t *testing.T) {
	tests := []struct {
		key   rune
		title string
	}{
		{'p', "Practice"},
		{'q', "Quiz"},
		{'c', "Challenge"},
		{'s', "Stats"},
		{'h', "Past Challenges"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			h := New(testDeps(t))
			_, cmd := h.Update(keyPress(tt.key))
			require.NotNil(t, cmd)
			msg, ok := cmd().(router.PushScreenMsg)
			require.True(t, ok)
			assert.Equal(t, tt.title, msg.Screen.Title())
		})
	}
}

func TestHomeScreen_EnterOnQuitQuits(t *testing.T) {
	h := New(testDeps(t))
	for range 5 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestMascotFor(t *testing.T) {
	assert.Equal(t, MascotIdle, MascotFor(0, 0))
	assert.Equal(t, MascotCelebrating, MascotFor(85, 20))
	assert.Equal(t, MascotIdle, MascotFor(65, 20))
	assert.Equal(t, MascotAlert, MascotFor(30, 20))
}

func TestHomeScreen_CompactView(t *testing.T) {
	h := New(testDeps(t))
	assert.Contains(t, h.View(80, 18), "QUIT")
}
