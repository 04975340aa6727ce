package problemgen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/store"
	"github.com/stretchr/testify/require"
)

type fixedSettings struct {
	mode    facts.PracticeMode
	numbers []int
}

func (s fixedSettings) Mode() facts.PracticeMode { return s.mode }
func (s fixedSettings) SelectedNumbers() []int   { return s.numbers }

// memStats is an in-memory StatsStore.
type memStats struct {
	stats    map[facts.Key]store.ProblemStats
	lifetime store.LifetimeStats
}

func newMemStats() *memStats {
	return &memStats{stats: map[facts.Key]store.ProblemStats{}}
}

func (m *memStats) GetStats(_ context.Context, key facts.Key) (store.ProblemStats, error) {
	s, ok := m.stats[key]
	if !ok {
		m.stats[key] = s
	}
	return s, nil
}

func (m *memStats) SaveStats(_ context.Context, key facts.Key, s store.ProblemStats) error {
	m.stats[key] = s
	return nil
}

func (m *memStats) RecordLifetimeDelta(_ context.Context, total, correct uint) error {
	m.lifetime.Total += total
	m.lifetime.Correct += correct
	return nil
}

// newTestProgress returns an initialised store.Progress on a temp database.
func newTestProgress(t *testing.T) *store.Progress {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	p, err := store.NewProgress(ctx, s.KV(), nil)
	require.NoError(t, err)
	_, err = p.Init(ctx)
	require.NoError(t, err)
	return p
}
