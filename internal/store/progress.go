package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/logging"
)

// Progress is the per-user progress ledger. It keeps the decoded state in
// memory and writes the full blob through the KV on every mutation.
type Progress struct {
	mu    sync.Mutex
	kv    KV
	log   *logging.Logger
	state AppState
}

// NewProgress loads the persisted state from kv. A corrupt blob is logged
// and replaced with DefaultState. No user is created here; call Init.
func NewProgress(ctx context.Context, kv KV, log *logging.Logger) (*Progress, error) {
	if log == nil {
		log = logging.Nop()
	}
	p := &Progress{kv: kv, log: log.With("component", "progress")}
	if err := p.load(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Progress) load(ctx context.Context) error {
	raw, ok, err := p.kv.Get(ctx, StateKey)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if !ok {
		p.state = DefaultState()
		return nil
	}

	st, err := decodeState(raw)
	if err != nil {
		var corrupt *ErrCorruptState
		if !errors.As(err, &corrupt) {
			return err
		}
		p.log.Warn("discarding persisted state", "error", err, "bytes", len(raw))
		p.state = DefaultState()
		return nil
	}
	p.state = st
	return nil
}

// Init ensures a user is active. When no users exist a default one is
// created; when the current id does not resolve the first user is chosen.
// It returns the active user.
func (p *Progress) Init(ctx context.Context) (User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.state.Users) == 0 {
		u := newUser(newUserID(), "Player 1")
		p.state.Users = append(p.state.Users, u)
		p.state.CurrentUserID = u.ID
		p.log.Info("created default user", "user", u.ID)
	} else if p.indexOf(p.state.CurrentUserID) < 0 {
		p.state.CurrentUserID = p.state.Users[0].ID
	}

	if err := p.persistLocked(ctx); err != nil {
		return User{}, err
	}
	return cloneUser(p.state.Users[p.indexOf(p.state.CurrentUserID)]), nil
}

// GetStats returns the stats for key, creating and storing a zero record
// if the active user has never seen it.
func (p *Progress) GetStats(ctx context.Context, key facts.Key) (ProblemStats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return ProblemStats{}, err
	}
	if s, ok := u.ProblemHistory[key]; ok {
		return s, nil
	}
	u.ProblemHistory[key] = ProblemStats{}
	if err := p.persistLocked(ctx); err != nil {
		return ProblemStats{}, err
	}
	return ProblemStats{}, nil
}

// SaveStats overwrites the stats stored for key.
func (p *Progress) SaveStats(ctx context.Context, key facts.Key, stats ProblemStats) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return err
	}
	u.ProblemHistory[key] = stats
	return p.persistLocked(ctx)
}

// History returns a copy of the active user's problem history.
func (p *Progress) History(ctx context.Context) (map[facts.Key]ProblemStats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return nil, err
	}
	return cloneUser(*u).ProblemHistory, nil
}

// RecordLifetimeDelta adds to the active user's lifetime totals.
func (p *Progress) RecordLifetimeDelta(ctx context.Context, total, correct uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return err
	}
	u.LifetimeStats.Total += total
	u.LifetimeStats.Correct += correct
	return p.persistLocked(ctx)
}

// Lifetime returns the active user's lifetime totals.
func (p *Progress) Lifetime(ctx context.Context) (LifetimeStats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return LifetimeStats{}, err
	}
	return u.LifetimeStats, nil
}

// ResetLifetime zeroes the lifetime totals, leaving problem history intact.
func (p *Progress) ResetLifetime(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return err
	}
	u.LifetimeStats = LifetimeStats{}
	return p.persistLocked(ctx)
}

// ResetUser wipes the active user's history, lifetime totals and
// challenges. The user itself is kept.
func (p *Progress) ResetUser(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return err
	}
	u.LifetimeStats = LifetimeStats{}
	u.ProblemHistory = make(map[facts.Key]ProblemStats)
	u.Challenges = nil
	return p.persistLocked(ctx)
}

// currentLocked returns a pointer into the users slice for the active user.
func (p *Progress) currentLocked() (*User, error) {
	i := p.indexOf(p.state.CurrentUserID)
	if i < 0 {
		return nil, ErrNoActiveUser
	}
	u := &p.state.Users[i]
	if u.ProblemHistory == nil {
		u.ProblemHistory = make(map[facts.Key]ProblemStats)
	}
	return u, nil
}

func (p *Progress) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range p.state.Users {
		if p.state.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the full state blob. Callers hold p.mu.
func (p *Progress) persistLocked(ctx context.Context) error {
	b, err := encodeState(p.state)
	if err != nil {
		return err
	}
	if err := p.kv.Set(ctx, StateKey, b); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}
