package store

import "context"

// SaveChallenge appends a completed challenge to the active user's history.
func (p *Progress) SaveChallenge(ctx context.Context, summary ChallengeSummary) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return err
	}
	summary.Tables = append([]int(nil), summary.Tables...)
	u.Challenges = append(u.Challenges, summary)
	return p.persistLocked(ctx)
}

// ListChallenges returns the active user's challenges, newest first.
func (p *Progress) ListChallenges(ctx context.Context) ([]ChallengeSummary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return nil, err
	}
	out := make([]ChallengeSummary, 0, len(u.Challenges))
	for i := len(u.Challenges) - 1; i >= 0; i-- {
		out = append(out, u.Challenges[i])
	}
	return out, nil
}

// ClearChallenges drops the active user's whole challenge history.
func (p *Progress) ClearChallenges(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	u, err := p.currentLocked()
	if err != nil {
		return err
	}
	u.Challenges = nil
	return p.persistLocked(ctx)
}
