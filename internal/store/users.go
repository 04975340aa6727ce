package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/google/uuid"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// UserIDFromName derives a stable id from a display name:
// "Ada Lovelace" becomes "ada-lovelace".
func UserIDFromName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

func newUserID() string {
	return uuid.New().String()
}

func newUser(id, name string) User {
	return User{
		ID:             id,
		Name:           name,
		ProblemHistory: make(map[facts.Key]ProblemStats),
	}
}

// ListUsers returns copies of every user in creation order.
func (p *Progress) ListUsers() []User {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]User, 0, len(p.state.Users))
	for _, u := range p.state.Users {
		out = append(out, cloneUser(u))
	}
	return out
}

// ActiveUser returns a copy of the current user, if any.
func (p *Progress) ActiveUser() (User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(p.state.CurrentUserID)
	if i < 0 {
		return User{}, false
	}
	return cloneUser(p.state.Users[i]), true
}

// SetActiveUser switches to the user with id, creating it when unknown.
// A non-empty name renames an existing user or names a new one; a new user
// without a name becomes "Player N".
func (p *Progress) SetActiveUser(ctx context.Context, id, name string) (User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, fmt.Errorf("%w: empty user id", ErrUnknownUser)
	}
	name = strings.TrimSpace(name)

	i := p.indexOf(id)
	if i < 0 {
		if name == "" {
			name = fmt.Sprintf("Player %d", len(p.state.Users)+1)
		}
		p.state.Users = append(p.state.Users, newUser(id, name))
		i = len(p.state.Users) - 1
		p.log.Info("created user", "user", id)
	} else if name != "" {
		p.state.Users[i].Name = name
	}
	p.state.CurrentUserID = id

	if err := p.persistLocked(ctx); err != nil {
		return User{}, err
	}
	return cloneUser(p.state.Users[i]), nil
}

// DeleteUser removes the user with id. If it was active, the first
// remaining user becomes active; with no users left none is active until
// Init runs again.
func (p *Progress) DeleteUser(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownUser, id)
	}
	p.state.Users = append(p.state.Users[:i], p.state.Users[i+1:]...)

	if p.state.CurrentUserID == id {
		p.state.CurrentUserID = ""
		if len(p.state.Users) > 0 {
			p.state.CurrentUserID = p.state.Users[0].ID
		}
	}
	return p.persistLocked(ctx)
}
