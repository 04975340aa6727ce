package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/mathfacts/internal/facts"
)

// Tables outside this range cannot be selected.
const (
	MinTable = 1
	MaxTable = 12
)

// SelectedNumbers returns a copy of the selected multiplication tables.
func (p *Progress) SelectedNumbers() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.state.SelectedNumbers...)
}

// SetSelectedNumbers replaces the selected tables. Values are deduplicated
// and sorted; each must be within MinTable..MaxTable.
func (p *Progress) SetSelectedNumbers(ctx context.Context, nums []int) error {
	seen := make(map[int]bool, len(nums))
	clean := make([]int, 0, len(nums))
	for _, n := range nums {
		if n < MinTable || n > MaxTable {
			return fmt.Errorf("%w: table %d outside %d..%d", ErrInvalidSetting, n, MinTable, MaxTable)
		}
		if !seen[n] {
			seen[n] = true
			clean = append(clean, n)
		}
	}
	sort.Ints(clean)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SelectedNumbers = clean
	return p.persistLocked(ctx)
}

// Mode returns the adaptive practice mode.
func (p *Progress) Mode() facts.PracticeMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Mode
}

// SetMode changes the adaptive practice mode.
func (p *Progress) SetMode(ctx context.Context, mode facts.PracticeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidSetting, mode)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Mode = mode
	return p.persistLocked(ctx)
}

// UseCustomKeypad reports whether the on-screen keypad is preferred.
func (p *Progress) UseCustomKeypad() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.UseCustomKeypad
}

// SetUseCustomKeypad stores the keypad preference.
func (p *Progress) SetUseCustomKeypad(ctx context.Context, v bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.UseCustomKeypad = v
	return p.persistLocked(ctx)
}
