package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/mathfacts/internal/facts"
)

// StateKey is the KV key holding the whole persisted application state.
const StateKey = "math-facts-state"

// StateVersion is the blob version written by this build.
const StateVersion = 1

// ProblemStats is the per-user history of a single ordered fact.
//
// Attempts counts presentations while Correct and Wrong count submitted
// answers, so an abandoned question leaves Attempts > Correct+Wrong.
type ProblemStats struct {
	Correct  uint `json:"correct"`
	Wrong    uint `json:"wrong"`
	Attempts uint `json:"attempts"`

	// Legacy orientation and typing flags. Round-tripped for old blobs,
	// never consulted.
	GotMinFirstCorrect bool `json:"gotMinFirstCorrect"`
	GotMaxFirstCorrect bool `json:"gotMaxFirstCorrect"`
	RequiresTyping     bool `json:"requiresTyping"`

	LastSeenUTC string `json:"lastSeenUtc,omitempty"`
}

// LifetimeStats are a user's running answer totals across all problems.
type LifetimeStats struct {
	Total   uint `json:"total"`
	Correct uint `json:"correct"`
}

// ChallengeSummary is the immutable record of a completed challenge.
type ChallengeSummary struct {
	Date      string          `json:"date"`
	Tables    []int           `json:"tables"`
	Operation facts.Operation `json:"operation"`
	Total     int             `json:"total"`
	Required  int             `json:"required"`
	Correct   int             `json:"correct"`
	Reward    string          `json:"reward"`
	Success   bool            `json:"success"`
}

// When parses Date. The zero time is returned for unparseable dates.
func (c ChallengeSummary) When() time.Time {
	t, err := time.Parse(time.RFC3339, c.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// User is a learner and everything recorded about them.
type User struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"name"`
	LifetimeStats  LifetimeStats              `json:"lifetimeStats"`
	ProblemHistory map[facts.Key]ProblemStats `json:"problemHistory"`
	Challenges     []ChallengeSummary         `json:"challenges,omitempty"`
}

// AppState is the persisted blob.
type AppState struct {
	Version         int                `json:"version"`
	SelectedNumbers []int              `json:"selectedNumbers"`
	Mode            facts.PracticeMode `json:"mode"`
	UseCustomKeypad bool               `json:"useCustomKeypad"`
	Users           []User             `json:"users"`
	CurrentUserID   string             `json:"currentUserId,omitempty"`
}

// DefaultSelectedNumbers returns the tables 1 through 12.
func DefaultSelectedNumbers() []int {
	nums := make([]int, 12)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// DefaultState returns the state used when nothing valid is persisted.
func DefaultState() AppState {
	return AppState{
		Version:         StateVersion,
		SelectedNumbers: DefaultSelectedNumbers(),
		Mode:            facts.ModeTables,
		Users:           []User{},
	}
}

// decodeState validates raw against the state schema and unmarshals it.
// Any failure is reported as *ErrCorruptState.
func decodeState(raw []byte) (AppState, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AppState{}, &ErrCorruptState{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateState(doc); err != nil {
		return AppState{}, &ErrCorruptState{Err: err}
	}

	var st AppState
	if err := json.Unmarshal(raw, &st); err != nil {
		return AppState{}, &ErrCorruptState{Err: fmt.Errorf("unmarshal state: %w", err)}
	}
	normalizeState(&st)
	return st, nil
}

// normalizeState fills fields that older blobs may lack and drops tables
// outside the selectable range.
func normalizeState(st *AppState) {
	if st.SelectedNumbers == nil {
		st.SelectedNumbers = DefaultSelectedNumbers()
	} else {
		st.SelectedNumbers = validTables(st.SelectedNumbers)
	}
	if st.Mode == "" {
		st.Mode = facts.ModeTables
	}
	if st.Users == nil {
		st.Users = []User{}
	}
	for i := range st.Users {
		if st.Users[i].ProblemHistory == nil {
			st.Users[i].ProblemHistory = make(map[facts.Key]ProblemStats)
		}
	}
}

// validTables drops tables outside MinTable..MaxTable and duplicates,
// returning the rest sorted.
func validTables(nums []int) []int {
	seen := make(map[int]bool, len(nums))
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		if n < MinTable || n > MaxTable || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func encodeState(st AppState) ([]byte, error) {
	b, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return b, nil
}

func cloneUser(u User) User {
	out := u
	out.ProblemHistory = make(map[facts.Key]ProblemStats, len(u.ProblemHistory))
	for k, v := range u.ProblemHistory {
		out.ProblemHistory[k] = v
	}
	if u.Challenges != nil {
		out.Challenges = append([]ChallengeSummary(nil), u.Challenges...)
	}
	return out
}
