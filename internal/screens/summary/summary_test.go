package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/store"
)

func testSummary() session.Summary {
	return session.Summary{
		Duration:       3 * time.Minute,
		TotalQuestions: 20,
		Answered:       22,
		TotalCorrect:   18,
		Accuracy:       82,
		Missed:         []string{"7 x 8", "6 x 9"},
	}
}

func testResult(success bool) *ChallengeResult {
	c := session.DefaultChallenge()
	c.Reward = "extra story"
	correct := 17
	if success {
		correct = 18
	}
	return &ChallengeResult{
		Challenge: c,
		Summary: store.ChallengeSummary{
			Total: 20, Required: 18, Correct: correct, Reward: "extra story", Success: success,
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	if got := New(testSummary(), nil).Title(); got != "Quiz Summary" {
		t.Errorf("Title = %q, want %q", got, "Quiz Summary")
	}
	if got := New(testSummary(), testResult(true)).Title(); got != "Challenge Result" {
		t.Errorf("Title = %q, want %q", got, "Challenge Result")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary(), nil).View(100, 30)
	if !strings.Contains(view, "7 x 8") {
		t.Error("expected missed facts in view")
	}
}

func TestSummaryScreen_ChallengeOutcome(t *testing.T) {
	pass := New(testSummary(), testResult(true)).View(100, 30)
	if !strings.Contains(pass, "passed") || !strings.Contains(pass, "extra story") {
		t.Error("expected pass message with reward")
	}
	fail := New(testSummary(), testResult(false)).View(100, 30)
	if !strings.Contains(fail, "Not this time") {
		t.Error("expected fail message")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}
