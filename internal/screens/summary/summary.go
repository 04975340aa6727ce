package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/store"
	"github.com/abhisek/mathfacts/internal/ui/components"
	"github.com/abhisek/mathfacts/internal/ui/layout"
	"github.com/abhisek/mathfacts/internal/ui/theme"
)

// maxMissedShown caps the missed-facts list.
const maxMissedShown = 8

// ChallengeResult is the challenge outcome shown under the totals.
type ChallengeResult struct {
	Challenge session.Challenge
	Summary   store.ChallengeSummary
}

// SummaryScreen displays the end-of-quiz summary.
type SummaryScreen struct {
	summary session.Summary
	result  *ChallengeResult
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. result is nil for plain quizzes.
func New(summary session.Summary, result *ChallengeResult) *SummaryScreen {
	return &SummaryScreen{summary: summary, result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.result != nil {
		return "Challenge Result"
	}
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Quiz complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %d%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy)
	if sum.Answered > sum.TotalQuestions {
		statsLine += fmt.Sprintf("        Tries: %d", sum.Answered)
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n\n")

	if s.result != nil {
		b.WriteString(s.renderChallenge(width))
		b.WriteString("\n\n")
	}

	if len(sum.Missed) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Keep practising")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		missed := sum.Missed
		more := 0
		if len(missed) > maxMissedShown {
			more = len(missed) - maxMissedShown
			missed = missed[:maxMissedShown]
		}
		line := strings.Join(missed, "    ")
		if more > 0 {
			line += fmt.Sprintf("    +%d more", more)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SummaryScreen) renderChallenge(width int) string {
	r := s.result
	var line string
	var style lipgloss.Style
	if r.Summary.Success {
		style = theme.Correct
		line = fmt.Sprintf("Challenge passed! %d/%d (needed %d)", r.Summary.Correct, r.Summary.Total, r.Summary.Required)
		if r.Summary.Reward != "" {
			line += "\n\nYou earned: " + r.Summary.Reward
		}
	} else {
		style = theme.Incorrect
		line = fmt.Sprintf("Not this time: %d/%d (needed %d)", r.Summary.Correct, r.Summary.Total, r.Summary.Required)
		if r.Summary.Reward != "" {
			line += "\n\nKeep going to earn: " + r.Summary.Reward
		}
	}
	card := components.ArcadeCard(strings.ToUpper(string(r.Challenge.Operation))+" CHALLENGE", style.Render(line), components.ContentWidth(width))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
