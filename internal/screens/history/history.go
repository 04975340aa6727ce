package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/store"
	"github.com/abhisek/mathfacts/internal/ui/layout"
	"github.com/abhisek/mathfacts/internal/ui/theme"
)

// ChallengeLog lists and clears the active user's past challenges.
type ChallengeLog interface {
	ListChallenges(ctx context.Context) ([]store.ChallengeSummary, error)
	ClearChallenges(ctx context.Context) error
}

type historyLoadedMsg struct {
	Challenges []store.ChallengeSummary
	Err        error
}

type historyClearedMsg struct {
	Err error
}

// HistoryScreen displays past challenges, newest first.
type HistoryScreen struct {
	log          ChallengeLog
	challenges   []store.ChallengeSummary
	selected     int
	expanded     map[int]bool
	loaded       bool
	confirmClear bool
	errMsg       string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(log ChallengeLog) *HistoryScreen {
	return &HistoryScreen{
		log:      log,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		challenges, err := s.log.ListChallenges(context.Background())
		return historyLoadedMsg{Challenges: challenges, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Past Challenges"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear all"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "C", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.challenges = msg.Challenges
		}
		s.loaded = true
		return s, nil

	case historyClearedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.challenges = nil
		s.selected = 0
		s.expanded = make(map[int]bool)
		return s, nil

	case tea.KeyMsg:
		if s.confirmClear {
			s.confirmClear = false
			if k := msg.String(); k == "y" || k == "Y" {
				return s, s.clear()
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.challenges)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		case "c", "C":
			if len(s.challenges) > 0 {
				s.confirmClear = true
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) clear() tea.Cmd {
	return func() tea.Msg {
		return historyClearedMsg{Err: s.log.ClearChallenges(context.Background())}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading challenges...")
	}
	if len(s.challenges) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No challenges yet. Take one from the home menu!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.confirmClear {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render("Clear all past challenges? (y/n)")))
		b.WriteString("\n\n")
	}

	for i, c := range s.challenges {
		dateStr := "unknown date"
		if when := c.When(); !when.IsZero() {
			dateStr = when.Local().Format("Jan 02, 2006 15:04")
		}

		mark := theme.Incorrect.Render("✗")
		if c.Success {
			mark = theme.Correct.Render("✓")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d/%d (needed %d)",
			prefix, dateStr, c.Operation, c.Correct, c.Total, c.Required)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)+" "+mark))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render(detailLine(c))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func detailLine(c store.ChallengeSummary) string {
	tables := "none"
	if len(c.Tables) > 0 {
		parts := make([]string, len(c.Tables))
		for i, t := range c.Tables {
			parts[i] = fmt.Sprint(t)
		}
		tables = strings.Join(parts, ", ")
	}
	reward := c.Reward
	if reward == "" {
		reward = "none"
	}
	return fmt.Sprintf("    tables: %s    reward: %s", tables, reward)
}
