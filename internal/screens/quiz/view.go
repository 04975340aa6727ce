package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/ui/components"
	"github.com/abhisek/mathfacts/internal/ui/theme"
)

// renderQuestionView renders the progress line, the question card and
// any feedback.
func (s *QuizScreen) renderQuestionView(width int) string {
	state := s.runner.State()
	total := len(state.Questions)

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d", min(state.Index+1, total), total))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d%%",
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			state.CorrectCount,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("%"),
			session.Accuracy(state),
		))
	if c, ok := s.runner.Challenge(); ok {
		infoRight += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  need %d", c.Required))
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := scoreBar(state, max(width-8, 10))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	b.WriteString(s.card.View(width))
	b.WriteString("\n\n")

	if s.showing {
		b.WriteString(s.renderFeedback(width))
	}
	return b.String()
}

// scoreBar counts the slots already passed by their latest result.
func scoreBar(state session.State, width int) components.ScoreBar {
	passed := len(state.Questions) - session.Remaining(state)
	bar := components.ScoreBar{Total: len(state.Questions), Width: width}
	for _, r := range state.Results[:passed] {
		if r == session.Correct {
			bar.Correct++
		} else {
			bar.Missed++
		}
	}
	return bar
}

// renderFeedback renders the result of the last answer.
func (s *QuizScreen) renderFeedback(width int) string {
	q := s.card.Question
	if s.lastCorrect {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Correct.Render(s.feedback))
	}

	out := lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render(s.feedback))
	out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%s = %d", q.Text(), q.Answer)))
	if s.runner.State().RepeatIncorrect {
		out += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Let's try that one again."))
	}
	return out
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Getting ready...")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back.", msg))
}

func renderQuitConfirm(width, height int, r *session.Runner) string {
	text := "Quit this quiz?"
	if _, ok := r.Challenge(); ok {
		text = "Quit this challenge? It will not be saved."
	}
	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(text) + "\n\n" +
			theme.Hint.Render("Y to quit, N to keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
