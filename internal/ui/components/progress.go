package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/ui/theme"
)

// ScoreBar shows how far a session has got: one segment for facts passed
// correctly, one for facts missed and the rest still to come.
type ScoreBar struct {
	Correct int
	Missed  int
	Total   int
	Width   int
}

// View renders the bar followed by a "passed/total" count.
func (b ScoreBar) View() string {
	if b.Total <= 0 {
		return ""
	}
	passed := min(b.Correct+b.Missed, b.Total)
	count := fmt.Sprintf("  %d/%d", passed, b.Total)
	cells := max(b.Width-len(count), 4)

	good := b.Correct * cells / b.Total
	done := passed * cells / b.Total
	bad := done - good

	segment := func(n int, c lipgloss.Style) string {
		return c.Render(strings.Repeat(" ", max(n, 0)))
	}
	return segment(good, lipgloss.NewStyle().Background(theme.Success)) +
		segment(bad, lipgloss.NewStyle().Background(theme.Error)) +
		segment(cells-done, lipgloss.NewStyle().Background(theme.Border)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
