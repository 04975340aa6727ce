package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/ui/theme"
)

const (
	// cabinetInset is the border plus inner padding around cabinet content.
	cabinetInset = 6

	minContentWidth = 20
	maxContentWidth = 60
)

// ContentWidth is the shared inner width of the cabinet sections for a
// frame of frameWidth columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetInset, minContentWidth), maxContentWidth)
}

// CabinetFrame centres content inside a double border filling width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard boxes content under an optional title, cw columns wide.
func ArcadeCard(title, content string, cw int) string {
	body := content
	if title != "" {
		heading := lipgloss.NewStyle().Bold(true).Foreground(theme.ArcadeCyan).Render(title)
		body = heading + "\n\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(body)
}

// ArcadeButton renders one menu entry. A non-empty shortcut is shown after
// the label so the key that opens it is visible.
func ArcadeButton(label, shortcut string, selected bool, width int) string {
	text := label
	if shortcut != "" {
		text += "  [" + shortcut + "]"
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !selected {
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(text)
	}
	return style.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + text)
}
