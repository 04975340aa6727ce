package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/ui/components"
	"github.com/abhisek/mathfacts/internal/ui/theme"
)

const arcadeTitleFull = ` █▀▄▀█ ▄▀█ ▀█▀ █ █   █▀▀ ▄▀█ █▀▀ ▀█▀ █▀
 █ ▀ █ █▀█  █  █▀█   █▀  █▀█ █▄▄  █  ▄█`

const arcadeTitleCompact = "M · A · T · H   F · A · C · T · S"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the learner status in a bordered box matching
// content width.
func renderStatsBar(user string, percent int, answered uint, cw int, compact bool) string {
	userStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	pctStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var pct string
	if answered == 0 {
		pct = dimStyle.Render("NO ANSWERS YET")
	} else if compact {
		pct = pctStyle.Render(fmt.Sprintf("%d%%", percent))
	} else {
		pct = pctStyle.Render(fmt.Sprintf("%d%% CORRECT", percent))
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			userStyle.Render(user),
			pct,
			countStyle.Render(fmt.Sprintf("#%d", answered)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			userStyle.Render("★ "+strings.ToUpper(user)),
			pct,
			countStyle.Render(fmt.Sprintf("%d ANSWERED", answered)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []components.MenuItem, selected int, cw int) string {
	var buttons []string
	for i, item := range items {
		buttons = append(buttons, components.ArcadeButton(item.Label, item.Shortcut, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
