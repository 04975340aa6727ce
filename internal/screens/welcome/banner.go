package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/ui/theme"
)

const bannerArt = ` █▀▄▀█ ▄▀█ ▀█▀ █ █   █▀▀ ▄▀█ █▀▀ ▀█▀ █▀
 █ ▀ █ █▀█  █  █▀█   █▀  █▀█ █▄▄  █  ▄█`

const bannerCompact = "M A T H   F A C T S"

// RenderBanner returns the banner styled in the primary color, with a
// compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
