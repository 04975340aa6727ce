package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: strong accuracy
	MascotAlert                            // Orange, exclamation: needs practice
)

// Accuracy thresholds for the mascot, matching the stats grid bands.
const (
	celebrateAt = 80
	alertBelow  = 50
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +-× │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +-× │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ +-× │
└─────┘`

// MascotFor picks the variant for a lifetime accuracy. With no answers
// the mascot stays idle.
func MascotFor(percent int, answered uint) MascotVariant {
	switch {
	case answered == 0:
		return MascotIdle
	case percent >= celebrateAt:
		return MascotCelebrating
	case percent < alertBelow:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
