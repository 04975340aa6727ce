package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/report"
)

// Color palette, bright but not garish
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
	Warning      = lipgloss.Color("#EAB308") // Amber
)

// Typography
var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Accuracy grid cells
var (
	CellGood   = lipgloss.NewStyle().Foreground(BgDark).Background(Success)
	CellOK     = lipgloss.NewStyle().Foreground(BgDark).Background(Warning)
	CellBad    = lipgloss.NewStyle().Foreground(Text).Background(Error)
	CellNoData = lipgloss.NewStyle().Foreground(TextDim).Background(BgCard)
	CellHeader = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
)

// ForBand returns the grid cell style for an accuracy band.
func ForBand(b report.Band) lipgloss.Style {
	switch b {
	case report.BandGood:
		return CellGood
	case report.BandOK:
		return CellOK
	case report.BandBad:
		return CellBad
	default:
		return CellNoData
	}
}

// Components
var (
	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)
)
