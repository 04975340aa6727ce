package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/report"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/store"
	"github.com/abhisek/mathfacts/internal/ui/layout"
	"github.com/abhisek/mathfacts/internal/ui/theme"
)

// Source supplies the active user's history and settings.
type Source interface {
	History(ctx context.Context) (map[facts.Key]store.ProblemStats, error)
	Lifetime(ctx context.Context) (store.LifetimeStats, error)
	Mode() facts.PracticeMode
}

type statsLoadedMsg struct {
	History  map[facts.Key]store.ProblemStats
	Lifetime store.LifetimeStats
	Err      error
}

// StatsScreen shows lifetime accuracy and the per-fact grid.
type StatsScreen struct {
	source   Source
	mode     facts.PracticeMode
	history  map[facts.Key]store.ProblemStats
	lifetime store.LifetimeStats
	grid     report.Grid
	row, col int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen starting on the user's practice mode.
func New(source Source) *StatsScreen {
	return &StatsScreen{source: source, mode: source.Mode(), row: 1, col: 1}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		history, err := s.source.History(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		lt, err := s.source.Lifetime(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{History: history, Lifetime: lt}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "M", Description: "Switch grid"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.history = msg.History
		s.lifetime = msg.Lifetime
		s.rebuild()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			s.row = max(1, s.row-1)
		case "down", "j":
			s.row = min(s.grid.Size, s.row+1)
		case "left", "h":
			s.col = max(1, s.col-1)
		case "right", "l":
			s.col = min(s.grid.Size, s.col+1)
		case "m", "M":
			if s.mode == facts.ModeSingleDigit {
				s.mode = facts.ModeTables
			} else {
				s.mode = facts.ModeSingleDigit
			}
			s.rebuild()
		}
	}
	return s, nil
}

func (s *StatsScreen) rebuild() {
	s.grid = report.NewGrid(s.history, s.mode)
	s.row = min(s.row, s.grid.Size)
	s.col = min(s.col, s.grid.Size)
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	center := func(text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(
		LifetimeLine(s.lifetime))))
	b.WriteString("\n\n")
	b.WriteString(center(RenderGrid(s.grid, s.row, s.col)))
	b.WriteString("\n\n")

	cell := s.grid.At(s.row, s.col)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(cellLine(s.grid, cell))))
	b.WriteString("\n")
	return b.String()
}

// LifetimeLine describes overall accuracy.
func LifetimeLine(lt store.LifetimeStats) string {
	if lt.Total == 0 {
		return "No answers yet"
	}
	return fmt.Sprintf("Lifetime: %d%% (%d of %d correct)", report.LifetimePercent(lt), lt.Correct, lt.Total)
}

func cellLine(g report.Grid, c report.Cell) string {
	op := "x"
	if g.Mode == facts.ModeSingleDigit {
		op = "+/-"
	}
	if c.Answered == 0 {
		return fmt.Sprintf("%d %s %d: not answered yet", c.Row, op, c.Col)
	}
	return fmt.Sprintf("%d %s %d: %d%%  (%d right, %d wrong)", c.Row, op, c.Col, c.Percent, c.Correct, c.Wrong)
}

// RenderGrid draws the grid with each cell coloured by band. The cell
// at (selRow, selCol) is underlined; pass 0 to select nothing.
func RenderGrid(g report.Grid, selRow, selCol int) string {
	const cellWidth = 4

	corner := "x"
	if g.Mode == facts.ModeSingleDigit {
		corner = "±"
	}
	pad := func(s string) string {
		return fmt.Sprintf("%*s", cellWidth, s)
	}

	var lines []string
	header := []string{theme.CellHeader.Render(pad(corner))}
	for c := 1; c <= g.Size; c++ {
		header = append(header, theme.CellHeader.Render(pad(fmt.Sprint(c))))
	}
	lines = append(lines, strings.Join(header, ""))

	for r := 1; r <= g.Size; r++ {
		row := []string{theme.CellHeader.Render(pad(fmt.Sprint(r)))}
		for c := 1; c <= g.Size; c++ {
			cell := g.At(r, c)
			text := "·"
			if cell.Answered > 0 {
				text = fmt.Sprint(cell.Percent)
			}
			style := theme.ForBand(cell.Band)
			if r == selRow && c == selCol {
				style = style.Underline(true).Bold(true)
			}
			row = append(row, style.Render(pad(text)))
		}
		lines = append(lines, strings.Join(row, ""))
	}
	return strings.Join(lines, "\n")
}
