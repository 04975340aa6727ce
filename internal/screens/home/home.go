package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathfacts/internal/logging"
	"github.com/abhisek/mathfacts/internal/report"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/screens/launch"
	"github.com/abhisek/mathfacts/internal/ui/components"
	"github.com/abhisek/mathfacts/internal/ui/layout"
)

// statusLoadedMsg carries the learner status shown above the menu.
type statusLoadedMsg struct {
	User     string
	Percent  int
	Answered uint
	Err      error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps       launch.Deps
	menu       components.Menu
	menuLabels []string
	user       string
	percent    int
	answered   uint
	mascot     MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps launch.Deps) *HomeScreen {
	if deps.Log == nil {
		deps.Log = logging.Nop()
	}
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE", Shortcut: "p", Action: push(deps.Practice)},
		{Label: "QUIZ", Shortcut: "q", Action: push(func() screen.Screen {
			return deps.Quiz(deps.DefaultQuiz(), false)
		})},
		{Label: "CHALLENGE", Shortcut: "c", Action: push(func() screen.Screen {
			return deps.Challenge(deps.DefaultChallenge(), false)
		})},
		{Label: "STATS", Shortcut: "s", Action: push(deps.Stats)},
		{Label: "PAST CHALLENGES", Shortcut: "h", Action: push(deps.History)},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	menu := components.NewMenu(items)
	return &HomeScreen{
		deps:       deps,
		menu:       menu,
		menuLabels: menu.Labels(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.Refresh()
}

// Refresh reloads the learner status after returning from a drill.
func (h *HomeScreen) Refresh() tea.Cmd {
	p := h.deps.Progress
	return func() tea.Msg {
		u, ok := p.ActiveUser()
		if !ok {
			return statusLoadedMsg{}
		}
		lt, err := p.Lifetime(context.Background())
		if err != nil {
			return statusLoadedMsg{User: u.Name, Err: err}
		}
		return statusLoadedMsg{
			User:     u.Name,
			Percent:  report.LifetimePercent(lt),
			Answered: lt.Total,
		}
	}
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "P/Q/C/S/H", Description: "Jump"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statusLoadedMsg); ok {
		if msg.Err != nil {
			h.deps.Log.Warn("load home status", "err", msg.Err)
		}
		h.user = msg.User
		h.percent = msg.Percent
		h.answered = msg.Answered
		h.mascot = MascotFor(msg.Percent, msg.Answered)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to
	// estimate the terminal.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.user, h.percent, h.answered, cw, compact))

	if termHeight < layout.MinHeight+4 {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Items, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
