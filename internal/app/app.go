package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/quiz"
	"github.com/abhisek/mathfacts/internal/report"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/screens/home"
	"github.com/abhisek/mathfacts/internal/screens/launch"
	"github.com/abhisek/mathfacts/internal/screens/welcome"
	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/ui/layout"
)

// Start selects the first screen.
type Start string

const (
	StartHome      Start = "home"
	StartPractice  Start = "practice"
	StartQuiz      Start = "quiz"
	StartChallenge Start = "challenge"
)

// Options configures a TUI run.
type Options struct {
	launch.Deps

	Start Start

	// Quiz is used with StartQuiz, Challenge with StartChallenge.
	Quiz            quiz.Options
	Challenge       session.Challenge
	RepeatIncorrect bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   launch.Deps
	header layout.HeaderInfo
	width  int
	height int
}

// newAppModel creates an AppModel whose stack starts at opts.Start. Home
// is reached through the welcome greeting. Drills opened from the CLI sit
// alone on the stack, so leaving them quits.
func newAppModel(opts Options) AppModel {
	var first screen.Screen
	switch opts.Start {
	case StartPractice:
		first = opts.Practice()
	case StartQuiz:
		first = opts.Deps.Quiz(opts.Quiz, opts.RepeatIncorrect)
	case StartChallenge:
		first = opts.Deps.Challenge(opts.Challenge, opts.RepeatIncorrect)
	default:
		name := ""
		if u, ok := opts.Progress.ActiveUser(); ok {
			name = u.Name
		}
		deps := opts.Deps
		first = welcome.New(name, func() screen.Screen { return home.New(deps) })
	}
	m := AppModel{
		router: router.New(first),
		deps:   opts.Deps,
	}
	m.header = m.loadHeader()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptsBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	m.header = m.loadHeader()
	return m, cmd
}

// loadHeader reads the active user and lifetime accuracy for the header.
func (m AppModel) loadHeader() layout.HeaderInfo {
	if m.deps.Progress == nil {
		return layout.HeaderInfo{}
	}
	u, ok := m.deps.Progress.ActiveUser()
	if !ok {
		return layout.HeaderInfo{}
	}
	info := layout.HeaderInfo{User: u.Name}
	if lt, err := m.deps.Progress.Lifetime(context.Background()); err == nil {
		info.Lifetime = report.LifetimePercent(lt)
		info.Answered = lt.Total
	}
	return info
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.header, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
