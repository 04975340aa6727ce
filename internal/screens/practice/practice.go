package practice

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/logging"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/ui/components"
	"github.com/abhisek/mathfacts/internal/ui/layout"
	"github.com/abhisek/mathfacts/internal/ui/theme"
)

const (
	// RevealAfter is how long an unanswered question waits before its
	// answer starts to flash.
	RevealAfter = 15 * time.Second

	// FlashFor is how long the flash lasts before the answer shows.
	FlashFor = 2 * time.Second

	// FeedbackFor is how long feedback stays before the next question.
	FeedbackFor = 1800 * time.Millisecond
)

// Engine is the adaptive generator the screen drives.
type Engine interface {
	Next(ctx context.Context) (*problemgen.Question, error)
	problemgen.Recorder
}

type questionReadyMsg struct {
	Question *problemgen.Question
	Err      error
}

type revealMsg struct{ seq int }

type revealShownMsg struct{ seq int }

type feedbackDoneMsg struct{ seq int }

// PracticeScreen runs an open-ended adaptive drill.
type PracticeScreen struct {
	engine   Engine
	rng      *rand.Rand
	log      *logging.Logger
	card     *components.QuestionCard
	seq      int
	tally    session.Practice
	feedback string
	correct  bool
	showing  bool
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen. A nil rng or log gets a default.
func New(engine Engine, rng *rand.Rand, log *logging.Logger) *PracticeScreen {
	if rng == nil {
		rng = problemgen.NewRand()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &PracticeScreen{engine: engine, rng: rng, log: log.With("screen", "practice")}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.advance()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.showing {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
			{Key: "Esc", Description: "Home"},
		}
	}
	if s.card != nil && s.card.Question.Mode == problemgen.ModeMultipleChoice {
		return []layout.KeyHint{
			{Key: "1-3", Description: "Pick"},
			{Key: "←→", Description: "Move"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Home"},
	}
}

// advance leaves the feedback state and fetches the next question.
// Keys are ignored until it arrives, so one Next is in flight at a time.
func (s *PracticeScreen) advance() tea.Cmd {
	s.showing = false
	s.loading = true
	return s.nextQuestion()
}

func (s *PracticeScreen) nextQuestion() tea.Cmd {
	return func() tea.Msg {
		q, err := s.engine.Next(context.Background())
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		s.loading = false
		if msg.Err != nil {
			s.log.Error("next question", "err", msg.Err)
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		card := components.NewQuestionCard(msg.Question)
		s.card = &card
		s.seq++
		s.showing = false
		seq := s.seq
		return s, tea.Batch(card.Init(), tea.Tick(RevealAfter, func(time.Time) tea.Msg {
			return revealMsg{seq: seq}
		}))

	case revealMsg:
		if msg.seq != s.seq || s.card == nil || s.showing || s.loading {
			return s, nil
		}
		s.card.Flash()
		seq := s.seq
		return s, tea.Tick(FlashFor, func(time.Time) tea.Msg { return revealShownMsg{seq: seq} })

	case revealShownMsg:
		if msg.seq == s.seq && s.card != nil && !s.showing && !s.loading {
			s.card.Reveal()
		}
		return s, nil

	case feedbackDoneMsg:
		if msg.seq != s.seq || !s.showing {
			return s, nil
		}
		return s, s.advance()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.card == nil || s.loading {
		return s, nil
	}
	if s.showing {
		return s, s.advance()
	}

	card, cmd := s.card.Update(msg)
	s.card = &card
	correct, ok := card.Answered()
	if !ok {
		return s, cmd
	}
	return s, s.submit(correct)
}

func (s *PracticeScreen) submit(correct bool) tea.Cmd {
	if err := s.engine.RecordAnswer(context.Background(), s.card.Question, correct); err != nil {
		s.log.Error("record answer", "key", s.card.Question.Key, "err", err)
		s.errMsg = err.Error()
		return nil
	}
	s.tally = session.RecordPractice(s.tally, correct)
	s.correct = correct
	s.feedback = components.FeedbackMessage(s.rng, correct)
	s.showing = true
	seq := s.seq
	return tea.Tick(FeedbackFor, func(time.Time) tea.Msg { return feedbackDoneMsg{seq: seq} })
}

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back.", s.errMsg))
	}
	if s.card == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Picking a question...")
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n\n")
	b.WriteString(s.card.View(width))
	b.WriteString("\n\n")

	if s.showing {
		style := theme.Correct
		if !s.correct {
			style = theme.Incorrect
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(s.feedback)))
		if !s.correct {
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(fmt.Sprintf("%s = %d", s.card.Question.Text(), s.card.Question.Answer))))
		}
	}
	return b.String()
}

func (s *PracticeScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Tier: %s", problemgen.TierFor(s.card.Question)))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d correct   streak %d  ", s.tally.Correct, s.tally.Answered, s.tally.Streak))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right); pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line + "\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
}
