package quiz

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathfacts/internal/logging"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/screens/summary"
	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/ui/components"
	"github.com/abhisek/mathfacts/internal/ui/layout"
)

const (
	revealAfter = 15 * time.Second
	flashFor    = 2 * time.Second
	feedbackFor = 1800 * time.Millisecond
)

// QuizScreen works through a fixed batch of questions, plain or as a
// challenge.
type QuizScreen struct {
	runner      *session.Runner
	title       string
	rng         *rand.Rand
	log         *logging.Logger
	card        *components.QuestionCard
	cardIndex   int
	cardAnswers int
	feedback    string
	lastCorrect bool
	showing     bool
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.BackInterceptor = (*QuizScreen)(nil)

// New creates a QuizScreen over runner. A nil rng or log gets a default.
func New(runner *session.Runner, title string, rng *rand.Rand, log *logging.Logger) *QuizScreen {
	if rng == nil {
		rng = problemgen.NewRand()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &QuizScreen{
		runner: runner,
		title:  title,
		rng:    rng,
		log:    log.With("screen", "quiz"),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadCurrent()
}

func (s *QuizScreen) Title() string {
	return s.title
}

func (s *QuizScreen) InterceptsBack() bool {
	return s.errMsg == "" && !s.runner.State().Done
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showing {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.card != nil && s.card.Question.Mode == problemgen.ModeMultipleChoice {
		return []layout.KeyHint{
			{Key: "1-3", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height, s.runner)
	}
	if s.card == nil {
		return renderLoading(width)
	}
	return s.renderQuestionView(width)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		if s.isCurrent(msg.index) {
			s.card.Flash()
			index := msg.index
			return s, tea.Tick(flashFor, func(time.Time) tea.Msg { return revealShownMsg{index: index} })
		}
		return s, nil

	case revealShownMsg:
		if s.isCurrent(msg.index) {
			s.card.Reveal()
		}
		return s, nil

	case feedbackDoneMsg:
		if s.showing && msg.answered == s.runner.State().Answered {
			return s.advance()
		}
		return s, nil

	case quizEndMsg:
		var result *summary.ChallengeResult
		if c, ok := s.runner.Challenge(); ok {
			saved, _ := s.runner.ChallengeSummary()
			result = &summary.ChallengeResult{Challenge: c, Summary: saved}
		}
		next := summary.New(msg.Summary, result)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// isCurrent reports whether a timer for question index still applies.
func (s *QuizScreen) isCurrent(index int) bool {
	return s.card != nil && !s.showing && s.cardIndex == index &&
		s.cardAnswers == s.runner.State().Answered
}

// loadCurrent builds the card for the runner's current question.
func (s *QuizScreen) loadCurrent() tea.Cmd {
	q, ok := s.runner.Current()
	if !ok {
		s.card = nil
		summary := s.runner.Summary()
		return func() tea.Msg { return quizEndMsg{Summary: summary} }
	}
	card := components.NewQuestionCard(q)
	s.card = &card
	s.cardIndex = s.runner.State().Index
	s.cardAnswers = s.runner.State().Answered
	index := s.cardIndex
	return tea.Batch(card.Init(), tea.Tick(revealAfter, func(time.Time) tea.Msg {
		return revealMsg{index: index}
	}))
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.showing = false
	return s, s.loadCurrent()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.log.Info("quiz abandoned", "answered", s.runner.State().Answered)
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	if s.showing {
		return s.advance()
	}
	if s.card == nil {
		return s, nil
	}

	card, cmd := s.card.Update(msg)
	s.card = &card
	correct, ok := card.Answered()
	if !ok {
		return s, cmd
	}
	return s, s.submit(correct)
}

// submit records the answer through the runner and shows feedback.
func (s *QuizScreen) submit(correct bool) tea.Cmd {
	if err := s.runner.Submit(context.Background(), correct); err != nil {
		s.log.Error("submit answer", "err", err)
		s.errMsg = err.Error()
		return nil
	}
	s.lastCorrect = correct
	s.feedback = components.FeedbackMessage(s.rng, correct)
	s.showing = true
	answered := s.runner.State().Answered
	return tea.Tick(feedbackFor, func(time.Time) tea.Msg { return feedbackDoneMsg{answered: answered} })
}
