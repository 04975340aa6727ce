package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/router"
	"github.com/abhisek/mathfacts/internal/screen"
	"github.com/abhisek/mathfacts/internal/screens/summary"
	"github.com/abhisek/mathfacts/internal/session"
	"github.com/abhisek/mathfacts/internal/store"
	"github.com/abhisek/mathfacts/internal/ui/components"
)

type fakeRecorder struct {
	answers []bool
}

func (f *fakeRecorder) RecordAnswer(_ context.Context, _ *problemgen.Question, correct bool) error {
	f.answers = append(f.answers, correct)
	return nil
}

type fakeSaver struct {
	saved []store.ChallengeSummary
}

func (f *fakeSaver) SaveChallenge(_ context.Context, s store.ChallengeSummary) error {
	f.saved = append(f.saved, s)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// choiceQuestions returns n questions whose correct option is key '2'.
func choiceQuestions(n int) []problemgen.Question {
	qs := make([]problemgen.Question, n)
	for i := range qs {
		q := problemgen.NewQuestion(3, facts.Multiplication, i+1, problemgen.ModeTyped, nil)
		q.Mode = problemgen.ModeMultipleChoice
		q.Options = []int{q.Answer + 1, q.Answer}
		qs[i] = q
	}
	return qs
}

func newQuiz(t *testing.T, n int, repeat bool) (*QuizScreen, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	runner := session.NewRunner(choiceQuestions(n), repeat, rec)
	s := New(runner, "Quiz", problemgen.NewSeededRand(1), nil)
	if s.Init() == nil {
		t.Fatal("expected init command")
	}
	return s, rec
}

func answer(t *testing.T, s *QuizScreen, key rune) *QuizScreen {
	t.Helper()
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(key))
	qs := scr.(*QuizScreen)
	if !qs.showing {
		t.Fatal("expected feedback after answering")
	}
	return qs
}

// next dismisses feedback and returns the resulting command.
func next(s *QuizScreen) tea.Cmd {
	_, cmd := s.Update(feedbackDoneMsg{answered: s.runner.State().Answered})
	return cmd
}

func TestQuizScreen_AnswersAdvance(t *testing.T) {
	s, rec := newQuiz(t, 3, false)

	s = answer(t, s, '2')
	if !s.lastCorrect {
		t.Error("expected correct answer")
	}
	next(s)
	if s.runner.State().Index != 1 || s.cardIndex != 1 {
		t.Errorf("index = %d, card = %d", s.runner.State().Index, s.cardIndex)
	}

	s = answer(t, s, '1')
	if s.lastCorrect {
		t.Error("expected wrong answer")
	}
	if len(rec.answers) != 2 || !rec.answers[0] || rec.answers[1] {
		t.Errorf("answers = %v", rec.answers)
	}
}

func TestQuizScreen_RepeatIncorrect(t *testing.T) {
	s, _ := newQuiz(t, 2, true)

	s = answer(t, s, '1')
	next(s)
	if s.runner.State().Index != 0 {
		t.Errorf("index = %d, want 0 for repeated question", s.runner.State().Index)
	}
	if s.card.Phase() != components.RevealNone {
		t.Error("expected a fresh card")
	}
}

func TestQuizScreen_EndReplacesWithSummary(t *testing.T) {
	s, _ := newQuiz(t, 1, false)
	s = answer(t, s, '2')

	cmd := next(s)
	if cmd == nil {
		t.Fatal("expected end command")
	}
	end, ok := cmd().(quizEndMsg)
	if !ok {
		t.Fatal("expected quizEndMsg")
	}
	if end.Summary.TotalCorrect != 1 || end.Summary.Accuracy != 100 {
		t.Errorf("summary = %+v", end.Summary)
	}

	_, cmd = s.Update(end)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement = %T", msg.Screen)
	}
	if s.InterceptsBack() {
		t.Error("finished quiz should not intercept back")
	}
}

func TestQuizScreen_ChallengeSavedAndShown(t *testing.T) {
	saver := &fakeSaver{}
	c := session.Challenge{Tables: []int{3}, Operation: facts.Multiplication, Total: 2, Required: 2, Reward: "sticker"}
	runner := session.NewChallengeRunner(choiceQuestions(2), false, &fakeRecorder{}, c, saver)
	s := New(runner, "Challenge", nil, nil)
	s.Init()

	s = answer(t, s, '2')
	next(s)
	s = answer(t, s, '2')

	if len(saver.saved) != 1 || !saver.saved[0].Success {
		t.Fatalf("saved = %+v", saver.saved)
	}
	end := next(s)().(quizEndMsg)
	_, cmd := s.Update(end)
	msg := cmd().(router.ReplaceScreenMsg)
	if msg.Screen.Title() != "Challenge Result" {
		t.Errorf("title = %q", msg.Screen.Title())
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, _ := newQuiz(t, 3, false)
	if !s.InterceptsBack() {
		t.Fatal("running quiz should intercept back")
	}

	var scr screen.Screen = s
	scr, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil || !scr.(*QuizScreen).confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = scr.Update(keyPress('n'))
	if scr.(*QuizScreen).confirmQuit {
		t.Error("N should dismiss the confirmation")
	}

	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd = scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuizScreen_StaleTimers(t *testing.T) {
	s, _ := newQuiz(t, 3, false)

	_, cmd := s.Update(revealMsg{index: 2})
	if cmd != nil || s.card.Phase() != components.RevealNone {
		t.Error("reveal for another question should be ignored")
	}

	_, cmd = s.Update(revealMsg{index: 0})
	if cmd == nil || s.card.Phase() != components.RevealFlashing {
		t.Fatal("expected flash for current question")
	}
	s.Update(revealShownMsg{index: 0})
	if s.card.Phase() != components.RevealShown {
		t.Error("expected answer shown")
	}

	s = answer(t, s, '2')
	_, cmd = s.Update(feedbackDoneMsg{answered: 0})
	if cmd != nil || !s.showing {
		t.Error("stale feedback timer should be ignored")
	}
}

func TestQuizScreen_View(t *testing.T) {
	s, _ := newQuiz(t, 2, false)
	if s.View(80, 24) == "" {
		t.Error("expected question view")
	}
	s.confirmQuit = true
	if s.View(80, 24) == "" {
		t.Error("expected confirm view")
	}
}

func TestQuizScreen_KeysAfterLastAnswerIgnored(t *testing.T) {
	s, rec := newQuiz(t, 1, false)
	s = answer(t, s, '2')

	if cmd := next(s); cmd == nil {
		t.Fatal("expected end command")
	}
	if s.card != nil {
		t.Error("finished quiz should drop the answered card")
	}

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('2'))
	if cmd != nil {
		t.Error("key after the last answer should do nothing")
	}
	if scr.(*QuizScreen).errMsg != "" {
		t.Errorf("unexpected error %q", scr.(*QuizScreen).errMsg)
	}
	if len(rec.answers) != 1 {
		t.Errorf("answers = %v, want one", rec.answers)
	}
}
