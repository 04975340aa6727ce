package quiz

import "github.com/abhisek/mathfacts/internal/session"

type revealMsg struct{ index int }

type revealShownMsg struct{ index int }

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct{ answered int }

// quizEndMsg is sent once the runner reports the session done.
type quizEndMsg struct {
	Summary session.Summary
}
