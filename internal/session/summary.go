package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration       time.Duration
	TotalQuestions int
	Answered       int
	TotalCorrect   int
	Accuracy       int
	Missed         []string
}

// BuildSummary creates a Summary from a session state. Missed lists the
// question texts whose latest result is Incorrect.
func BuildSummary(s State, elapsed time.Duration) Summary {
	var missed []string
	for i, r := range s.Results {
		if r == Incorrect {
			missed = append(missed, s.Questions[i].Text())
		}
	}
	return Summary{
		Duration:       elapsed,
		TotalQuestions: len(s.Questions),
		Answered:       s.Answered,
		TotalCorrect:   s.CorrectCount,
		Accuracy:       Accuracy(s),
		Missed:         missed,
	}
}
