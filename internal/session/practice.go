package session

// Practice tallies an open-ended adaptive drill.
type Practice struct {
	Answered   int
	Correct    int
	Streak     int
	BestStreak int
}

// RecordPractice returns p with one more answer applied.
func RecordPractice(p Practice, correct bool) Practice {
	p.Answered++
	if !correct {
		p.Streak = 0
		return p
	}
	p.Correct++
	p.Streak++
	if p.Streak > p.BestStreak {
		p.BestStreak = p.Streak
	}
	return p
}
