package components

import "math/rand/v2"

var positiveMessages = []string{
	"Awesome work!",
	"Great job, keep it up!",
	"You nailed it!",
	"Correct! You're on fire!",
	"Brilliant answer!",
	"Right on the money, and the change too!",
	"That answer was integral to your success!",
	"You've really multiplied your skills!",
	"You just added another win!",
	"You've got the right angle!",
	"You're really in your prime!",
	"That answer was off the charts!",
}

var encouragementMessages = []string{
	"Almost! You'll get it next time.",
	"Keep going, you're learning with every try!",
	"Mistakes help us grow!",
	"Close one, you've got this!",
	"Shake it off and try again!",
	"That one didn't add up, but the next one will!",
	"You can count on yourself next time!",
	"No need to feel divided, you've got this!",
	"Even the best mathematicians have their minus moments.",
	"It's just one problem, don't let it multiply!",
	"Stay positive! (like numbers)",
}

// FeedbackMessage picks a random cheer for a correct answer or an
// encouragement for a wrong one.
func FeedbackMessage(rng *rand.Rand, correct bool) string {
	list := encouragementMessages
	if correct {
		list = positiveMessages
	}
	return list[rng.IntN(len(list))]
}
