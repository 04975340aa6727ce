package problemgen

// PresentationTier is a rung of the attempt-count ladder.
type PresentationTier int

const (
	// TierHinted is a typed question with the answer pre-filled.
	TierHinted PresentationTier = iota + 1

	// TierTwoChoice offers the answer and one far distractor.
	TierTwoChoice

	// TierThreeChoice offers the answer, a close and a far distractor.
	TierThreeChoice

	// TierTyped is a typed question with no hint.
	TierTyped
)

// Tier maps an attempt count (after increment) to its presentation tier.
// Zero is treated as a first presentation.
func Tier(attempts uint) PresentationTier {
	switch {
	case attempts <= 1:
		return TierHinted
	case attempts == 2:
		return TierTwoChoice
	case attempts == 3:
		return TierThreeChoice
	default:
		return TierTyped
	}
}

func (t PresentationTier) String() string {
	switch t {
	case TierHinted:
		return "typed+hint"
	case TierTwoChoice:
		return "two-choice"
	case TierThreeChoice:
		return "three-choice"
	case TierTyped:
		return "typed"
	}
	return "unknown"
}

// TierFor recovers the tier a question was presented in.
func TierFor(q *Question) PresentationTier {
	switch {
	case q.Mode == ModeMultipleChoice && len(q.Options) == 2:
		return TierTwoChoice
	case q.Mode == ModeMultipleChoice:
		return TierThreeChoice
	case q.Placeholder != "":
		return TierHinted
	default:
		return TierTyped
	}
}
