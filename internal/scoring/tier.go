package scoring

import "strings"

// Tier is the qualitative feedback bucket.
type Tier int

// Feedback tiers, best first.
const (
	TierBest Tier = iota
	TierGood
	TierFair
	TierPoor
	TierMismatch
)

// Feedback is the symbol and message shown for a tier.
type Feedback struct {
	Symbol  string
	Message string
}

// String renders the feedback as shown to the user.
func (f Feedback) String() string {
	return f.Symbol + " " + f.Message
}

var feedbackByTier = map[Tier]Feedback{
	TierBest:     {Symbol: "🌟", Message: "Excellent! You're a pro!"},
	TierGood:     {Symbol: "😊", Message: "Great job! Keep practicing!"},
	TierFair:     {Symbol: "😐", Message: "Good effort, but there's room for improvement!"},
	TierPoor:     {Symbol: "😟", Message: "Don't worry, keep practicing and you'll get better!"},
	TierMismatch: {Symbol: "😕", Message: "Oops! You missed some parts. Try again!"},
}

// Feedback returns the fixed feedback for the tier.
func (t Tier) Feedback() Feedback {
	return feedbackByTier[t]
}

func (t Tier) String() string {
	switch t {
	case TierBest:
		return "best"
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	case TierPoor:
		return "poor"
	case TierMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Classify assigns a tier. Scores only count when the trimmed texts match
// exactly. The best tier accepts wpm == 10 while good and fair require wpm > 10.
func Classify(sample, typed string, accuracy, wpm float64) Tier {
	if strings.TrimSpace(typed) != strings.TrimSpace(sample) {
		return TierMismatch
	}
	switch {
	case accuracy >= 90 && wpm >= 10:
		return TierBest
	case accuracy >= 80 && accuracy < 90 && wpm > 10:
		return TierGood
	case accuracy >= 60 && accuracy < 80 && wpm > 10:
		return TierFair
	default:
		return TierPoor
	}
}
