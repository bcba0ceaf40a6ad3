package app

// Tier is the qualitative band a score falls into.
type Tier string

const (
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

// Feedback is what the results screen shows next to the score.
type Feedback struct {
	Tier    Tier   `json:"tier"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Message string `json:"message"`
}

const (
	msgPerfect = "Perfect! You got all the answers right!"
	msgHigh    = "Great job! You really know your stuff!"
	msgMid     = "Not bad! Keep learning and try again!"
	msgLow     = "Keep studying and you'll improve!"
	msgZero    = "Time to hit the books and try again!"
)

// Ratio returns score/total, or 0 when there are no questions. Renderers use it
// to show a percentage; tiers never go through floats.
func Ratio(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total)
}

// FeedbackFor maps a score to its tier, icon, color and message.
// Bounds are closed below: 0.8 is high, 0.5 is mid. Comparisons are done on
// integers so 4/5 and 1/2 land exactly on the boundary.
func FeedbackFor(score, total int) Feedback {
	if total <= 0 || score <= 0 {
		return Feedback{Tier: TierLow, Icon: "book.fill", Color: "gray", Message: msgZero}
	}
	switch {
	case score*5 >= total*4:
		msg := msgHigh
		if score >= total {
			msg = msgPerfect
		}
		return Feedback{Tier: TierHigh, Icon: "star.fill", Color: "yellow", Message: msg}
	case score*2 >= total:
		return Feedback{Tier: TierMid, Icon: "hand.thumbsup.fill", Color: "blue", Message: msgMid}
	default:
		return Feedback{Tier: TierLow, Icon: "book.fill", Color: "gray", Message: msgLow}
	}
}
