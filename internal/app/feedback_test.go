package app

import "testing"

func TestFeedbackTiers(t *testing.T) {
	cases := []struct {
		name    string
		score   int
		total   int
		tier    Tier
		icon    string
		color   string
		message string
	}{
		{"perfect", 5, 5, TierHigh, "star.fill", "yellow", msgPerfect},
		{"high boundary 0.8", 4, 5, TierHigh, "star.fill", "yellow", msgHigh},
		{"mid 0.6", 3, 5, TierMid, "hand.thumbsup.fill", "blue", msgMid},
		{"mid boundary 0.5", 1, 2, TierMid, "hand.thumbsup.fill", "blue", msgMid},
		{"just below high", 7, 9, TierMid, "hand.thumbsup.fill", "blue", msgMid},
		{"low 0.4", 2, 5, TierLow, "book.fill", "gray", msgLow},
		{"just below mid", 4, 9, TierLow, "book.fill", "gray", msgLow},
		{"zero", 0, 5, TierLow, "book.fill", "gray", msgZero},
		{"no questions", 0, 0, TierLow, "book.fill", "gray", msgZero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FeedbackFor(tc.score, tc.total)
			want := Feedback{Tier: tc.tier, Icon: tc.icon, Color: tc.color, Message: tc.message}
			if got != want {
				t.Fatalf("FeedbackFor(%d,%d) = %+v, want %+v", tc.score, tc.total, got, want)
			}
		})
	}
}

func TestFeedbackMessagesDistinct(t *testing.T) {
	if FeedbackFor(2, 5).Message == FeedbackFor(0, 5).Message {
		t.Fatalf("zero score should have its own message")
	}
	if FeedbackFor(5, 5).Message == FeedbackFor(4, 5).Message {
		t.Fatalf("perfect score should have its own message")
	}
}

func TestRatio(t *testing.T) {
	cases := []struct {
		score, total int
		want         float64
	}{
		{5, 5, 1.0},
		{4, 5, 0.8},
		{0, 5, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := Ratio(tc.score, tc.total); got != tc.want {
			t.Fatalf("Ratio(%d,%d) = %v, want %v", tc.score, tc.total, got, tc.want)
		}
	}
}
