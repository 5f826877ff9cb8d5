package services

type FeedbackBand string

const (
	FeedbackOutstanding    FeedbackBand = "outstanding"
	FeedbackExcellent      FeedbackBand = "excellent"
	FeedbackGreat          FeedbackBand = "great"
	FeedbackGood           FeedbackBand = "good"
	FeedbackFair           FeedbackBand = "fair"
	FeedbackNeedsAttention FeedbackBand = "needs_attention"
)

type Feedback struct {
	Band        FeedbackBand `json:"band"`
	Score       float64      `json:"score"`
	Emoji       string       `json:"emoji"`
	HeadlineKey string       `json:"headline_key"`
	SubtextKey  string       `json:"subtext_key"`
	TipKeys     []string     `json:"tip_keys"`
}

type LocalizedFeedback struct {
	Band     FeedbackBand `json:"band"`
	Score    float64      `json:"score"`
	Emoji    string       `json:"emoji"`
	Headline string       `json:"headline"`
	Subtext  string       `json:"subtext"`
	Tips     []string     `json:"tips"`
}

func FeedbackBandForScore(score float64) FeedbackBand {
	value := ClampScore(score)
	switch {
	case value >= 90:
		return FeedbackOutstanding
	case value >= 80:
		return FeedbackExcellent
	case value >= 70:
		return FeedbackGreat
	case value >= 60:
		return FeedbackGood
	case value >= 50:
		return FeedbackFair
	default:
		return FeedbackNeedsAttention
	}
}

func (band FeedbackBand) Emoji() string {
	switch band {
	case FeedbackOutstanding:
		return "🏆"
	case FeedbackExcellent:
		return "🌟"
	case FeedbackGreat:
		return "🎉"
	case FeedbackGood:
		return "👍"
	case FeedbackFair:
		return "🙂"
	default:
		return "💡"
	}
}

// SelectFeedback picks the message bundle for an overall score. Tips nudge the
// user to log whatever is missing for the day.
func SelectFeedback(score float64, hasNutrition bool, hasActivity bool) Feedback {
	band := FeedbackBandForScore(score)
	return Feedback{
		Band:        band,
		Score:       ClampScore(score),
		Emoji:       band.Emoji(),
		HeadlineKey: "feedback." + string(band) + ".headline",
		SubtextKey:  "feedback." + string(band) + ".subtext",
		TipKeys:     feedbackTipKeys(band, hasNutrition, hasActivity),
	}
}

func feedbackTipKeys(band FeedbackBand, hasNutrition bool, hasActivity bool) []string {
	tips := make([]string, 0, 3)
	if hasNutrition {
		tips = append(tips, "feedback.tip.vary_foods")
	} else {
		tips = append(tips, "feedback.tip.log_meals")
	}
	if hasActivity {
		tips = append(tips, "feedback.tip.vary_activity")
	} else {
		tips = append(tips, "feedback.tip.log_activity")
	}

	switch band {
	case FeedbackOutstanding, FeedbackExcellent:
		tips = append(tips, "feedback.tip.keep_going")
	case FeedbackGreat, FeedbackGood:
		tips = append(tips, "feedback.tip.hydrate")
	default:
		tips = append(tips, "feedback.tip.small_steps")
	}
	return tips
}

func (feedback Feedback) Localize(translate func(key string) string) LocalizedFeedback {
	tips := make([]string, 0, len(feedback.TipKeys))
	for _, key := range feedback.TipKeys {
		tips = append(tips, translate(key))
	}
	return LocalizedFeedback{
		Band:     feedback.Band,
		Score:    feedback.Score,
		Emoji:    feedback.Emoji,
		Headline: translate(feedback.HeadlineKey),
		Subtext:  translate(feedback.SubtextKey),
		Tips:     tips,
	}
}

// FeedbackMessageKeys lists every catalog key SelectFeedback can produce.
func FeedbackMessageKeys() []string {
	bands := []FeedbackBand{
		FeedbackOutstanding, FeedbackExcellent, FeedbackGreat, FeedbackGood, FeedbackFair, FeedbackNeedsAttention,
	}
	keys := make([]string, 0, len(bands)*2+7)
	for _, band := range bands {
		keys = append(keys, "feedback."+string(band)+".headline", "feedback."+string(band)+".subtext")
	}
	return append(keys,
		"feedback.tip.vary_foods",
		"feedback.tip.log_meals",
		"feedback.tip.vary_activity",
		"feedback.tip.log_activity",
		"feedback.tip.keep_going",
		"feedback.tip.hydrate",
		"feedback.tip.small_steps",
	)
}
