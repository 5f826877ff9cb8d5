package services

import "math"

const (
	nutritionWeight     = 0.6
	activityWeight      = 0.4
	neutralOverallScore = 50
)

// CombineScores blends nutrition and activity into the overall health score.
// With no data at all it returns a neutral score rather than zero.
func CombineScores(nutrition *float64, activity *float64) float64 {
	switch {
	case nutrition != nil && activity != nil:
		return ClampScore(math.Round(ClampScore(*nutrition)*nutritionWeight + ClampScore(*activity)*activityWeight))
	case nutrition != nil:
		return ClampScore(*nutrition)
	case activity != nil:
		return ClampScore(*activity)
	default:
		return neutralOverallScore
	}
}
