package services

import "math"

type NutritionStatus string

const (
	NutritionExcellent  NutritionStatus = "excellent"
	NutritionGood       NutritionStatus = "good"
	NutritionFair       NutritionStatus = "fair"
	NutritionPoor       NutritionStatus = "poor"
	NutritionIncomplete NutritionStatus = "incomplete"
	NutritionSkipped    NutritionStatus = "skipped"
)

type ActivityStatus string

const (
	ActivityExcellent ActivityStatus = "excellent"
	ActivityGood      ActivityStatus = "good"
	ActivityFair      ActivityStatus = "fair"
	ActivityPoor      ActivityStatus = "poor"
)

type StatusPresentation struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

const (
	excellentThreshold = 80
	goodThreshold      = 60
	fairThreshold      = 40
)

func ClampScore(score float64) float64 {
	if math.IsNaN(score) || score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ClassifyNutrition maps a stored nutrition score to a tier. hasRecord is false
// when the user never opened an eating day for the date.
func ClassifyNutrition(score *float64, hasRecord bool) NutritionStatus {
	if !hasRecord {
		return NutritionSkipped
	}
	if score == nil {
		return NutritionIncomplete
	}
	value := ClampScore(*score)
	switch {
	case value >= excellentThreshold:
		return NutritionExcellent
	case value >= goodThreshold:
		return NutritionGood
	case value >= fairThreshold:
		return NutritionFair
	case value > 0:
		return NutritionPoor
	default:
		return NutritionIncomplete
	}
}

func ClassifyActivity(score float64) ActivityStatus {
	value := ClampScore(score)
	switch {
	case value >= excellentThreshold:
		return ActivityExcellent
	case value >= goodThreshold:
		return ActivityGood
	case value >= fairThreshold:
		return ActivityFair
	default:
		return ActivityPoor
	}
}

func (status NutritionStatus) Presentation() StatusPresentation {
	switch status {
	case NutritionExcellent:
		return StatusPresentation{Color: "green", Icon: "🌟"}
	case NutritionGood:
		return StatusPresentation{Color: "blue", Icon: "👍"}
	case NutritionFair:
		return StatusPresentation{Color: "yellow", Icon: "👌"}
	case NutritionPoor:
		return StatusPresentation{Color: "red", Icon: "⚠️"}
	case NutritionIncomplete:
		return StatusPresentation{Color: "orange", Icon: "⏳"}
	case NutritionSkipped:
		return StatusPresentation{Color: "gray", Icon: "➖"}
	default:
		return StatusPresentation{Color: "gray", Icon: "❔"}
	}
}

func (status ActivityStatus) Presentation() StatusPresentation {
	switch status {
	case ActivityExcellent:
		return StatusPresentation{Color: "green", Icon: "🏆"}
	case ActivityGood:
		return StatusPresentation{Color: "blue", Icon: "💪"}
	case ActivityFair:
		return StatusPresentation{Color: "yellow", Icon: "🚶"}
	case ActivityPoor:
		return StatusPresentation{Color: "red", Icon: "🛋️"}
	default:
		return StatusPresentation{Color: "gray", Icon: "❔"}
	}
}

func (status NutritionStatus) MessageKey() string {
	return "status." + string(status)
}

func (status ActivityStatus) MessageKey() string {
	return "status." + string(status)
}

func StatusMessageKeys() []string {
	statuses := []NutritionStatus{
		NutritionExcellent, NutritionGood, NutritionFair, NutritionPoor, NutritionIncomplete, NutritionSkipped,
	}
	keys := make([]string, 0, len(statuses))
	for _, status := range statuses {
		keys = append(keys, status.MessageKey())
	}
	return keys
}
