package services

import (
	"math"

	"github.com/yannix2/medmind/internal/models"
)

const (
	minutesPerDay          = 24 * 60
	sleepComponentMax      = 50
	exerciseMinutesMax     = 30
	exerciseCaloriesMax    = 10
	activeDayBonus         = 10
	exerciseMinutesTarget  = 30
	exerciseCaloriesTarget = 300
)

type ActivityBreakdown struct {
	SleepMinutes     int            `json:"sleep_minutes"`
	HasSleep         bool           `json:"has_sleep"`
	ExerciseMinutes  int            `json:"exercise_minutes"`
	ExerciseCalories float64        `json:"exercise_calories"`
	Sessions         int            `json:"sessions"`
	Score            float64        `json:"score"`
	Status           ActivityStatus `json:"status"`
}

// SleepMinutes returns the length of a sleep window given as HH:MM times.
// Windows ending at or before their start cross midnight.
func SleepMinutes(start string, end string) (int, bool) {
	startMinutes, ok := ParseTimeOfDay(start)
	if !ok {
		return 0, false
	}
	endMinutes, ok := ParseTimeOfDay(end)
	if !ok {
		return 0, false
	}
	if endMinutes == startMinutes {
		return 0, false
	}
	if endMinutes < startMinutes {
		endMinutes += minutesPerDay
	}
	return endMinutes - startMinutes, true
}

func SessionCalories(session models.SportSession) float64 {
	if session.CaloriesBurned != nil {
		return sanitizeQuantity(*session.CaloriesBurned)
	}
	if session.DurationMinutes <= 0 {
		return 0
	}
	return float64(session.DurationMinutes) * session.EffectiveIntensity().CaloriesPerMinute()
}

func ScoreActivityDay(day models.ActivityDay) ActivityBreakdown {
	breakdown := ActivityBreakdown{}
	breakdown.SleepMinutes, breakdown.HasSleep = SleepMinutes(day.SleepStart, day.SleepEnd)

	for _, session := range day.Sports {
		if session.DurationMinutes <= 0 {
			continue
		}
		breakdown.Sessions++
		breakdown.ExerciseMinutes += session.DurationMinutes
		breakdown.ExerciseCalories += SessionCalories(session)
	}

	score := sleepComponent(breakdown.SleepMinutes)
	score += math.Min(float64(breakdown.ExerciseMinutes)/exerciseMinutesTarget, 1) * exerciseMinutesMax
	score += math.Min(breakdown.ExerciseCalories/exerciseCaloriesTarget, 1) * exerciseCaloriesMax
	if day.ActiveGeneral {
		score += activeDayBonus
	}

	breakdown.Score = ClampScore(math.Round(score))
	breakdown.Status = ClassifyActivity(breakdown.Score)
	return breakdown
}

// ResolveActivityScore prefers the stored score and recomputes it otherwise.
func ResolveActivityScore(day models.ActivityDay) float64 {
	if day.ActivityScore != nil {
		return ClampScore(*day.ActivityScore)
	}
	return ScoreActivityDay(day).Score
}

func sleepComponent(minutes int) float64 {
	hours := float64(minutes) / 60
	switch {
	case hours <= 0:
		return 0
	case hours >= 7 && hours <= 9:
		return sleepComponentMax
	case hours >= 6 && hours <= 10:
		return 35
	case hours >= 5 && hours <= 11:
		return 20
	default:
		return 10
	}
}
