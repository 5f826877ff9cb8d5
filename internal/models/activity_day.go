package models

import (
	"strings"
	"time"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityVeryHigh Intensity = "very_high"
)

func ParseIntensity(raw string) (Intensity, bool) {
	switch candidate := Intensity(strings.ToLower(strings.TrimSpace(raw))); candidate {
	case IntensityLow, IntensityModerate, IntensityHigh, IntensityVeryHigh:
		return candidate, true
	default:
		return "", false
	}
}

// CaloriesPerMinute is the estimated burn rate used when a session has no calories.
func (intensity Intensity) CaloriesPerMinute() float64 {
	switch intensity {
	case IntensityLow:
		return 4
	case IntensityHigh:
		return 10
	case IntensityVeryHigh:
		return 13
	default:
		return 7
	}
}

type SportType string

const (
	SportRunning          SportType = "running"
	SportWalking          SportType = "walking"
	SportCycling          SportType = "cycling"
	SportSwimming         SportType = "swimming"
	SportHiking           SportType = "hiking"
	SportYoga             SportType = "yoga"
	SportPilates          SportType = "pilates"
	SportStrengthTraining SportType = "strength_training"
	SportCrossfit         SportType = "crossfit"
	SportHIIT             SportType = "hiit"
	SportDancing          SportType = "dancing"
	SportFootball         SportType = "football"
	SportBasketball       SportType = "basketball"
	SportTennis           SportType = "tennis"
	SportVolleyball       SportType = "volleyball"
	SportBadminton        SportType = "badminton"
	SportBoxing           SportType = "boxing"
	SportMartialArts      SportType = "martial_arts"
	SportRowing           SportType = "rowing"
	SportClimbing         SportType = "climbing"
	SportSkiing           SportType = "skiing"
	SportSkating          SportType = "skating"
	SportGolf             SportType = "golf"
	SportTableTennis      SportType = "table_tennis"
	SportStretching       SportType = "stretching"
	SportElliptical       SportType = "elliptical"
	SportOther            SportType = "other"
)

func AllSportTypes() []SportType {
	return []SportType{
		SportRunning, SportWalking, SportCycling, SportSwimming, SportHiking,
		SportYoga, SportPilates, SportStrengthTraining, SportCrossfit, SportHIIT,
		SportDancing, SportFootball, SportBasketball, SportTennis, SportVolleyball,
		SportBadminton, SportBoxing, SportMartialArts, SportRowing, SportClimbing,
		SportSkiing, SportSkating, SportGolf, SportTableTennis, SportStretching,
		SportElliptical, SportOther,
	}
}

func ParseSportType(raw string) (SportType, bool) {
	candidate := SportType(strings.ToLower(strings.TrimSpace(raw)))
	for _, sport := range AllSportTypes() {
		if sport == candidate {
			return sport, true
		}
	}
	return "", false
}

// DefaultIntensity is used for sessions logged without an explicit intensity.
func (sport SportType) DefaultIntensity() Intensity {
	switch sport {
	case SportWalking, SportYoga, SportPilates, SportGolf, SportStretching, SportTableTennis:
		return IntensityLow
	case SportRunning, SportSwimming, SportFootball, SportBasketball, SportBoxing, SportMartialArts, SportRowing, SportClimbing:
		return IntensityHigh
	case SportCrossfit, SportHIIT:
		return IntensityVeryHigh
	default:
		return IntensityModerate
	}
}

type SportSession struct {
	ID              uint      `gorm:"primaryKey"`
	ActivityDayID   uint      `gorm:"not null;index"`
	SportType       SportType `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	Intensity       Intensity
	CaloriesBurned  *float64
}

// EffectiveIntensity falls back to the sport's default when the session has none.
func (session SportSession) EffectiveIntensity() Intensity {
	if intensity, ok := ParseIntensity(string(session.Intensity)); ok {
		return intensity
	}
	return session.SportType.DefaultIntensity()
}

type ActivityDay struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_activity_user_date"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:uidx_activity_user_date"`
	SleepStart    string
	SleepEnd      string
	ActiveGeneral bool           `gorm:"not null;default:false"`
	Sports        []SportSession `gorm:"foreignKey:ActivityDayID;constraint:OnDelete:CASCADE"`
	ActivityScore *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (day ActivityDay) WithSession(session SportSession) ActivityDay {
	updated := day
	updated.Sports = append(cloneSessions(day.Sports), session)
	return updated
}

func (day ActivityDay) WithSleep(start string, end string) ActivityDay {
	updated := day
	updated.Sports = cloneSessions(day.Sports)
	updated.SleepStart = strings.TrimSpace(start)
	updated.SleepEnd = strings.TrimSpace(end)
	return updated
}

func (day ActivityDay) WithActivityScore(score float64) ActivityDay {
	updated := day
	updated.Sports = cloneSessions(day.Sports)
	updated.ActivityScore = &score
	return updated
}

func cloneSessions(sessions []SportSession) []SportSession {
	if sessions == nil {
		return nil
	}
	cloned := make([]SportSession, len(sessions))
	copy(cloned, sessions)
	return cloned
}
