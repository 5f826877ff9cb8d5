package db

import (
	"time"

	"gorm.io/gorm"
)

type Repositories struct {
	EatingDays   *EatingDayRepository
	ActivityDays *ActivityDayRepository
	Profiles     *ProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		EatingDays:   NewEatingDayRepository(database),
		ActivityDays: NewActivityDayRepository(database),
		Profiles:     NewProfileRepository(database),
	}
}

// calendarDate drops the clock and zone of value, keeping its wall-clock date
// as UTC midnight.
func calendarDate(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
