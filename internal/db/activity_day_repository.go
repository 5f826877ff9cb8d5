package db

import (
	"errors"
	"time"

	"github.com/yannix2/medmind/internal/models"
	"gorm.io/gorm"
)

var ErrActivityDayDateRequired = errors.New("activity day date is required")

type ActivityDayRepository struct {
	database *gorm.DB
}

func NewActivityDayRepository(database *gorm.DB) *ActivityDayRepository {
	return &ActivityDayRepository{database: database}
}

func (repo *ActivityDayRepository) ListActivityDays(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.ActivityDay, error) {
	query := repo.database.Model(&models.ActivityDay{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", calendarDate(*fromStart))
	}
	if toEnd != nil {
		query = query.Where("date < ?", calendarDate(*toEnd))
	}

	days := make([]models.ActivityDay, 0)
	if err := query.
		Preload("Sports", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("date ASC, id ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *ActivityDayRepository) Upsert(day *models.ActivityDay) error {
	if day.Date.IsZero() {
		return ErrActivityDayDateRequired
	}
	day.Date = calendarDate(day.Date)

	return repo.database.Transaction(func(tx *gorm.DB) error {
		existing := models.ActivityDay{}
		result := tx.Where("user_id = ? AND date = ?", day.UserID, day.Date).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			if err := tx.Where("activity_day_id = ?", existing.ID).Delete(&models.SportSession{}).Error; err != nil {
				return err
			}
			day.ID = existing.ID
			day.CreatedAt = existing.CreatedAt
		} else {
			day.ID = 0
		}

		for index := range day.Sports {
			day.Sports[index].ID = 0
			day.Sports[index].ActivityDayID = 0
		}

		return tx.Save(day).Error
	})
}
