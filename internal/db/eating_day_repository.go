package db

import (
	"errors"
	"time"

	"github.com/yannix2/medmind/internal/models"
	"gorm.io/gorm"
)

var ErrEatingDayDateRequired = errors.New("eating day date is required")

type EatingDayRepository struct {
	database *gorm.DB
}

func NewEatingDayRepository(database *gorm.DB) *EatingDayRepository {
	return &EatingDayRepository{database: database}
}

func (repo *EatingDayRepository) ListEatingDays(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.EatingDay, error) {
	query := repo.database.Model(&models.EatingDay{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", calendarDate(*fromStart))
	}
	if toEnd != nil {
		query = query.Where("date < ?", calendarDate(*toEnd))
	}

	days := make([]models.EatingDay, 0)
	if err := query.
		Preload("Meals", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("Meals.Foods", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("date ASC, id ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *EatingDayRepository) FindByUserAndDate(userID uint, day time.Time) (models.EatingDay, bool, error) {
	entry := models.EatingDay{}
	result := repo.database.
		Preload("Meals.Foods").
		Where("user_id = ? AND date = ?", userID, calendarDate(day)).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.EatingDay{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.EatingDay{}, false, nil
	}
	return entry, true, nil
}

// Upsert stores day as the only eating record of its user and date, replacing
// any meals previously stored for it.
func (repo *EatingDayRepository) Upsert(day *models.EatingDay) error {
	if day.Date.IsZero() {
		return ErrEatingDayDateRequired
	}
	day.Date = calendarDate(day.Date)
	if day.NumberOfMeals == 0 {
		day.NumberOfMeals = len(day.Meals)
	}

	return repo.database.Transaction(func(tx *gorm.DB) error {
		existing := models.EatingDay{}
		result := tx.Where("user_id = ? AND date = ?", day.UserID, day.Date).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			if err := deleteEatingDayMeals(tx, existing.ID); err != nil {
				return err
			}
			day.ID = existing.ID
			day.CreatedAt = existing.CreatedAt
		} else {
			day.ID = 0
		}

		for mealIndex := range day.Meals {
			day.Meals[mealIndex].ID = 0
			day.Meals[mealIndex].EatingDayID = 0
			for foodIndex := range day.Meals[mealIndex].Foods {
				day.Meals[mealIndex].Foods[foodIndex].ID = 0
				day.Meals[mealIndex].Foods[foodIndex].MealID = 0
			}
		}

		return tx.Save(day).Error
	})
}

func (repo *EatingDayRepository) DeleteByUserAndDate(userID uint, day time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		existing := models.EatingDay{}
		result := tx.Where("user_id = ? AND date = ?", userID, calendarDate(day)).Limit(1).Find(&existing)
		if result.Error != nil || result.RowsAffected == 0 {
			return result.Error
		}
		if err := deleteEatingDayMeals(tx, existing.ID); err != nil {
			return err
		}
		return tx.Delete(&models.EatingDay{}, existing.ID).Error
	})
}

func deleteEatingDayMeals(tx *gorm.DB, eatingDayID uint) error {
	mealIDs := tx.Model(&models.Meal{}).Select("id").Where("eating_day_id = ?", eatingDayID)
	if err := tx.Where("meal_id IN (?)", mealIDs).Delete(&models.FoodEntry{}).Error; err != nil {
		return err
	}
	return tx.Where("eating_day_id = ?", eatingDayID).Delete(&models.Meal{}).Error
}
