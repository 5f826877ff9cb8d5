package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yannix2/medmind/internal/models"
	"github.com/yannix2/medmind/internal/services"
)

var (
	ErrBatchInvalid        = errors.New("records batch is invalid")
	ErrUserIDRequired      = errors.New("user_id is required")
	ErrRecordDateInvalid   = errors.New("record date is invalid")
	ErrMealTypeInvalid     = errors.New("meal type is invalid")
	ErrMealTypeDuplicate   = errors.New("meal type is repeated within a day")
	ErrSportTypeInvalid    = errors.New("sport type is invalid")
	ErrIntensityInvalid    = errors.New("intensity is invalid")
	ErrSessionDurationZero = errors.New("sport session duration must be positive")
	ErrSleepTimeInvalid    = errors.New("sleep time must be HH:MM")
)

type RecordBatch struct {
	UserID       uint                `json:"user_id"`
	Profile      *ProfileRecord      `json:"profile,omitempty"`
	EatingDays   []EatingDayRecord   `json:"eating_days"`
	ActivityDays []ActivityDayRecord `json:"activity_days"`
}

type ProfileRecord struct {
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Sex    string  `json:"sex"`
}

type EatingDayRecord struct {
	Date           string       `json:"date"`
	NumberOfMeals  int          `json:"number_of_meals"`
	Meals          []MealRecord `json:"meals"`
	NutritionScore *float64     `json:"nutrition_score"`
}

type MealRecord struct {
	MealType string       `json:"meal_type"`
	Foods    []FoodRecord `json:"foods"`
}

type FoodRecord struct {
	Name     string  `json:"name"`
	Portion  float64 `json:"portion"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fibres   float64 `json:"fibres"`
	Fats     float64 `json:"fats"`
	Sugars   float64 `json:"sugars"`
}

type ActivityDayRecord struct {
	Date          string          `json:"date"`
	SleepStart    string          `json:"sleep_start"`
	SleepEnd      string          `json:"sleep_end"`
	ActiveGeneral bool            `json:"active_general"`
	Sports        []SessionRecord `json:"sports"`
	ActivityScore *float64        `json:"activity_score"`
}

type SessionRecord struct {
	SportType       string   `json:"sport_type"`
	DurationMinutes int      `json:"duration_minutes"`
	Intensity       string   `json:"intensity"`
	CaloriesBurned  *float64 `json:"calories_burned"`
}

func (record ProfileRecord) toModel(userID uint) models.UserProfile {
	return models.UserProfile{
		UserID:   userID,
		Age:      record.Age,
		WeightKg: record.Weight,
		HeightCm: record.Height,
		Sex:      models.ParseSex(record.Sex),
	}
}

func (record EatingDayRecord) toModel(userID uint) (models.EatingDay, error) {
	date, err := parseRecordDate(record.Date)
	if err != nil {
		return models.EatingDay{}, err
	}

	day := models.EatingDay{
		UserID:         userID,
		Date:           date,
		NumberOfMeals:  record.NumberOfMeals,
		NutritionScore: record.NutritionScore,
	}
	for _, mealRecord := range record.Meals {
		mealType, ok := models.ParseMealType(mealRecord.MealType)
		if !ok {
			return models.EatingDay{}, fmt.Errorf("%w: %q on %s", ErrMealTypeInvalid, mealRecord.MealType, record.Date)
		}
		if _, exists := day.MealByType(mealType); exists {
			return models.EatingDay{}, fmt.Errorf("%w: %s on %s", ErrMealTypeDuplicate, mealType, record.Date)
		}
		meal := models.Meal{MealType: mealType}
		for _, food := range mealRecord.Foods {
			meal = meal.WithFood(models.FoodEntry{
				Name:     strings.TrimSpace(food.Name),
				Portion:  food.Portion,
				Calories: food.Calories,
				Proteins: food.Proteins,
				Carbs:    food.Carbs,
				Fibres:   food.Fibres,
				Fats:     food.Fats,
				Sugars:   food.Sugars,
			})
		}
		day = day.WithMeal(meal)
	}
	return day, nil
}

func (record ActivityDayRecord) toModel(userID uint) (models.ActivityDay, error) {
	date, err := parseRecordDate(record.Date)
	if err != nil {
		return models.ActivityDay{}, err
	}
	for _, value := range []string{record.SleepStart, record.SleepEnd} {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, ok := services.ParseTimeOfDay(value); !ok {
			return models.ActivityDay{}, fmt.Errorf("%w: %q on %s", ErrSleepTimeInvalid, value, record.Date)
		}
	}

	day := models.ActivityDay{
		UserID:        userID,
		Date:          date,
		ActiveGeneral: record.ActiveGeneral,
		ActivityScore: record.ActivityScore,
	}.WithSleep(record.SleepStart, record.SleepEnd)

	for _, sessionRecord := range record.Sports {
		sportType, ok := models.ParseSportType(sessionRecord.SportType)
		if !ok {
			return models.ActivityDay{}, fmt.Errorf("%w: %q on %s", ErrSportTypeInvalid, sessionRecord.SportType, record.Date)
		}
		if sessionRecord.DurationMinutes <= 0 {
			return models.ActivityDay{}, fmt.Errorf("%w: %s on %s", ErrSessionDurationZero, sportType, record.Date)
		}
		session := models.SportSession{
			SportType:       sportType,
			DurationMinutes: sessionRecord.DurationMinutes,
			CaloriesBurned:  sessionRecord.CaloriesBurned,
		}
		if strings.TrimSpace(sessionRecord.Intensity) != "" {
			intensity, ok := models.ParseIntensity(sessionRecord.Intensity)
			if !ok {
				return models.ActivityDay{}, fmt.Errorf("%w: %q on %s", ErrIntensityInvalid, sessionRecord.Intensity, record.Date)
			}
			session.Intensity = intensity
		}
		day = day.WithSession(session)
	}
	return day, nil
}

func parseRecordDate(raw string) (time.Time, error) {
	parsed, err := services.ParseDay(raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrRecordDateInvalid, raw)
	}
	return parsed, nil
}
