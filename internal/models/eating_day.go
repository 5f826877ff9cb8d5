package models

import (
	"strings"
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func AllMealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

func ParseMealType(raw string) (MealType, bool) {
	switch candidate := MealType(strings.ToLower(strings.TrimSpace(raw))); candidate {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return candidate, true
	default:
		return "", false
	}
}

type FoodEntry struct {
	ID       uint     `gorm:"primaryKey"`
	MealID   uint     `gorm:"not null;index"`
	Name     string   `gorm:"not null"`
	MealType MealType `gorm:"not null"`
	Portion  float64  `gorm:"not null;default:0"`
	Calories float64  `gorm:"not null;default:0"`
	Proteins float64  `gorm:"not null;default:0"`
	Carbs    float64  `gorm:"not null;default:0"`
	Fibres   float64  `gorm:"not null;default:0"`
	Fats     float64  `gorm:"not null;default:0"`
	Sugars   float64  `gorm:"not null;default:0"`
}

type Meal struct {
	ID          uint        `gorm:"primaryKey"`
	EatingDayID uint        `gorm:"not null;uniqueIndex:uidx_eating_day_meal_type"`
	MealType    MealType    `gorm:"not null;uniqueIndex:uidx_eating_day_meal_type"`
	Foods       []FoodEntry `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
}

type EatingDay struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;uniqueIndex:uidx_eating_user_date"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:uidx_eating_user_date"`
	NumberOfMeals  int       `gorm:"not null;default:0"`
	Meals          []Meal    `gorm:"foreignKey:EatingDayID;constraint:OnDelete:CASCADE"`
	NutritionScore *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WithFood returns a copy of the meal with food appended. The food inherits the meal type.
func (meal Meal) WithFood(food FoodEntry) Meal {
	food.MealType = meal.MealType
	updated := meal
	updated.Foods = append(cloneFoods(meal.Foods), food)
	return updated
}

// WithoutFood returns a copy of the meal without the food at index.
// Out of range indexes return an unchanged copy.
func (meal Meal) WithoutFood(index int) Meal {
	updated := meal
	updated.Foods = cloneFoods(meal.Foods)
	if index < 0 || index >= len(updated.Foods) {
		return updated
	}
	updated.Foods = append(updated.Foods[:index], updated.Foods[index+1:]...)
	return updated
}

// WithMeal returns a copy of the day where meal replaces any meal of the same type.
func (day EatingDay) WithMeal(meal Meal) EatingDay {
	updated := day
	updated.Meals = make([]Meal, 0, len(day.Meals)+1)
	replaced := false
	for _, existing := range day.Meals {
		if existing.MealType == meal.MealType {
			if !replaced {
				updated.Meals = append(updated.Meals, cloneMeal(meal))
				replaced = true
			}
			continue
		}
		updated.Meals = append(updated.Meals, cloneMeal(existing))
	}
	if !replaced {
		updated.Meals = append(updated.Meals, cloneMeal(meal))
	}
	return updated
}

func (day EatingDay) WithoutMeal(mealType MealType) EatingDay {
	updated := day
	updated.Meals = make([]Meal, 0, len(day.Meals))
	for _, existing := range day.Meals {
		if existing.MealType != mealType {
			updated.Meals = append(updated.Meals, cloneMeal(existing))
		}
	}
	return updated
}

func (day EatingDay) WithNutritionScore(score float64) EatingDay {
	updated := day
	updated.Meals = cloneMeals(day.Meals)
	updated.NutritionScore = &score
	return updated
}

// MealByType returns the meal of the given type, if the day has one.
func (day EatingDay) MealByType(mealType MealType) (Meal, bool) {
	for _, meal := range day.Meals {
		if meal.MealType == mealType {
			return meal, true
		}
	}
	return Meal{}, false
}

func cloneMeals(meals []Meal) []Meal {
	if meals == nil {
		return nil
	}
	cloned := make([]Meal, len(meals))
	for index, meal := range meals {
		cloned[index] = cloneMeal(meal)
	}
	return cloned
}

func cloneMeal(meal Meal) Meal {
	cloned := meal
	cloned.Foods = cloneFoods(meal.Foods)
	return cloned
}

func cloneFoods(foods []FoodEntry) []FoodEntry {
	if foods == nil {
		return nil
	}
	cloned := make([]FoodEntry, len(foods))
	copy(cloned, foods)
	return cloned
}
