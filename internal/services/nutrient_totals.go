package services

import (
	"math"

	"github.com/yannix2/medmind/internal/models"
)

type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fibres   float64 `json:"fibres"`
	Fats     float64 `json:"fats"`
	Sugars   float64 `json:"sugars"`
	Meals    int     `json:"meals"`
	Foods    int     `json:"foods"`
}

func (totals NutrientTotals) Add(other NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Calories: totals.Calories + other.Calories,
		Proteins: totals.Proteins + other.Proteins,
		Carbs:    totals.Carbs + other.Carbs,
		Fibres:   totals.Fibres + other.Fibres,
		Fats:     totals.Fats + other.Fats,
		Sugars:   totals.Sugars + other.Sugars,
		Meals:    totals.Meals + other.Meals,
		Foods:    totals.Foods + other.Foods,
	}
}

func SumFoods(foods []models.FoodEntry) NutrientTotals {
	totals := NutrientTotals{}
	for _, food := range foods {
		totals.Calories += sanitizeQuantity(food.Calories)
		totals.Proteins += sanitizeQuantity(food.Proteins)
		totals.Carbs += sanitizeQuantity(food.Carbs)
		totals.Fibres += sanitizeQuantity(food.Fibres)
		totals.Fats += sanitizeQuantity(food.Fats)
		totals.Sugars += sanitizeQuantity(food.Sugars)
		totals.Foods++
	}
	return totals
}

func SumMeals(meals []models.Meal) NutrientTotals {
	totals := NutrientTotals{}
	for _, meal := range meals {
		totals = totals.Add(SumFoods(meal.Foods))
		totals.Meals++
	}
	return totals
}

func SumEatingDay(day models.EatingDay) NutrientTotals {
	return SumMeals(day.Meals)
}

// sanitizeQuantity coerces malformed nutrient values to zero.
func sanitizeQuantity(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
