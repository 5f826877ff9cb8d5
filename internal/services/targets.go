package services

import (
	"math"

	"github.com/yannix2/medmind/internal/models"
)

const (
	moderateActivityMultiplier = 1.55
	defaultCalorieTarget       = 2000
	fibreTargetGrams           = 25
	sugarTargetGrams           = 50
)

type BodyMetrics struct {
	WeightKg float64
	HeightCm float64
	Age      int
	Male     bool
}

type NutritionTargets struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fibres   float64 `json:"fibres"`
	Fats     float64 `json:"fats"`
	Sugars   float64 `json:"sugars"`
	Default  bool    `json:"default"`
}

type TargetProgress struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fibres   float64 `json:"fibres"`
	Fats     float64 `json:"fats"`
	Sugars   float64 `json:"sugars"`
}

// CalculateBMR uses the Mifflin-St Jeor equation.
func CalculateBMR(metrics BodyMetrics) float64 {
	bmr := 10*metrics.WeightKg + 6.25*metrics.HeightCm - 5*float64(metrics.Age)
	if metrics.Male {
		return bmr + 5
	}
	return bmr - 161
}

func BodyMetricsFromProfile(profile *models.UserProfile) (BodyMetrics, bool) {
	if profile == nil {
		return BodyMetrics{}, false
	}
	if profile.WeightKg <= 0 || profile.HeightCm <= 0 || profile.Age <= 0 {
		return BodyMetrics{}, false
	}
	return BodyMetrics{
		WeightKg: profile.WeightKg,
		HeightCm: profile.HeightCm,
		Age:      profile.Age,
		Male:     models.ParseSex(string(profile.Sex)) == models.SexMale,
	}, true
}

func CalculateDailyTargets(profile *models.UserProfile) NutritionTargets {
	metrics, ok := BodyMetricsFromProfile(profile)
	if !ok {
		targets := targetsForCalories(defaultCalorieTarget)
		targets.Default = true
		return targets
	}

	calories := math.Round(CalculateBMR(metrics) * moderateActivityMultiplier)
	if calories <= 0 {
		targets := targetsForCalories(defaultCalorieTarget)
		targets.Default = true
		return targets
	}
	return targetsForCalories(calories)
}

func targetsForCalories(calories float64) NutritionTargets {
	return NutritionTargets{
		Calories: calories,
		Proteins: math.Round(calories * 0.15 / 4),
		Carbs:    math.Round(calories * 0.50 / 4),
		Fats:     math.Round(calories * 0.30 / 9),
		Fibres:   fibreTargetGrams,
		Sugars:   sugarTargetGrams,
	}
}

func mealTargetShare(mealType models.MealType) float64 {
	switch mealType {
	case models.MealBreakfast:
		return 0.25
	case models.MealLunch:
		return 0.35
	case models.MealDinner:
		return 0.30
	case models.MealSnack:
		return 0.10
	default:
		return 0
	}
}

// MealTargets weights the daily targets by the share each meal type is expected to cover.
func MealTargets(targets NutritionTargets, mealType models.MealType) NutritionTargets {
	share := mealTargetShare(mealType)
	return NutritionTargets{
		Calories: math.Round(targets.Calories * share),
		Proteins: math.Round(targets.Proteins * share),
		Carbs:    math.Round(targets.Carbs * share),
		Fibres:   math.Round(targets.Fibres * share),
		Fats:     math.Round(targets.Fats * share),
		Sugars:   math.Round(targets.Sugars * share),
		Default:  targets.Default,
	}
}

func CalculateTargetProgress(totals NutrientTotals, targets NutritionTargets) TargetProgress {
	return TargetProgress{
		Calories: progressPercent(totals.Calories, targets.Calories),
		Proteins: progressPercent(totals.Proteins, targets.Proteins),
		Carbs:    progressPercent(totals.Carbs, targets.Carbs),
		Fibres:   progressPercent(totals.Fibres, targets.Fibres),
		Fats:     progressPercent(totals.Fats, targets.Fats),
		Sugars:   progressPercent(totals.Sugars, targets.Sugars),
	}
}

func progressPercent(consumed float64, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return ClampScore(consumed / target * 100)
}
