package services

import (
	"testing"

	"github.com/yannix2/medmind/internal/models"
)

func TestCalculateBMRMifflinStJeor(t *testing.T) {
	male := CalculateBMR(BodyMetrics{WeightKg: 70, HeightCm: 170, Age: 30, Male: true})
	// 10*70 + 6.25*170 - 5*30 + 5
	if male != 1617.5 {
		t.Fatalf("expected male bmr 1617.5, got %v", male)
	}

	female := CalculateBMR(BodyMetrics{WeightKg: 70, HeightCm: 170, Age: 30})
	if female != 1451.5 {
		t.Fatalf("expected female bmr 1451.5, got %v", female)
	}
}

func TestCalculateDailyTargetsFromProfile(t *testing.T) {
	profile := &models.UserProfile{Age: 30, WeightKg: 70, HeightCm: 170, Sex: models.SexMale}
	targets := CalculateDailyTargets(profile)

	// round(1617.5 * 1.55)
	if targets.Calories != 2507 {
		t.Fatalf("expected 2507 kcal, got %v", targets.Calories)
	}
	if targets.Proteins != 94 {
		t.Fatalf("expected 94 g protein, got %v", targets.Proteins)
	}
	if targets.Carbs != 313 {
		t.Fatalf("expected 313 g carbs, got %v", targets.Carbs)
	}
	if targets.Fats != 84 {
		t.Fatalf("expected 84 g fat, got %v", targets.Fats)
	}
	if targets.Fibres != 25 || targets.Sugars != 50 {
		t.Fatalf("expected fixed fibre/sugar targets, got %v/%v", targets.Fibres, targets.Sugars)
	}
	if targets.Default {
		t.Fatal("did not expect default profile flag")
	}
}

func TestCalculateDailyTargetsFallsBackToDefaultProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.UserProfile
	}{
		{name: "nil profile", profile: nil},
		{name: "missing weight", profile: &models.UserProfile{Age: 30, HeightCm: 170}},
		{name: "missing age", profile: &models.UserProfile{WeightKg: 70, HeightCm: 170}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := CalculateDailyTargets(tt.profile)
			if targets.Calories != 2000 || !targets.Default {
				t.Fatalf("expected default 2000 kcal profile, got %+v", targets)
			}
			if targets.Proteins != 75 || targets.Carbs != 250 || targets.Fats != 67 {
				t.Fatalf("unexpected default macros %+v", targets)
			}
		})
	}
}

func TestMealTargetsWeightDailyTargets(t *testing.T) {
	daily := CalculateDailyTargets(nil)

	sum := 0.0
	for _, mealType := range models.AllMealTypes() {
		sum += MealTargets(daily, mealType).Calories
	}
	if sum != daily.Calories {
		t.Fatalf("expected meal targets to cover the day, got %v of %v", sum, daily.Calories)
	}
	if lunch := MealTargets(daily, models.MealLunch); lunch.Calories != 700 {
		t.Fatalf("expected lunch target 700, got %v", lunch.Calories)
	}
}

func TestCalculateTargetProgressClamps(t *testing.T) {
	targets := NutritionTargets{Calories: 2000, Proteins: 100, Sugars: 50}
	progress := CalculateTargetProgress(NutrientTotals{Calories: 1000, Proteins: 150, Sugars: 10}, targets)

	if progress.Calories != 50 {
		t.Fatalf("expected 50%% calories, got %v", progress.Calories)
	}
	if progress.Proteins != 100 {
		t.Fatalf("expected protein progress clamped to 100, got %v", progress.Proteins)
	}
	if progress.Carbs != 0 {
		t.Fatalf("expected zero progress for zero target, got %v", progress.Carbs)
	}
}
