package services

import (
	"time"

	"github.com/yannix2/medmind/internal/models"
)

// With no records and no start, history looks back this many days before the
// end date, so the default window holds defaultHistoryLookbackDays+1 summaries.
const defaultHistoryLookbackDays = 30

type HistoryQuery struct {
	Start    *time.Time
	End      time.Time
	Location *time.Location
}

type DailySummary struct {
	Date           string            `json:"date"`
	EatingDay      *models.EatingDay `json:"-"`
	TotalMeals     int               `json:"total_meals"`
	TotalFoods     int               `json:"total_foods"`
	TotalCalories  float64           `json:"total_calories"`
	Totals         NutrientTotals    `json:"totals"`
	NutritionScore float64           `json:"nutrition_score"`
	Status         NutritionStatus   `json:"status"`
	HasData        bool              `json:"has_data"`
	ActivityScore  *float64          `json:"activity_score,omitempty"`
	ActivityStatus ActivityStatus    `json:"activity_status,omitempty"`
	OverallScore   float64           `json:"overall_score"`
}

// ReconstructHistory produces one summary per calendar day between the query
// bounds, newest first. Days without an eating record are zero-filled and
// marked skipped.
func ReconstructHistory(eatingDays []models.EatingDay, activityDays []models.ActivityDay, query HistoryQuery) ([]DailySummary, error) {
	location := query.Location
	if location == nil {
		location = time.UTC
	}

	eatingByDate := latestEatingDayByDate(eatingDays)
	activityByDate := latestActivityDayByDate(activityDays)

	end := DateAtLocation(query.End, location)
	start, err := resolveHistoryStart(query.Start, end, location, eatingByDate, activityByDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, ErrHistoryRangeInvalid
	}

	summaries := make([]DailySummary, 0, int(end.Sub(start).Hours()/24)+1)
	for day := end; !day.Before(start); day = day.AddDate(0, 0, -1) {
		key := day.Format(dayLayout)
		eating, hasEating := eatingByDate[key]
		activity, hasActivity := activityByDate[key]

		var eatingPtr *models.EatingDay
		if hasEating {
			eatingPtr = &eating
		}
		var activityPtr *models.ActivityDay
		if hasActivity {
			activityPtr = &activity
		}
		summaries = append(summaries, BuildDailySummary(key, eatingPtr, activityPtr))
	}

	return summaries, nil
}

// BuildDailySummary derives the summary for one date from its optional records.
func BuildDailySummary(date string, eating *models.EatingDay, activity *models.ActivityDay) DailySummary {
	summary := DailySummary{
		Date:   date,
		Status: NutritionSkipped,
	}

	var nutritionScore *float64
	if eating != nil {
		day := *eating
		totals := SumEatingDay(day)
		summary.EatingDay = &day
		summary.HasData = true
		summary.Totals = totals
		summary.TotalMeals = totals.Meals
		summary.TotalFoods = totals.Foods
		summary.TotalCalories = totals.Calories
		summary.Status = ClassifyNutrition(day.NutritionScore, true)
		if day.NutritionScore != nil {
			score := ClampScore(*day.NutritionScore)
			summary.NutritionScore = score
			nutritionScore = &score
		}
	}

	var activityScore *float64
	if activity != nil {
		score := ResolveActivityScore(*activity)
		activityScore = &score
		summary.ActivityScore = activityScore
		summary.ActivityStatus = ClassifyActivity(score)
	}

	summary.OverallScore = CombineScores(nutritionScore, activityScore)
	return summary
}

func resolveHistoryStart(start *time.Time, end time.Time, location *time.Location, eatingByDate map[string]models.EatingDay, activityByDate map[string]models.ActivityDay) (time.Time, error) {
	if start != nil {
		return DateAtLocation(*start, location), nil
	}

	earliestKey := ""
	for key := range eatingByDate {
		if earliestKey == "" || key < earliestKey {
			earliestKey = key
		}
	}
	for key := range activityByDate {
		if earliestKey == "" || key < earliestKey {
			earliestKey = key
		}
	}
	if earliestKey == "" {
		return end.AddDate(0, 0, -defaultHistoryLookbackDays), nil
	}

	earliest, err := ParseDay(earliestKey, location)
	if err != nil {
		return time.Time{}, err
	}
	if earliest.After(end) {
		return end, nil
	}
	return earliest, nil
}

func latestEatingDayByDate(days []models.EatingDay) map[string]models.EatingDay {
	latest := make(map[string]models.EatingDay, len(days))
	for _, day := range days {
		if day.Date.IsZero() {
			continue
		}
		key := RecordDayKey(day.Date)
		existing, exists := latest[key]
		if !exists || day.Date.After(existing.Date) || (day.Date.Equal(existing.Date) && day.ID > existing.ID) {
			latest[key] = day
		}
	}
	return latest
}

func latestActivityDayByDate(days []models.ActivityDay) map[string]models.ActivityDay {
	latest := make(map[string]models.ActivityDay, len(days))
	for _, day := range days {
		if day.Date.IsZero() {
			continue
		}
		key := RecordDayKey(day.Date)
		existing, exists := latest[key]
		if !exists || day.Date.After(existing.Date) || (day.Date.Equal(existing.Date) && day.ID > existing.ID) {
			latest[key] = day
		}
	}
	return latest
}
