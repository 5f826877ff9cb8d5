package services

import (
	"errors"
	"testing"
	"time"

	"github.com/yannix2/medmind/internal/models"
)

func historyDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.Parse(dayLayout, raw)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func historyDayPtr(t *testing.T, raw string) *time.Time {
	t.Helper()
	parsed := historyDay(t, raw)
	return &parsed
}

func TestReconstructHistorySpansLeapDayNewestFirst(t *testing.T) {
	summaries, err := ReconstructHistory(nil, nil, HistoryQuery{
		Start: historyDayPtr(t, "2024-02-28"),
		End:   historyDay(t, "2024-03-01"),
	})
	if err != nil {
		t.Fatalf("reconstruct history: %v", err)
	}

	want := []string{"2024-03-01", "2024-02-29", "2024-02-28"}
	if len(summaries) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(summaries))
	}
	for index, date := range want {
		if summaries[index].Date != date {
			t.Fatalf("summary %d: expected %s, got %s", index, date, summaries[index].Date)
		}
	}
}

func TestReconstructHistoryCountsAcrossBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single day", start: "2026-02-10", end: "2026-02-10", want: 1},
		{name: "month boundary", start: "2026-01-30", end: "2026-02-02", want: 4},
		{name: "year boundary", start: "2025-12-30", end: "2026-01-02", want: 4},
		{name: "non leap february", start: "2023-02-27", end: "2023-03-01", want: 3},
		{name: "full leap year", start: "2024-01-01", end: "2024-12-31", want: 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries, err := ReconstructHistory(nil, nil, HistoryQuery{
				Start: historyDayPtr(t, tt.start),
				End:   historyDay(t, tt.end),
			})
			if err != nil {
				t.Fatalf("reconstruct history: %v", err)
			}
			if len(summaries) != tt.want {
				t.Fatalf("expected %d summaries, got %d", tt.want, len(summaries))
			}
			seen := make(map[string]bool, len(summaries))
			for index, summary := range summaries {
				if seen[summary.Date] {
					t.Fatalf("duplicate date %s", summary.Date)
				}
				seen[summary.Date] = true
				if index > 0 && summaries[index-1].Date <= summary.Date {
					t.Fatalf("expected strictly descending dates, got %s then %s", summaries[index-1].Date, summary.Date)
				}
			}
		})
	}
}

func TestReconstructHistoryAcrossDSTTransition(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	start := time.Date(2026, time.March, 7, 15, 0, 0, 0, location)
	summaries, err := ReconstructHistory(nil, nil, HistoryQuery{
		Start:    &start,
		End:      time.Date(2026, time.March, 10, 1, 0, 0, 0, location),
		Location: location,
	})
	if err != nil {
		t.Fatalf("reconstruct history: %v", err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 days across dst change, got %d", len(summaries))
	}
	if summaries[0].Date != "2026-03-10" || summaries[3].Date != "2026-03-07" {
		t.Fatalf("unexpected bounds %s..%s", summaries[3].Date, summaries[0].Date)
	}
}

func TestReconstructHistoryFillsGapsAndPopulatesRecords(t *testing.T) {
	eating := []models.EatingDay{
		{
			ID:             1,
			Date:           historyDay(t, "2026-02-03"),
			NutritionScore: scorePtr(82),
			Meals: []models.Meal{
				{MealType: models.MealBreakfast, Foods: []models.FoodEntry{{Calories: 400}, {Calories: 150}}},
				{MealType: models.MealDinner, Foods: []models.FoodEntry{{Calories: 700}}},
			},
		},
		{
			ID:   2,
			Date: historyDay(t, "2026-02-01"),
		},
	}
	activity := []models.ActivityDay{
		{ID: 5, Date: historyDay(t, "2026-02-03"), ActivityScore: scorePtr(60)},
	}

	summaries, err := ReconstructHistory(eating, activity, HistoryQuery{
		Start: historyDayPtr(t, "2026-02-01"),
		End:   historyDay(t, "2026-02-04"),
	})
	if err != nil {
		t.Fatalf("reconstruct history: %v", err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 summaries, got %d", len(summaries))
	}

	today := summaries[0]
	if today.Date != "2026-02-04" || today.HasData || today.Status != NutritionSkipped {
		t.Fatalf("expected skipped placeholder for 2026-02-04, got %+v", today)
	}
	if today.TotalCalories != 0 || today.NutritionScore != 0 || today.TotalMeals != 0 {
		t.Fatalf("expected zero-filled placeholder, got %+v", today)
	}
	if today.OverallScore != 50 {
		t.Fatalf("expected neutral overall score, got %v", today.OverallScore)
	}

	tracked := summaries[1]
	if !tracked.HasData || tracked.Status != NutritionExcellent {
		t.Fatalf("expected excellent tracked day, got %+v", tracked)
	}
	if tracked.TotalMeals != 2 || tracked.TotalFoods != 3 || tracked.TotalCalories != 1250 {
		t.Fatalf("unexpected totals %+v", tracked)
	}
	if tracked.EatingDay == nil || tracked.EatingDay.ID != 1 {
		t.Fatalf("expected eating day attached, got %+v", tracked.EatingDay)
	}
	if tracked.ActivityScore == nil || *tracked.ActivityScore != 60 || tracked.ActivityStatus != ActivityGood {
		t.Fatalf("expected activity score 60, got %+v", tracked)
	}
	if tracked.OverallScore != 73 {
		t.Fatalf("expected overall round(82*0.6+60*0.4)=73, got %v", tracked.OverallScore)
	}

	incomplete := summaries[3]
	if !incomplete.HasData || incomplete.Status != NutritionIncomplete {
		t.Fatalf("expected incomplete tracked day, got %+v", incomplete)
	}
}

func TestReconstructHistoryKeepsLatestRecordPerDate(t *testing.T) {
	eating := []models.EatingDay{
		{ID: 3, Date: historyDay(t, "2026-02-01"), NutritionScore: scorePtr(30)},
		{ID: 9, Date: historyDay(t, "2026-02-01"), NutritionScore: scorePtr(65)},
		{ID: 4, Date: historyDay(t, "2026-02-01"), NutritionScore: scorePtr(90)},
	}

	summaries, err := ReconstructHistory(eating, nil, HistoryQuery{
		Start: historyDayPtr(t, "2026-02-01"),
		End:   historyDay(t, "2026-02-01"),
	})
	if err != nil {
		t.Fatalf("reconstruct history: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one summary, got %d", len(summaries))
	}
	if summaries[0].NutritionScore != 65 {
		t.Fatalf("expected highest id record score 65, got %v", summaries[0].NutritionScore)
	}
}

func TestReconstructHistoryDefaultsStart(t *testing.T) {
	end := historyDay(t, "2026-03-15")

	t.Run("no records uses thirty days before end", func(t *testing.T) {
		summaries, err := ReconstructHistory(nil, nil, HistoryQuery{End: end})
		if err != nil {
			t.Fatalf("reconstruct history: %v", err)
		}
		if len(summaries) != defaultHistoryLookbackDays+1 {
			t.Fatalf("expected %d summaries, got %d", defaultHistoryLookbackDays+1, len(summaries))
		}
		if summaries[0].Date != "2026-03-15" || summaries[30].Date != "2026-02-13" {
			t.Fatalf("unexpected window %s..%s", summaries[30].Date, summaries[0].Date)
		}
	})

	t.Run("earliest record becomes start", func(t *testing.T) {
		eating := []models.EatingDay{
			{ID: 1, Date: historyDay(t, "2026-03-12")},
			{ID: 2, Date: historyDay(t, "2026-03-10")},
		}
		summaries, err := ReconstructHistory(eating, nil, HistoryQuery{End: end})
		if err != nil {
			t.Fatalf("reconstruct history: %v", err)
		}
		if len(summaries) != 6 {
			t.Fatalf("expected 6 summaries from 2026-03-10, got %d", len(summaries))
		}
		if last := summaries[len(summaries)-1]; last.Date != "2026-03-10" || !last.HasData {
			t.Fatalf("expected earliest day tracked, got %+v", last)
		}
	})

	t.Run("records after end collapse to single day", func(t *testing.T) {
		eating := []models.EatingDay{{ID: 1, Date: historyDay(t, "2026-04-01")}}
		summaries, err := ReconstructHistory(eating, nil, HistoryQuery{End: end})
		if err != nil {
			t.Fatalf("reconstruct history: %v", err)
		}
		if len(summaries) != 1 || summaries[0].HasData {
			t.Fatalf("expected single untracked end day, got %+v", summaries)
		}
	})
}

func TestReconstructHistoryRejectsReversedRange(t *testing.T) {
	_, err := ReconstructHistory(nil, nil, HistoryQuery{
		Start: historyDayPtr(t, "2026-02-10"),
		End:   historyDay(t, "2026-02-09"),
	})
	if !errors.Is(err, ErrHistoryRangeInvalid) {
		t.Fatalf("expected ErrHistoryRangeInvalid, got %v", err)
	}
}

func TestReconstructHistoryKeysStoredDatesWithoutShift(t *testing.T) {
	location := time.FixedZone("UTC-8", -8*60*60)
	eating := []models.EatingDay{
		{ID: 1, Date: time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC), NutritionScore: scorePtr(70)},
	}

	summaries, err := ReconstructHistory(eating, nil, HistoryQuery{
		Start:    historyDayPtr(t, "2026-02-01"),
		End:      time.Date(2026, time.February, 2, 12, 0, 0, 0, location),
		Location: location,
	})
	if err != nil {
		t.Fatalf("reconstruct history: %v", err)
	}
	if summaries[0].Date != "2026-02-02" || !summaries[0].HasData {
		t.Fatalf("expected stored 2026-02-02 record on its own day, got %+v", summaries[0])
	}
}
