package services

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestWriteHistoryCSV(t *testing.T) {
	activity := 62.5
	report := HistoryReport{
		Days: []DailySummary{
			{
				Date:           "2026-02-10",
				HasData:        true,
				TotalMeals:     2,
				TotalFoods:     3,
				Totals:         NutrientTotals{Calories: 1250.5, Proteins: 60, Carbs: 140, Fibres: 18, Fats: 40, Sugars: 22},
				NutritionScore: 78,
				Status:         NutritionGood,
				ActivityScore:  &activity,
				ActivityStatus: ActivityFair,
				OverallScore:   72,
			},
			{
				Date:         "2026-02-09",
				Status:       NutritionSkipped,
				OverallScore: 50,
			},
		},
	}

	var output bytes.Buffer
	if err := WriteHistoryCSV(&output, report); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&output).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(records))
	}
	if len(records[0]) != len(HistoryCSVHeaders) || records[0][0] != "Date" {
		t.Fatalf("unexpected header %v", records[0])
	}

	tracked := records[1]
	expected := []string{"2026-02-10", "Yes", "2", "3", "1250.5", "60", "140", "18", "40", "22", "78", "good", "62.5", "fair", "72"}
	for index, want := range expected {
		if tracked[index] != want {
			t.Fatalf("column %s: expected %q, got %q", HistoryCSVHeaders[index], want, tracked[index])
		}
	}

	skipped := records[2]
	if skipped[1] != "No" || skipped[11] != "skipped" || skipped[12] != "" || skipped[13] != "" || skipped[14] != "50" {
		t.Fatalf("unexpected skipped row %v", skipped)
	}
}
