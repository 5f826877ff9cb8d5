package services

import (
	"encoding/csv"
	"io"
	"strconv"
)

var HistoryCSVHeaders = []string{
	"Date",
	"Tracked",
	"Meals",
	"Foods",
	"Calories",
	"Proteins",
	"Carbs",
	"Fibres",
	"Fats",
	"Sugars",
	"Nutrition score",
	"Nutrition status",
	"Activity score",
	"Activity status",
	"Overall score",
}

type HistoryCSVRow struct {
	Summary DailySummary
}

// BuildHistoryCSVRows keeps the report order, newest day first.
func BuildHistoryCSVRows(report HistoryReport) []HistoryCSVRow {
	rows := make([]HistoryCSVRow, 0, len(report.Days))
	for _, summary := range report.Days {
		rows = append(rows, HistoryCSVRow{Summary: summary})
	}
	return rows
}

func (row HistoryCSVRow) Columns() []string {
	summary := row.Summary
	activityScore := ""
	if summary.ActivityScore != nil {
		activityScore = csvNumber(*summary.ActivityScore)
	}
	return []string{
		summary.Date,
		csvYesNo(summary.HasData),
		strconv.Itoa(summary.TotalMeals),
		strconv.Itoa(summary.TotalFoods),
		csvNumber(summary.Totals.Calories),
		csvNumber(summary.Totals.Proteins),
		csvNumber(summary.Totals.Carbs),
		csvNumber(summary.Totals.Fibres),
		csvNumber(summary.Totals.Fats),
		csvNumber(summary.Totals.Sugars),
		csvNumber(summary.NutritionScore),
		string(summary.Status),
		activityScore,
		string(summary.ActivityStatus),
		csvNumber(summary.OverallScore),
	}
}

func WriteHistoryCSV(output io.Writer, report HistoryReport) error {
	writer := csv.NewWriter(output)
	if err := writer.Write(HistoryCSVHeaders); err != nil {
		return err
	}
	for _, row := range BuildHistoryCSVRows(report) {
		if err := writer.Write(row.Columns()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func csvYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func csvNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
