package services

type StreakDay struct {
	Date    string
	HasData bool
}

type StreakSummary struct {
	Longest  int `json:"longest"`
	Trailing int `json:"trailing"`
}

// LongestStreak scans days in ascending date order and returns the longest
// run of tracked days seen in the window.
func LongestStreak(days []StreakDay) int {
	return Streaks(days).Longest
}

// TrailingStreak is the run of tracked days ending at the last element.
func TrailingStreak(days []StreakDay) int {
	return Streaks(days).Trailing
}

func Streaks(days []StreakDay) StreakSummary {
	summary := StreakSummary{}
	current := 0
	for _, day := range days {
		if !day.HasData {
			current = 0
			continue
		}
		current++
		if current > summary.Longest {
			summary.Longest = current
		}
	}
	summary.Trailing = current
	return summary
}

// StreakDaysFromSummaries converts newest-first history into the ascending
// sequence the streak scan expects.
func StreakDaysFromSummaries(summaries []DailySummary) []StreakDay {
	days := make([]StreakDay, len(summaries))
	for index, summary := range summaries {
		days[len(summaries)-1-index] = StreakDay{Date: summary.Date, HasData: summary.HasData}
	}
	return days
}
