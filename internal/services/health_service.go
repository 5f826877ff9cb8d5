package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yannix2/medmind/internal/models"
)

var (
	ErrHealthRecordsLoadFailed = errors.New("load health records failed")
	ErrHealthProfileLoadFailed = errors.New("load health profile failed")
)

const overviewStreakWindowDays = 30

type EatingDayReader interface {
	ListEatingDays(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.EatingDay, error)
}

type ActivityDayReader interface {
	ListActivityDays(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.ActivityDay, error)
}

type ProfileReader interface {
	FindProfile(userID uint) (models.UserProfile, bool, error)
}

type HealthService struct {
	eating   EatingDayReader
	activity ActivityDayReader
	profiles ProfileReader
}

type DailyOverview struct {
	Date                  string              `json:"date"`
	IsToday               bool                `json:"is_today"`
	Summary               DailySummary        `json:"summary"`
	Targets               NutritionTargets    `json:"targets"`
	Progress              TargetProgress      `json:"progress"`
	NutritionPresentation StatusPresentation  `json:"nutrition_presentation"`
	Activity              *ActivityBreakdown  `json:"activity,omitempty"`
	ActivityPresentation  *StatusPresentation `json:"activity_presentation,omitempty"`
	OverallScore          float64             `json:"overall_score"`
	Feedback              Feedback            `json:"feedback"`
	Streak                StreakSummary       `json:"streak"`
}

type HistoryReport struct {
	From                  string         `json:"from"`
	To                    string         `json:"to"`
	Days                  []DailySummary `json:"days"`
	TrackedDays           int            `json:"tracked_days"`
	AverageNutritionScore float64        `json:"average_nutrition_score"`
	Streak                StreakSummary  `json:"streak"`
}

func NewHealthService(eating EatingDayReader, activity ActivityDayReader, profiles ProfileReader) *HealthService {
	return &HealthService{
		eating:   eating,
		activity: activity,
		profiles: profiles,
	}
}

func (service *HealthService) Targets(userID uint) (NutritionTargets, error) {
	profile, found, err := service.profiles.FindProfile(userID)
	if err != nil {
		return NutritionTargets{}, fmt.Errorf("%w: %v", ErrHealthProfileLoadFailed, err)
	}
	if !found {
		return CalculateDailyTargets(nil), nil
	}
	return CalculateDailyTargets(&profile), nil
}

func (service *HealthService) BuildDailyOverview(userID uint, day time.Time, now time.Time, location *time.Location) (DailyOverview, error) {
	if day.IsZero() {
		day = now
	}
	dayStart := DateAtLocation(day, location)
	windowStart := dayStart.AddDate(0, 0, -(overviewStreakWindowDays - 1))

	eatingDays, activityDays, err := service.loadRecords(userID, &windowStart, dayStart, location)
	if err != nil {
		return DailyOverview{}, err
	}

	summaries, err := ReconstructHistory(eatingDays, activityDays, HistoryQuery{
		Start:    &windowStart,
		End:      dayStart,
		Location: location,
	})
	if err != nil {
		return DailyOverview{}, err
	}

	targets, err := service.Targets(userID)
	if err != nil {
		return DailyOverview{}, err
	}

	summary := summaries[0]
	overview := DailyOverview{
		Date:                  summary.Date,
		IsToday:               summary.Date == DayKey(now, location),
		Summary:               summary,
		Targets:               targets,
		Progress:              CalculateTargetProgress(summary.Totals, targets),
		NutritionPresentation: summary.Status.Presentation(),
		OverallScore:          summary.OverallScore,
		Streak:                Streaks(StreakDaysFromSummaries(summaries)),
	}

	if activityDay, ok := latestActivityDayByDate(activityDays)[summary.Date]; ok {
		breakdown := ScoreActivityDay(activityDay)
		breakdown.Score = ResolveActivityScore(activityDay)
		breakdown.Status = ClassifyActivity(breakdown.Score)
		presentation := breakdown.Status.Presentation()
		overview.Activity = &breakdown
		overview.ActivityPresentation = &presentation
	}

	overview.Feedback = SelectFeedback(overview.OverallScore, summary.HasData, overview.Activity != nil)
	return overview, nil
}

func (service *HealthService) BuildHistory(userID uint, from *time.Time, to *time.Time, now time.Time, location *time.Location) (HistoryReport, error) {
	end := DateAtLocation(now, location)
	if to != nil {
		end = DateAtLocation(*to, location)
	}
	var start *time.Time
	if from != nil {
		normalized := DateAtLocation(*from, location)
		if normalized.After(end) {
			return HistoryReport{}, ErrHistoryRangeInvalid
		}
		start = &normalized
	}

	eatingDays, activityDays, err := service.loadRecords(userID, start, end, location)
	if err != nil {
		return HistoryReport{}, err
	}

	summaries, err := ReconstructHistory(eatingDays, activityDays, HistoryQuery{
		Start:    start,
		End:      end,
		Location: location,
	})
	if err != nil {
		return HistoryReport{}, err
	}

	report := HistoryReport{
		From:   summaries[len(summaries)-1].Date,
		To:     summaries[0].Date,
		Days:   summaries,
		Streak: Streaks(StreakDaysFromSummaries(summaries)),
	}

	scored := 0
	scoreSum := 0.0
	for _, summary := range summaries {
		if !summary.HasData {
			continue
		}
		report.TrackedDays++
		if summary.EatingDay != nil && summary.EatingDay.NutritionScore != nil {
			scored++
			scoreSum += summary.NutritionScore
		}
	}
	if scored > 0 {
		report.AverageNutritionScore = scoreSum / float64(scored)
	}
	return report, nil
}

func (service *HealthService) loadRecords(userID uint, start *time.Time, end time.Time, location *time.Location) ([]models.EatingDay, []models.ActivityDay, error) {
	var fromStart *time.Time
	if start != nil {
		storedStart := StorageDate(*start, location)
		fromStart = &storedStart
	}
	toEnd := StorageDate(end, location).AddDate(0, 0, 1)

	eatingDays, err := service.eating.ListEatingDays(userID, fromStart, &toEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrHealthRecordsLoadFailed, err)
	}
	activityDays, err := service.activity.ListActivityDays(userID, fromStart, &toEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrHealthRecordsLoadFailed, err)
	}
	return eatingDays, activityDays, nil
}

// StorageDate is the UTC midnight of value's calendar date in location, the
// form calendar dates are persisted in.
func StorageDate(value time.Time, location *time.Location) time.Time {
	year, month, day := DateAtLocation(value, location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
