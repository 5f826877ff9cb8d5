package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yannix2/medmind/internal/models"
)

type EatingDayWriter interface {
	Upsert(day *models.EatingDay) error
}

type ActivityDayWriter interface {
	Upsert(day *models.ActivityDay) error
}

type ProfileWriter interface {
	Upsert(profile *models.UserProfile) error
}

type Result struct {
	UserID       uint `json:"user_id"`
	Profile      bool `json:"profile"`
	EatingDays   int  `json:"eating_days"`
	ActivityDays int  `json:"activity_days"`
}

type Importer struct {
	eating   EatingDayWriter
	activity ActivityDayWriter
	profiles ProfileWriter
	logger   logrus.FieldLogger
}

func New(eating EatingDayWriter, activity ActivityDayWriter, profiles ProfileWriter, logger logrus.FieldLogger) *Importer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Importer{
		eating:   eating,
		activity: activity,
		profiles: profiles,
		logger:   logger,
	}
}

// Import converts the whole batch before writing, so a malformed record
// rejects the batch without storing any part of it. Validation failures wrap
// ErrBatchInvalid; writer failures do not.
func (importer *Importer) Import(batch RecordBatch) (Result, error) {
	if batch.UserID == 0 {
		return Result{}, invalidBatch(ErrUserIDRequired)
	}

	eatingDays := make([]models.EatingDay, 0, len(batch.EatingDays))
	for _, record := range batch.EatingDays {
		day, err := record.toModel(batch.UserID)
		if err != nil {
			return Result{}, invalidBatch(err)
		}
		eatingDays = append(eatingDays, day)
	}
	activityDays := make([]models.ActivityDay, 0, len(batch.ActivityDays))
	for _, record := range batch.ActivityDays {
		day, err := record.toModel(batch.UserID)
		if err != nil {
			return Result{}, invalidBatch(err)
		}
		activityDays = append(activityDays, day)
	}

	result := Result{UserID: batch.UserID}
	if batch.Profile != nil {
		profile := batch.Profile.toModel(batch.UserID)
		if err := importer.profiles.Upsert(&profile); err != nil {
			return result, fmt.Errorf("store profile: %w", err)
		}
		result.Profile = true
	}
	for index := range eatingDays {
		if err := importer.eating.Upsert(&eatingDays[index]); err != nil {
			return result, fmt.Errorf("store eating day %s: %w", batch.EatingDays[index].Date, err)
		}
		result.EatingDays++
	}
	for index := range activityDays {
		if err := importer.activity.Upsert(&activityDays[index]); err != nil {
			return result, fmt.Errorf("store activity day %s: %w", batch.ActivityDays[index].Date, err)
		}
		result.ActivityDays++
	}

	importer.logger.WithFields(logrus.Fields{
		"user_id":       result.UserID,
		"profile":       result.Profile,
		"eating_days":   result.EatingDays,
		"activity_days": result.ActivityDays,
	}).Info("imported health records")
	return result, nil
}

func (importer *Importer) ImportJSON(reader io.Reader) (Result, error) {
	batch := RecordBatch{}
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&batch); err != nil {
		return Result{}, invalidBatch(fmt.Errorf("decode records: %w", err))
	}
	return importer.Import(batch)
}

func (importer *Importer) ImportFile(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open records file: %w", err)
	}
	defer file.Close()

	result, err := importer.ImportJSON(file)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

func invalidBatch(err error) error {
	return fmt.Errorf("%w: %w", ErrBatchInvalid, err)
}
