package db

import (
	"github.com/yannix2/medmind/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindProfile(userID uint) (models.UserProfile, bool, error) {
	profile := models.UserProfile{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.UserProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Upsert(profile *models.UserProfile) error {
	existing, found, err := repo.FindProfile(profile.UserID)
	if err != nil {
		return err
	}
	if found {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = 0
	}
	return repo.database.Save(profile).Error
}
