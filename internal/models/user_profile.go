package models

import (
	"strings"
	"time"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

func ParseSex(raw string) Sex {
	switch Sex(strings.ToLower(strings.TrimSpace(raw))) {
	case SexMale, "m":
		return SexMale
	case SexFemale, "f":
		return SexFemale
	default:
		return SexOther
	}
}

type UserProfile struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;uniqueIndex"`
	Age       int     `gorm:"not null;default:0"`
	WeightKg  float64 `gorm:"not null;default:0"`
	HeightCm  float64 `gorm:"not null;default:0"`
	Sex       Sex     `gorm:"not null;default:other"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
