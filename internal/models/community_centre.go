package models

import "time"

type CommunityCentre struct {
	ID           string  `gorm:"type:varchar(36);primaryKey"`
	Name         string  `gorm:"size:255;not null"`
	Address      string  `gorm:"size:255;not null"`
	Latitude     float64 `gorm:"not null"`
	Longitude    float64 `gorm:"not null"`
	Contact      string  `gorm:"size:20;uniqueIndex;not null"`
	Email        string  `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Requirements []Requirement `gorm:"foreignKey:CommunityCentreID"`
}
