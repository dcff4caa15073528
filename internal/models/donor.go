package models

import "time"

type Donor struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Address      string `gorm:"size:255;not null"`
	Contact      string `gorm:"size:20;uniqueIndex;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	TokenCount   int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FoodItems []FoodItem `gorm:"foreignKey:UserID"`
}
