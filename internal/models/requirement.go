package models

import "time"

// StatusFulfilled is the one requirement status the ledger writes itself;
// everything else is whatever the centre submitted.
const StatusFulfilled = "Fulfilled"

// Requirement is a centre's declared need for N servings of a meal slot on a
// date. The (community_centre_id, date, meal_type) triple is the natural key:
// resubmitting it overwrites servings and status in place.
type Requirement struct {
	ID                string `gorm:"type:varchar(36);primaryKey"`
	CommunityCentreID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_requirements_natural_key"`
	CommunityCentre   CommunityCentre
	Servings          int       `gorm:"not null"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:idx_requirements_natural_key"`
	MealType          string    `gorm:"size:20;not null;uniqueIndex:idx_requirements_natural_key"`
	Status            string    `gorm:"size:50;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	FoodItems []FoodItem `gorm:"foreignKey:RequestID"`
}
