package models

import "time"

const (
	FoodItemOpen         = "Open"
	FoodItemApproved     = "Approved"
	FoodItemInTransit    = "In Transit"
	FoodItemReceived     = "Received"
	FoodItemNotFulfilled = "Not fulfilled"
)

// FoodItemStatuses is the closed set of pledge statuses. Items are always
// created "Open"; callers drive every transition after that.
var FoodItemStatuses = []string{
	FoodItemOpen,
	FoodItemApproved,
	FoodItemInTransit,
	FoodItemReceived,
	FoodItemNotFulfilled,
}

func ValidFoodItemStatus(s string) bool {
	for _, v := range FoodItemStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// FoodItem is a donor's pledge against a specific requirement.
type FoodItem struct {
	ID          string      `gorm:"type:varchar(36);primaryKey"`
	Image       string      `gorm:"not null"`
	Title       string      `gorm:"not null"`
	Description string      `gorm:"not null"`
	Servings    int         `gorm:"not null"`
	RequestID   string      `gorm:"type:varchar(36);index;not null"`
	Requirement Requirement `gorm:"foreignKey:RequestID"`
	UserID      string      `gorm:"type:varchar(36);index;not null"`
	User        Donor       `gorm:"foreignKey:UserID"`
	Status      string      `gorm:"size:20;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
