package fooditem

import (
	"errors"

	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFoodItemNotFound    = errors.New("food item not found")
	ErrRequirementNotFound = errors.New("requirement not found")
	ErrDonorNotFound       = errors.New("donor not found")
	ErrInvalidStatus       = errors.New("invalid food item status")
)

// CreatePledge records a donor's offer against a requirement. Both referenced
// entities must exist, and the pledge always starts out "Open" regardless of
// what the caller sent.
func CreatePledge(requestID, userID, image, title, description string, servings int) (*models.FoodItem, error) {
	var req models.Requirement
	if err := database.DB.First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequirementNotFound
		}
		return nil, err
	}

	var donor models.Donor
	if err := database.DB.First(&donor, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	item := models.FoodItem{
		ID:          uuid.NewString(),
		Image:       image,
		Title:       title,
		Description: description,
		Servings:    servings,
		RequestID:   requestID,
		UserID:      userID,
		Status:      models.FoodItemOpen,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByRequest returns every pledge for one requirement, donor preloaded.
func ListByRequest(requestID string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := database.DB.Preload("User").Where("request_id = ?", requestID).Find(&items).Error
	return items, err
}

// SetStatus moves a pledge through its lifecycle. Entering "Received" also
// debits the parent requirement: a single conditional UPDATE subtracts the
// pledged servings, clamps at zero and marks the requirement "Fulfilled" when
// it reaches zero. Both CASE expressions read the pre-update servings value,
// so concurrent receipts against the same requirement each apply their own
// decrement without lost updates, and the whole thing runs inside one
// transaction with the item-status write.
func SetStatus(id, newStatus string) (*models.FoodItem, error) {
	if !models.ValidFoodItemStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var item models.FoodItem
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFoodItemNotFound
			}
			return err
		}

		if err := tx.Model(&models.FoodItem{}).Where("id = ?", id).Update("status", newStatus).Error; err != nil {
			return err
		}
		item.Status = newStatus

		if newStatus != models.FoodItemReceived {
			return nil
		}

		return tx.Model(&models.Requirement{}).
			Where("id = ?", item.RequestID).
			Updates(map[string]interface{}{
				"servings": gorm.Expr("CASE WHEN servings - ? < 0 THEN 0 ELSE servings - ? END", item.Servings, item.Servings),
				"status":   gorm.Expr("CASE WHEN servings - ? <= 0 THEN ? ELSE status END", item.Servings, models.StatusFulfilled),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
