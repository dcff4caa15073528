package requirement

import (
	"errors"
	"time"

	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("requirement not found")

// Upsert writes a requirement under its natural key. The upsert rides on the
// composite unique index, so two concurrent submissions of the same triple
// cannot create two rows; the later one wins on servings/status. Servings is
// stored as given, validation is the caller's job.
func Upsert(centreID string, date time.Time, mealType string, servings int, status string) (*models.Requirement, error) {
	req := models.Requirement{
		ID:                uuid.NewString(),
		CommunityCentreID: centreID,
		Servings:          servings,
		Date:              date,
		MealType:          mealType,
		Status:            status,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "community_centre_id"},
			{Name: "date"},
			{Name: "meal_type"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"servings":   servings,
			"status":     status,
			"updated_at": time.Now(),
		}),
	}).Create(&req).Error
	if err != nil {
		return nil, err
	}

	// On conflict the insert id is discarded; reload by natural key so the
	// caller always sees the stored row.
	var stored models.Requirement
	err = database.DB.
		Where("community_centre_id = ? AND date = ? AND meal_type = ?", centreID, date, mealType).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func GetByID(id string) (*models.Requirement, error) {
	var req models.Requirement
	err := database.DB.Preload("CommunityCentre").First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListAll returns every requirement joined with its owning centre.
func ListAll() ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := database.DB.Preload("CommunityCentre").Order("date asc").Find(&reqs).Error
	return reqs, err
}

// ListForDateAndSlot is the exact-match filter behind the "today" view.
func ListForDateAndSlot(date time.Time, mealType string) ([]models.Requirement, error) {
	var reqs []models.Requirement
	err := database.DB.Preload("CommunityCentre").
		Where("date = ? AND meal_type = ?", date, mealType).
		Find(&reqs).Error
	return reqs, err
}
