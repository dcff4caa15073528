package requirement

import (
	"sort"
	"time"

	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/mealslot"
	"mealbridge-backend/internal/models"
)

// BuildFeed returns a centre's requirements still actionable at time now.
// Slots that have already passed today are hidden (at lunch, breakfast rows
// disappear; at dinner, breakfast and lunch rows disappear) and the filter is
// slot-identity only: future-dated rows of a hidden slot are hidden too. That
// is a known simplification, kept deliberately. The remaining rows are ordered
// by date, then by slot priority within a date.
func BuildFeed(centreID string, now time.Time) ([]models.Requirement, error) {
	slot, _ := mealslot.Resolve(now)

	q := database.DB.Where("community_centre_id = ?", centreID)
	switch slot {
	case mealslot.Lunch:
		q = q.Where("meal_type <> ?", string(mealslot.Breakfast))
	case mealslot.Dinner:
		q = q.Where("meal_type NOT IN ?", []string{string(mealslot.Breakfast), string(mealslot.Lunch)})
	}

	var reqs []models.Requirement
	if err := q.Find(&reqs).Error; err != nil {
		return nil, err
	}

	sort.Slice(reqs, func(i, j int) bool {
		if !reqs[i].Date.Equal(reqs[j].Date) {
			return reqs[i].Date.Before(reqs[j].Date)
		}
		return mealslot.Slot(reqs[i].MealType).Priority() < mealslot.Slot(reqs[j].MealType).Priority()
	})

	// An empty feed is reported as absence, not as an empty list.
	if len(reqs) == 0 {
		return nil, ErrNotFound
	}
	return reqs, nil
}
