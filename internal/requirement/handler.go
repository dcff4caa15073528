package requirement

import (
	"errors"
	"time"

	"mealbridge-backend/internal/audit"
	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/mealslot"
	"mealbridge-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpsertRequirementRequest struct {
	CommunityCentreID string `json:"community_centre_id"`
	Servings          int    `json:"servings"`
	Date              string `json:"date"` // "2026-03-15"
	MealType          string `json:"meal_type"`
	Status            string `json:"status"`
}

type CentreInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Contact   string  `json:"contact"`
	Email     string  `json:"email"`
}

type RequirementResponse struct {
	ID                string      `json:"id"`
	CommunityCentreID string      `json:"community_centre_id"`
	Servings          int         `json:"servings"`
	Date              string      `json:"date"`
	MealType          string      `json:"meal_type"`
	Status            string      `json:"status"`
	CommunityCentre   *CentreInfo `json:"community_centre,omitempty"`
}

func toResponse(r *models.Requirement, withCentre bool) RequirementResponse {
	resp := RequirementResponse{
		ID:                r.ID,
		CommunityCentreID: r.CommunityCentreID,
		Servings:          r.Servings,
		Date:              r.Date.Format("2006-01-02"),
		MealType:          r.MealType,
		Status:            r.Status,
	}
	if withCentre && r.CommunityCentre.ID != "" {
		// Public fields only, never the credential hash.
		resp.CommunityCentre = &CentreInfo{
			ID:        r.CommunityCentre.ID,
			Name:      r.CommunityCentre.Name,
			Address:   r.CommunityCentre.Address,
			Latitude:  r.CommunityCentre.Latitude,
			Longitude: r.CommunityCentre.Longitude,
			Contact:   r.CommunityCentre.Contact,
			Email:     r.CommunityCentre.Email,
		}
	}
	return resp
}

// POST /api/requirements
func UpsertHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpsertRequirementRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.CommunityCentreID == "" || body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "community_centre_id and status are required")
		}
		if !mealslot.Valid(body.MealType) {
			return fiber.NewError(fiber.StatusBadRequest, "meal_type must be breakfast, lunch or dinner")
		}
		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be in YYYY-MM-DD format")
		}

		var centre models.CommunityCentre
		if err := database.DB.First(&centre, "id = ?", body.CommunityCentreID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Community centre not found")
		}

		req, err := Upsert(body.CommunityCentreID, mealslot.DateOf(d), body.MealType, body.Servings, body.Status)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save requirement")
		}

		audit.WriteLog(audit.LogOptions{
			EntityType:  "requirement",
			EntityID:    req.ID,
			Action:      models.AuditActionUpsert,
			Description: "requirement submitted for " + body.Date + " " + body.MealType,
			After:       toResponse(req, false),
		})

		return c.JSON(toResponse(req, false))
	}
}

// GET /api/requirements
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := ListAll()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list requirements")
		}

		out := make([]RequirementResponse, 0, len(reqs))
		for i := range reqs {
			out = append(out, toResponse(&reqs[i], true))
		}
		return c.JSON(out)
	}
}

// GET /api/requirements/today
//
// Resolves the active meal slot and its logical date (early-morning hours
// count as the previous day's dinner) and returns the exact matches.
func TodayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slot, date := mealslot.Resolve(time.Now())

		reqs, err := ListForDateAndSlot(date, string(slot))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list requirements")
		}

		out := make([]RequirementResponse, 0, len(reqs))
		for i := range reqs {
			out = append(out, toResponse(&reqs[i], true))
		}
		return c.JSON(out)
	}
}

// GET /api/requirements/:id
func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := GetByID(c.Params("id"))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Requirement not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load requirement")
		}
		return c.JSON(toResponse(req, true))
	}
}

// GET /api/requests/:communityCentreID
func FeedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := BuildFeed(c.Params("communityCentreID"), time.Now())
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No requests found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build request feed")
		}

		out := make([]RequirementResponse, 0, len(reqs))
		for i := range reqs {
			out = append(out, toResponse(&reqs[i], false))
		}
		return c.JSON(out)
	}
}
