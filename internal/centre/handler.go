package centre

import (
	"strings"

	"mealbridge-backend/internal/auth"
	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegisterCentreRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Contact   string  `json:"contact"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
}

type CentreResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Contact   string  `json:"contact"`
	Email     string  `json:"email"`
}

func toResponse(centre *models.CommunityCentre) CentreResponse {
	return CentreResponse{
		ID:        centre.ID,
		Name:      centre.Name,
		Address:   centre.Address,
		Latitude:  centre.Latitude,
		Longitude: centre.Longitude,
		Contact:   centre.Contact,
		Email:     centre.Email,
	}
}

// POST /api/community-centres
func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterCentreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Address == "" || body.Contact == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name, address, contact, email and password are required")
		}

		var count int64
		database.DB.Model(&models.CommunityCentre{}).
			Where("email = ? OR contact = ?", body.Email, body.Contact).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Email or contact already in use")
		}

		hash, err := auth.HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		centre := models.CommunityCentre{
			ID:           uuid.NewString(),
			Name:         body.Name,
			Address:      body.Address,
			Latitude:     body.Latitude,
			Longitude:    body.Longitude,
			Contact:      body.Contact,
			Email:        body.Email,
			PasswordHash: hash,
		}

		if err := database.DB.Create(&centre).Error; err != nil {
			// Unique index on email/contact closes the check-then-insert gap.
			return fiber.NewError(fiber.StatusBadRequest, "Email or contact already in use")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&centre))
	}
}

// GET /api/community-centres
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var centres []models.CommunityCentre
		if err := database.DB.Order("name asc").Find(&centres).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list community centres")
		}

		out := make([]CentreResponse, 0, len(centres))
		for i := range centres {
			out = append(out, toResponse(&centres[i]))
		}
		return c.JSON(out)
	}
}

// GET /api/community-centres/:id
func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var centre models.CommunityCentre
		if err := database.DB.First(&centre, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Community centre not found")
		}
		return c.JSON(toResponse(&centre))
	}
}
