package donor

import (
	"strings"

	"mealbridge-backend/internal/auth"
	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegisterDonorRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SetTokenCountRequest struct {
	TokenCount int `json:"token_count"`
}

type DonorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	TokenCount int    `json:"token_count"`
}

func toResponse(d *models.Donor) DonorResponse {
	return DonorResponse{
		ID:         d.ID,
		Name:       d.Name,
		Address:    d.Address,
		Contact:    d.Contact,
		Email:      d.Email,
		TokenCount: d.TokenCount,
	}
}

// POST /api/users
func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterDonorRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Address == "" || body.Contact == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name, address, contact, email and password are required")
		}

		var count int64
		database.DB.Model(&models.Donor{}).
			Where("email = ? OR contact = ?", body.Email, body.Contact).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Email or contact already exists")
		}

		hash, err := auth.HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		d := models.Donor{
			ID:           uuid.NewString(),
			Name:         body.Name,
			Address:      body.Address,
			Contact:      body.Contact,
			Email:        body.Email,
			PasswordHash: hash,
			TokenCount:   0,
		}

		if err := database.DB.Create(&d).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Email or contact already exists")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&d))
	}
}

// GET /api/users
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var donors []models.Donor
		if err := database.DB.Find(&donors).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}

		out := make([]DonorResponse, 0, len(donors))
		for i := range donors {
			out = append(out, toResponse(&donors[i]))
		}
		return c.JSON(out)
	}
}

// GET /api/users/:id
func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d models.Donor
		if err := database.DB.First(&d, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return c.JSON(toResponse(&d))
	}
}

// GET /api/users/:id/token-count
func GetTokenCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var d models.Donor
		if err := database.DB.First(&d, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return c.JSON(d.TokenCount)
	}
}

// PUT /api/users/:id/token-count
//
// Direct overwrite, no arithmetic: the reward pipeline computes the value and
// this endpoint just stores it.
func SetTokenCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetTokenCountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var d models.Donor
		if err := database.DB.First(&d, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		if err := database.DB.Model(&d).Update("token_count", body.TokenCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update token count")
		}
		d.TokenCount = body.TokenCount

		return c.JSON(toResponse(&d))
	}
}
