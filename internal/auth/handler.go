package auth

import (
	"strings"

	"mealbridge-backend/internal/config"
	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CentreLoginHandler verifies a community centre's email/password pair.
// Unknown account is 404, wrong password is 400; both carry an opaque token
// plus the centre id on success.
func CentreLoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var centre models.CommunityCentre
		if err := database.DB.Where("email = ?", body.Email).First(&centre).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Community centre not found")
		}

		if !CheckPassword(body.Password, centre.PasswordHash) {
			return fiber.NewError(fiber.StatusBadRequest, "Incorrect password")
		}

		token, err := GenerateToken(cfg.JWTSecret, centre.ID, centre.Email, KindCentre)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		return c.JSON(fiber.Map{
			"message":             "Login successful",
			"token":               token,
			"community_centre_id": centre.ID,
		})
	}
}

// DonorLoginHandler is the donor-side counterpart of CentreLoginHandler.
func DonorLoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var donor models.Donor
		if err := database.DB.Where("email = ?", body.Email).First(&donor).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		if !CheckPassword(body.Password, donor.PasswordHash) {
			return fiber.NewError(fiber.StatusBadRequest, "Incorrect password")
		}

		token, err := GenerateToken(cfg.JWTSecret, donor.ID, donor.Email, KindDonor)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"token":   token,
			"user_id": donor.ID,
		})
	}
}
