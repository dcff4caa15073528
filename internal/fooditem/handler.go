package fooditem

import (
	"errors"

	"mealbridge-backend/internal/audit"
	"mealbridge-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateFoodItemRequest struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Servings    int    `json:"servings"`
	RequestID   string `json:"request_id"`
	UserID      string `json:"user_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type FoodItemResponse struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Servings    int    `json:"servings"`
	RequestID   string `json:"request_id"`
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
}

type DonorInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	TokenCount int    `json:"token_count"`
}

type FoodItemWithDonorResponse struct {
	FoodItemResponse
	User DonorInfo `json:"user"`
}

func toResponse(item *models.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:          item.ID,
		Image:       item.Image,
		Title:       item.Title,
		Description: item.Description,
		Servings:    item.Servings,
		RequestID:   item.RequestID,
		UserID:      item.UserID,
		Status:      item.Status,
	}
}

// POST /api/food-items
func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFoodItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.RequestID == "" || body.UserID == "" || body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "request_id, user_id and title are required")
		}

		item, err := CreatePledge(body.RequestID, body.UserID, body.Image, body.Title, body.Description, body.Servings)
		switch {
		case errors.Is(err, ErrRequirementNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Requirement not found for request_id")
		case errors.Is(err, ErrDonorNotFound):
			return fiber.NewError(fiber.StatusNotFound, "User not found for user_id")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create food item")
		}

		audit.WriteLog(audit.LogOptions{
			EntityType:  "food_item",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: "pledge created against requirement " + item.RequestID,
			After:       toResponse(item),
		})

		return c.Status(fiber.StatusCreated).JSON(toResponse(item))
	}
}

// GET /api/food-items/:requestID
func ListByRequestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := ListByRequest(c.Params("requestID"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list food items")
		}
		if len(items) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No food items found for the given request_id")
		}

		out := make([]FoodItemWithDonorResponse, 0, len(items))
		for i := range items {
			out = append(out, FoodItemWithDonorResponse{
				FoodItemResponse: toResponse(&items[i]),
				User: DonorInfo{
					ID:         items[i].User.ID,
					Name:       items[i].User.Name,
					Address:    items[i].User.Address,
					Contact:    items[i].User.Contact,
					Email:      items[i].User.Email,
					TokenCount: items[i].User.TokenCount,
				},
			})
		}
		return c.JSON(out)
	}
}

// PUT /api/food-items/:id/status
func UpdateStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item, err := SetStatus(c.Params("id"), body.Status)
		switch {
		case errors.Is(err, ErrInvalidStatus):
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrFoodItemNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Food item not found")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update food item status")
		}

		audit.WriteLog(audit.LogOptions{
			EntityType:  "food_item",
			EntityID:    item.ID,
			Action:      models.AuditActionUpdate,
			Description: "status set to " + item.Status,
			After:       toResponse(item),
		})

		return c.JSON(toResponse(item))
	}
}
