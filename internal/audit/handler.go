package audit

import (
	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=requirement&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit < 1 || limit > 500 {
			limit = 100
		}

		q := database.DB.Order("id desc").Limit(limit)
		if et := c.Query("entity_type"); et != "" {
			q = q.Where("entity_type = ?", et)
		}
		if eid := c.Query("entity_id"); eid != "" {
			q = q.Where("entity_id = ?", eid)
		}

		var logs []models.AuditLog
		if err := q.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}
		return c.JSON(logs)
	}
}
