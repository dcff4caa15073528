package audit

import (
	"encoding/json"
	"log"

	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"
)

type LogOptions struct {
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog appends an audit entry. The trail is advisory: a failed write is
// logged and swallowed so it can never fail the request that triggered it.
func WriteLog(opts LogOptions) {
	// jsonb columns reject the empty string, use the JSON null literal.
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}
