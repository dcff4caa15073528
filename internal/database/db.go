package database

import (
	"log"

	"mealbridge-backend/internal/config"
	"mealbridge-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	// Requirement natural-key migration (BEFORE AutoMigrate): older schemas
	// were created without the composite unique index and may hold duplicate
	// (community_centre_id, date, meal_type) rows. The unique index creation
	// fails on those, so keep only the newest row per triple first.
	if DB.Migrator().HasTable(&models.Requirement{}) {
		if !DB.Migrator().HasIndex(&models.Requirement{}, "idx_requirements_natural_key") {
			log.Println("Deduplicating requirements before creating the natural-key index...")
			err := DB.Exec(`
				DELETE FROM requirements WHERE id NOT IN (
					SELECT id FROM (
						SELECT DISTINCT ON (community_centre_id, date, meal_type) id
						FROM requirements
						ORDER BY community_centre_id, date, meal_type, updated_at DESC
					) keep
				)
			`).Error
			if err != nil {
				log.Printf("Requirement dedup failed (continuing, AutoMigrate may refuse the index): %v", err)
			}
		}
	}

	err = DB.AutoMigrate(
		&models.CommunityCentre{},
		&models.Donor{},
		&models.Requirement{},
		&models.FoodItem{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connection established. Migration complete.")
}
