package main

import (
	"log"
	"strings"

	"mealbridge-backend/internal/audit"
	"mealbridge-backend/internal/auth"
	"mealbridge-backend/internal/centre"
	"mealbridge-backend/internal/config"
	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/donor"
	"mealbridge-backend/internal/fooditem"
	"mealbridge-backend/internal/requirement"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public: registration and login
	api.Post("/community-centres", centre.RegisterHandler())
	api.Post("/community-centres/login", auth.CentreLoginHandler(cfg))
	api.Post("/users", donor.RegisterHandler())
	api.Post("/users/login", auth.DonorLoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Community centres
	protected.Get("/community-centres", centre.ListHandler())
	protected.Get("/community-centres/:id", centre.GetHandler())

	// Donors
	protected.Get("/users", donor.ListHandler())
	protected.Get("/users/:id", donor.GetHandler())
	protected.Get("/users/:id/token-count", donor.GetTokenCountHandler())
	protected.Put("/users/:id/token-count", donor.SetTokenCountHandler())

	// Requirements ("today" must be registered before ":id")
	protected.Post("/requirements", requirement.UpsertHandler())
	protected.Get("/requirements", requirement.ListHandler())
	protected.Get("/requirements/today", requirement.TodayHandler())
	protected.Get("/requirements/:id", requirement.GetHandler())

	// Per-centre actionable feed
	protected.Get("/requests/:communityCentreID", requirement.FeedHandler())

	// Food item pledges
	protected.Post("/food-items", fooditem.CreateHandler())
	protected.Get("/food-items/:requestID", fooditem.ListByRequestHandler())
	protected.Put("/food-items/:id/status", fooditem.UpdateStatusHandler())

	// Audit trail
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
