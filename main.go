package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fleachain_backend/config"
	"fleachain_backend/internal/ws"
	"fleachain_backend/middleware"
	"fleachain_backend/store"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.OpenDatabase()
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if err := config.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	st := store.New(db, hub, cfg.LoginDelay)

	app := fiber.New(fiber.Config{
		AppName:      "FleaChain Backend",
		ServerHeader: "FleaChain Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			// Send custom error page
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	setupRoutes(app, st, hub, cfg)

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
