package main

import (
	"context"
	"log"

	"github.com/Jenicoon/fitcoach-backend/internal/ai"
	"github.com/Jenicoon/fitcoach-backend/internal/config"
	"github.com/Jenicoon/fitcoach-backend/internal/database"
	"github.com/Jenicoon/fitcoach-backend/internal/routes"
	"github.com/Jenicoon/fitcoach-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	pool, err := database.Connect(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// 3. Upstream clients
	aiClient, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer aiClient.Close()

	videos, err := services.NewVideoSearchService(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}

	// 4. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok": true,
		})
	})
	routes.RegisterRoutes(app, cfg, routes.Deps{
		DB:     pool,
		AI:     aiClient,
		Videos: videos,
	})

	// 5. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
