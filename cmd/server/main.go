package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"github.com/codesimplify/backend/internal/api"
	"github.com/codesimplify/backend/internal/auth"
	"github.com/codesimplify/backend/internal/config"
	"github.com/codesimplify/backend/internal/db"
	"github.com/codesimplify/backend/internal/githubapi"
	"github.com/codesimplify/backend/internal/llm"
	"github.com/codesimplify/backend/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init()
	log := logger.S()

	app := fiber.New(fiber.Config{
		AppName: "CodeSimplify API",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "codesimplify-backend",
		})
	})

	// The scan store is optional: without it summarization still works,
	// history is just not recorded.
	var scans *db.ScanStore
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbClient, err := db.NewNeo4jClient(ctx, db.Neo4jConfig{
		URI:      cfg.Neo4jURI,
		Username: cfg.Neo4jUser,
		Password: cfg.Neo4jPass,
	})
	cancel()
	if err != nil {
		log.Warnw("scan store unavailable, continuing without persistence", "error", err)
	} else {
		defer dbClient.Close()
		scans = db.NewScanStore(dbClient)
	}

	handler := api.NewHandler(
		cfg,
		githubapi.New(cfg.GitHubToken),
		llm.New(cfg.GatewayURL, cfg.GatewayKey, cfg.Model, cfg.AITimeout),
		scans,
	)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	api.SetupRoutes(app, handler, verifier)

	log.Infow("starting backend", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
