package main

import (
	"log"

	"github.com/blognity/backend/internal/ai"
	"github.com/blognity/backend/internal/metrics"
	"github.com/blognity/backend/internal/router"
	"github.com/blognity/backend/pkg/cache"
	"github.com/blognity/backend/pkg/config"
	"github.com/blognity/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	cfg := config.Load()

	cache.InitRedis(cfg.RedisAddr)
	defer cache.Close()

	metrics.StartServer(cfg.MetricsPort)

	aiClient := ai.NewClient(cfg.AIServiceURL)
	defer aiClient.Close()

	e := echo.New()
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	router.SetupRoutes(e, db.Postgres, cfg, aiClient)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
