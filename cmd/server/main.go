package main

import (
	"context"
	"log"
	"os"
	"time"

	"loan-reconciliation-backend/internal/app"
	"loan-reconciliation-backend/internal/config"
	"loan-reconciliation-backend/internal/logging"
	"loan-reconciliation-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(os.Stderr, cfg.Logging.Format, logging.LevelFromString(cfg.Logging.Level))

	ctx := context.Background()
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close(ctx)

	if err := a.Migrate(); err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, a.DB, a.Service, a.Findings)

	logger.Info("listening", "addr", cfg.HTTP.Addr, "record_source", cfg.RecordSource, "sink", cfg.Reconciliation.PartitionSink)
	if err := r.Run(cfg.HTTP.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
