package main

import (
	"flag"
	"log"

	"coursepro_backend/internal/app"
	"coursepro_backend/internal/config"
	"coursepro_backend/pkg/database"
	"coursepro_backend/pkg/logger"

	"go.uber.org/zap"
)

// @title CoursePro Admin API
// @version 1.0
// @description Administrative backend for the CoursePro course recommendation platform.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	migrate := flag.Bool("migrate", false, "run database migrations on startup")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.ForceMigrate = *migrate
	cfg.MigrateOnly = *migrateOnly

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	if cfg.MigrateOnly {
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("migration failed", zap.Error(err))
		}
		database.Close(db)
		logger.Log.Info("migration complete")
		return
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		logger.Log.Fatal("failed to start", zap.Error(err))
	}

	if err := a.Run(); err != nil {
		logger.Log.Fatal("server error", zap.Error(err))
	}
}
