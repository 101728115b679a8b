package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"timers/internal/config"
	"timers/internal/db"
	"timers/internal/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)
	ctx := context.Background()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Error(ctx, "open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database, cfg.MigrationsDir); err != nil {
		logger.Error(ctx, "run migrations", "dir", cfg.MigrationsDir, "error", err)
		database.Close()
		os.Exit(1)
	}

	logger.Info(ctx, "migrations applied successfully", "path", cfg.DBPath)
}
