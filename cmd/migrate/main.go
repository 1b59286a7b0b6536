package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/config"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/logger"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/postgres"
	repo "github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/repository/postgres"
)

func init() {
	time.Local = time.UTC
}

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)

	db, err := postgres.NewDB(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Infow("Running database migrations")

	if err := repo.NewMigrator(db, logger).Run(ctx); err != nil {
		logger.Fatalw("Migration failed", "error", err)
	}

	logger.Infow("Migration completed successfully")
}
