// Package main implements the entry point for the socialite API server,
// a REST API exposing CRUD and search operations over the social graph
// entities (users, posts, likes, comments, followers, hashtags).
package main

import (
	"context"
	"log"

	"github.com/nkarpov/socialite-api/internal/config"
	"github.com/nkarpov/socialite-api/internal/platform/logger"
	"github.com/nkarpov/socialite-api/internal/platform/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	db, err := postgres.Open(cfg.Database, logg)
	if err != nil {
		logg.Error("failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := applyMigrations(db, logg); err != nil {
		logg.Error("failed to apply migrations", "error", err)
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	app, err := newApplication(cfg, logg, db)
	if err != nil {
		logg.Error("failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		logg.Error("server exited with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}
