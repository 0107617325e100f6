package main

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/nkarpov/socialite-api/internal/api"
	"github.com/nkarpov/socialite-api/internal/config"
	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/platform/postgres"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB

	// Resource handlers, one per entity
	users     *api.UserHandler
	posts     *api.PostHandler
	likes     *api.LikeHandler
	comments  *api.CommentHandler
	followers *api.FollowerHandler
	hashtags  *api.HashtagHandler
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies (configuration, logger,
// database handle) that must be established before initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// One gorm-backed store per entity; the handlers own the request
	// schemas and translations.
	app.users = api.NewUserHandler(
		postgres.NewEntityStore[domain.User](db, postgres.UserMeta(), logger), logger)
	app.posts = api.NewPostHandler(
		postgres.NewEntityStore[domain.Post](db, postgres.PostMeta(), logger), logger)
	app.likes = api.NewLikeHandler(
		postgres.NewEntityStore[domain.Like](db, postgres.LikeMeta(), logger), logger)
	app.comments = api.NewCommentHandler(
		postgres.NewEntityStore[domain.Comment](db, postgres.CommentMeta(), logger), logger)
	app.followers = api.NewFollowerHandler(
		postgres.NewEntityStore[domain.Follower](db, postgres.FollowerMeta(), logger), logger)
	app.hashtags = api.NewHashtagHandler(
		postgres.NewEntityStore[domain.Hashtag](db, postgres.HashtagMeta(), logger), logger)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		sqlDB, err := app.db.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				app.logger.Error("error closing database connection", "error", err)
			}
		}
	}

	app.logger.Info("application shutdown completed")
}
