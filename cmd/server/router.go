package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/nkarpov/socialite-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Each entity mounts its six-operation group under
// /v1/<plural>.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Route("/v1", func(r chi.Router) {
		r.Mount("/users", app.users.Routes())
		r.Mount("/posts", app.posts.Routes())
		r.Mount("/likes", app.likes.Routes())
		r.Mount("/comments", app.comments.Routes())
		r.Mount("/followers", app.followers.Routes())
		r.Mount("/hashtags", app.hashtags.Routes())
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
