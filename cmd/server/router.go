package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notekeeper/notes-api/internal/api"
	apimiddleware "github.com/notekeeper/notes-api/internal/api/middleware"
)

// setupRouter builds the full route tree: public auth endpoints, the
// note CRUD group behind JWT authentication, and the operational
// endpoints (health, metrics).
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.RequestMetrics(app.instrumentation))

	authHandler := api.NewAuthHandler(app.credentials, app.jwtService)
	noteHandler := api.NewNoteHandler(app.noteStore)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.instrumentation)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/notes", noteHandler.List)
			r.Post("/notes", noteHandler.Create)
			r.Get("/notes/{id}", noteHandler.Get)
			r.Put("/notes/{id}", noteHandler.Update)
			r.Delete("/notes/{id}", noteHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
