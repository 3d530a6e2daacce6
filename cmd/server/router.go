package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/salonworks/catalog-api/internal/api"
	apiMiddleware "github.com/salonworks/catalog-api/internal/api/middleware"
	"github.com/salonworks/catalog-api/internal/service/auth"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	serviceHandler := api.NewServiceHandler(app.serviceStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	adminOnly := authMiddleware.AuthenticateRole(auth.RoleAdmin)

	r.Route("/service", func(r chi.Router) {
		// Read endpoints are public.
		r.Get("/", serviceHandler.List)
		r.Get("/{id}", serviceHandler.Get)

		// Count requires a valid token but no particular role.
		r.With(authMiddleware.Authenticate).Get("/count", serviceHandler.Count)

		// Mutations require an admin token.
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", serviceHandler.Create)
			r.Put("/{id}", serviceHandler.Update)
			r.Patch("/{id}/name", serviceHandler.UpdateName)
			r.Patch("/{id}/price", serviceHandler.UpdatePrice)
			r.Delete("/{id}", serviceHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
