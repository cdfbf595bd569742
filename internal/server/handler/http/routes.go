package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/atinyakov/pakjobs/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the board.
//
// Routes:
//
//	GET  /                        → pages.Index
//	POST /navigate                → pages.Navigate
//	POST /search                  → pages.Search
//	POST /filters                 → pages.Filters
//	POST /filters/clear           → pages.ClearFilters
//	POST /filters/reset           → pages.ResetFilters
//	POST /cities/{city}           → pages.BrowseCity
//	POST /auth/mode               → pages.ToggleLoginMode
//	POST /auth/login              → pages.Login
//	POST /auth/register           → pages.Register
//	POST /auth/logout             → pages.Logout
//	POST /profile                 → pages.UpdateProfile
//	POST /jobs/{id}/apply         → pages.Apply
//	POST /notice/dismiss          → pages.DismissNotice
//	POST /notice/complete         → pages.CompleteFromNotice
//	GET  /api/jobs                → api.Jobs
//	GET  /api/catalog             → api.Catalog
//	GET  /api/session             → api.Session
//	POST /api/jobs/{id}/apply     → api.Apply
//
// Middleware chain (applied in order):
//  1. RequestID
//  2. WithRequestLogging(logger)
//  3. Recoverer
//
// Form actions only accept form-encoded bodies and the API only JSON
// bodies; empty bodies pass both.
func NewRouter(
	pages *PageHandler,
	api *APIHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", pages.Index)

	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/x-www-form-urlencoded", "multipart/form-data"))

		r.Post("/navigate", pages.Navigate)
		r.Post("/search", pages.Search)
		r.Post("/filters", pages.Filters)
		r.Post("/filters/clear", pages.ClearFilters)
		r.Post("/filters/reset", pages.ResetFilters)
		r.Post("/cities/{city}", pages.BrowseCity)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/mode", pages.ToggleLoginMode)
			r.Post("/login", pages.Login)
			r.Post("/register", pages.Register)
			r.Post("/logout", pages.Logout)
		})

		r.Post("/profile", pages.UpdateProfile)
		r.Post("/jobs/{id}/apply", pages.Apply)
		r.Post("/notice/dismiss", pages.DismissNotice)
		r.Post("/notice/complete", pages.CompleteFromNotice)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Get("/jobs", api.Jobs)
		r.Get("/catalog", api.Catalog)
		r.Get("/session", api.Session)
		r.Post("/jobs/{id}/apply", api.Apply)
	})

	return r
}
