// Package router sets up all HTTP routes and middleware chains for the
// Photofolio API. Read endpoints are public; every mutation sits behind
// the bearer-token admin group.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"photofolio/internal/auth"
	"photofolio/internal/handlers"
	"photofolio/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, verifier *auth.Verifier, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// The gallery frontend is served from a different origin.
	if len(allowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type", "Accept"},
		})
		r.Use(c.Handler)
	}

	// Health check — no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public reads.
		r.Get("/categories", api.ListCategories)
		r.Get("/categories/{id}", api.GetCategory)
		r.Get("/photos", api.ListPhotos)
		r.Get("/photos/{id}", api.GetPhoto)
		r.Get("/videos", api.ListVideos)
		r.Get("/videos/{id}", api.GetVideo)
		r.Get("/contact", api.GetContact)

		// Login verification carries the credential in its body.
		r.Post("/admin/verify", api.VerifyAdmin)

		// Mutations — bearer token required.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(verifier))

			// Updates and deletes accept the record id as a path
			// segment, or on the flat route in the body (PUT) / the
			// ?id= parameter (DELETE).
			r.Post("/categories", api.CreateCategory)
			r.Put("/categories", api.UpdateCategory)
			r.Put("/categories/{id}", api.UpdateCategory)
			r.Delete("/categories", api.DeleteCategory)
			r.Delete("/categories/{id}", api.DeleteCategory)

			r.Post("/photos", api.CreatePhoto)
			r.Put("/photos", api.UpdatePhoto)
			r.Put("/photos/{id}", api.UpdatePhoto)
			r.Delete("/photos", api.DeletePhoto)
			r.Delete("/photos/{id}", api.DeletePhoto)

			r.Post("/videos", api.CreateVideo)
			r.Put("/videos", api.UpdateVideo)
			r.Put("/videos/{id}", api.UpdateVideo)
			r.Delete("/videos", api.DeleteVideo)
			r.Delete("/videos/{id}", api.DeleteVideo)

			r.Put("/contact", api.UpdateContact)

			r.Get("/admin/totp-setup", api.TOTPSetup)
			r.Delete("/admin/clear-defaults", api.ClearDefaults)
			r.Post("/admin/clear-defaults", api.ClearDefaultsTyped)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
