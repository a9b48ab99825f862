package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edhtools/deckwarden/internal/api/handlers"
	"github.com/edhtools/deckwarden/internal/api/response"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		validateHandler := handlers.NewValidateHandler(s.service)
		r.Post("/validate", validateHandler.Validate)

		systemHandler := handlers.NewSystemHandler()
		r.Get("/version", systemHandler.GetVersion)
	})
}

// healthCheck returns server health status.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "deckwarden-api",
	})
}
