package handlers

import (
	"net/http"

	"github.com/edhtools/deckwarden/internal/api/response"
	"github.com/edhtools/deckwarden/internal/version"
)

// SystemHandler handles service metadata requests.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// GetVersion returns the build version.
func (h *SystemHandler) GetVersion(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"version": version.Version,
	})
}
