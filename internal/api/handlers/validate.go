// Package handlers contains the HTTP handlers for the API server.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edhtools/deckwarden/internal/api/response"
	"github.com/edhtools/deckwarden/internal/validator"
)

// ValidatorService runs deck validations.
type ValidatorService interface {
	Validate(ctx context.Context, deckRef, tribeName string) *validator.Result
}

// ValidateHandler handles deck validation requests.
type ValidateHandler struct {
	service ValidatorService
}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler(service ValidatorService) *ValidateHandler {
	return &ValidateHandler{service: service}
}

// ValidateRequest represents a deck validation request.
type ValidateRequest struct {
	DeckURL string `json:"deck_url"`
	Tribe   string `json:"tribe"`
}

// Validate runs the full validation pipeline for the submitted deck. The
// pipeline itself never fails, so a degraded result (unreachable deck
// service, missing list file) still returns 200 with its messages; only a
// malformed request is rejected.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	if req.DeckURL == "" {
		response.BadRequest(w, errors.New("deck_url is required"))
		return
	}
	if req.Tribe == "" {
		response.BadRequest(w, errors.New("tribe is required"))
		return
	}

	result := h.service.Validate(r.Context(), req.DeckURL, req.Tribe)
	response.Success(w, result)
}
