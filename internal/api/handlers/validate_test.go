package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edhtools/deckwarden/internal/combo"
	"github.com/edhtools/deckwarden/internal/validator"
)

// mockValidatorService is a mock implementation of the validation service.
type mockValidatorService struct {
	result    *validator.Result
	lastRef   string
	lastTribe string
}

func (m *mockValidatorService) Validate(_ context.Context, deckRef, tribeName string) *validator.Result {
	m.lastRef = deckRef
	m.lastTribe = tribeName
	return m.result
}

func postValidate(handler *ValidateHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Validate(rec, req)
	return rec
}

func TestValidateHandler(t *testing.T) {
	service := &mockValidatorService{
		result: &validator.Result{
			RunID:       "run-1",
			DeckName:    "Elf_abc123",
			Tribe:       "Elf",
			TotalPoints: 42,
			PointsValid: true,
			ComboStatus: combo.StatusNotFound,
			Messages:    []string{"Deck loaded: Elf_abc123 (2 cards)"},
		},
	}
	handler := NewValidateHandler(service)

	rec := postValidate(handler, `{"deck_url": "https://moxfield.com/decks/abc123", "tribe": "Elf"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if service.lastRef != "https://moxfield.com/decks/abc123" {
		t.Errorf("service received deck ref %q", service.lastRef)
	}
	if service.lastTribe != "Elf" {
		t.Errorf("service received tribe %q", service.lastTribe)
	}

	var envelope struct {
		Data validator.Result `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.DeckName != "Elf_abc123" {
		t.Errorf("deck_name = %q, want Elf_abc123", envelope.Data.DeckName)
	}
	if envelope.Data.TotalPoints != 42 {
		t.Errorf("total_points = %d, want 42", envelope.Data.TotalPoints)
	}
	if !envelope.Data.PointsValid {
		t.Error("points_valid = false, want true")
	}
}

func TestValidateHandlerBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{`},
		{"missing deck_url", `{"tribe": "Elf"}`},
		{"missing tribe", `{"deck_url": "https://moxfield.com/decks/abc123"}`},
		{"empty body fields", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockValidatorService{}
			rec := postValidate(NewValidateHandler(service), tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if service.lastRef != "" {
				t.Error("service was called for a malformed request")
			}
		})
	}
}

func TestValidateHandlerDegradedResultIsStillOK(t *testing.T) {
	// The pipeline absorbs its own failures; a degraded result is a valid
	// response, not a server error.
	service := &mockValidatorService{
		result: &validator.Result{
			Tribe:       "Elf",
			ComboStatus: combo.StatusUnknown,
			Messages:    []string{"Validation failed: deck service down"},
		},
	}

	rec := postValidate(NewValidateHandler(service), `{"deck_url": "https://moxfield.com/decks/abc123", "tribe": "Elf"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
