// Package combo checks a deck for known combos via Commander Spellbook.
package combo

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edhtools/deckwarden/internal/deck"
)

// Status classifies the outcome of a combo check.
type Status string

const (
	// StatusFound means the deck contains a detected combo.
	StatusFound Status = "found"

	// StatusNotFound means the check completed without detecting a combo.
	StatusNotFound Status = "not_found"

	// StatusUnknown means the check could not be completed. Combo lookup is
	// advisory; an unreachable or confused backend never fails a validation.
	StatusUnknown Status = "unknown"
)

// Client queries the Commander Spellbook find-my-combos endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	csrfToken  string
	logger     *zap.Logger
}

// NewClient creates a new Commander Spellbook client. A zero timeout selects
// the default of 20 seconds.
func NewClient(url string, timeout time.Duration, csrfToken string, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:       url,
		csrfToken: csrfToken,
		logger:    logger,
	}
}

type comboRequest struct {
	Main       []comboCard `json:"main"`
	Commanders []comboCard `json:"commanders"`
}

type comboCard struct {
	Card     string `json:"card"`
	Quantity int    `json:"quantity"`
}

type comboResponse struct {
	Results comboResults `json:"results"`
}

type comboResults struct {
	Included []comboVariant `json:"included"`
}

type comboVariant struct {
	ID string `json:"id"`
}

// Check queries the combo backend for the given card table. It returns
// StatusUnknown for any deck that cannot form a query (fewer than two rows,
// a blank card name, no commander or no mainboard) and for any request,
// transport, or decode failure. It never returns an error.
func (c *Client) Check(ctx context.Context, cards []deck.Card) Status {
	payload, ok := buildPayload(cards)
	if !ok {
		c.logger.Debug("combo check skipped: deck cannot form a combo query",
			zap.Int("rows", len(cards)))
		return StatusUnknown
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Warn("combo check failed to encode payload", zap.Error(err))
		return StatusUnknown
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("combo check failed to build request", zap.Error(err))
		return StatusUnknown
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRFTOKEN", c.csrfToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("combo check request failed", zap.Error(err))
		return StatusUnknown
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("combo check returned unexpected status",
			zap.Int("status", resp.StatusCode))
		return StatusUnknown
	}

	var decoded comboResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Warn("combo check returned undecodable body", zap.Error(err))
		return StatusUnknown
	}

	return classify(decoded.Results.Included)
}

// buildPayload splits the table into mainboard and commander entries, each
// with quantity 1. The commander rows are the ones flagged IsCommander.
func buildPayload(cards []deck.Card) (comboRequest, bool) {
	if len(cards) < 2 {
		return comboRequest{}, false
	}

	var payload comboRequest
	for _, c := range cards {
		if c.Name == "" {
			return comboRequest{}, false
		}
		entry := comboCard{Card: c.Name, Quantity: 1}
		if c.IsCommander {
			payload.Commanders = append(payload.Commanders, entry)
		} else {
			payload.Main = append(payload.Main, entry)
		}
	}

	if len(payload.Main) == 0 || len(payload.Commanders) == 0 {
		return comboRequest{}, false
	}

	return payload, true
}

// classify sums dash-separated fragments across all returned combo IDs.
// One or two fragments total means a real combo; zero means none, and more
// than two means the backend matched loose permutations rather than a combo
// actually present in the deck.
func classify(included []comboVariant) Status {
	fragments := 0
	for _, v := range included {
		if v.ID == "" {
			continue
		}
		fragments += len(strings.Split(v.ID, "-"))
	}

	if fragments >= 1 && fragments <= 2 {
		return StatusFound
	}
	return StatusNotFound
}
