package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	serviceName    = "moxfield"
	rateLimitDelay = 100 * time.Millisecond // 100ms between requests (10 req/sec)
	defaultTimeout = 30 * time.Second
)

// Client fetches deck data from the Moxfield API with rate limiting.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// NewClient creates a new Moxfield API client. A zero timeout selects the
// default of 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// Rate limiter: 1 request per 100ms = 10 req/sec
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		baseURL:     baseURL,
		userAgent:   "deckwarden/1.0",
	}
}

// MoxfieldDeck represents a deck payload from the Moxfield API. The
// mainboard is keyed by card name; Main holds the commander when present.
type MoxfieldDeck struct {
	Name      string                   `json:"name"`
	Mainboard map[string]MoxfieldEntry `json:"mainboard"`
	Main      *MoxfieldCard            `json:"main"`
}

// MoxfieldEntry represents one mainboard entry.
type MoxfieldEntry struct {
	Quantity int          `json:"quantity"`
	Card     MoxfieldCard `json:"card"`
}

// MoxfieldCard represents card metadata from Moxfield.
type MoxfieldCard struct {
	Name          string         `json:"name"`
	TypeLine      string         `json:"type_line"`
	CMC           float64        `json:"cmc"`
	ColorIdentity []string       `json:"color_identity"`
	Prices        MoxfieldPrices `json:"prices"`
	EDHRecRank    *int           `json:"edhrec_rank"`
	OracleText    string         `json:"oracle_text"`
}

// MoxfieldPrices represents card prices from Moxfield.
type MoxfieldPrices struct {
	USD *string `json:"usd"`
}

// GetDeck fetches a single deck by ID. The request is made exactly once:
// a deck load either succeeds within the client timeout or fails.
func (c *Client) GetDeck(ctx context.Context, deckID string) (*MoxfieldDeck, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, &UpstreamError{Service: serviceName, Err: err}
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, deckID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Service: serviceName, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Service: serviceName, StatusCode: resp.StatusCode}
	}

	var deck MoxfieldDeck
	if err := json.NewDecoder(resp.Body).Decode(&deck); err != nil {
		return nil, &InvalidResponseError{Service: serviceName, Err: err}
	}

	return &deck, nil
}
