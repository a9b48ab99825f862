package deck

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Loader fetches decks and normalizes them into card tables.
type Loader struct {
	client *Client
	logger *zap.Logger
}

// NewLoader creates a new deck loader.
func NewLoader(client *Client, logger *zap.Logger) *Loader {
	return &Loader{
		client: client,
		logger: logger,
	}
}

// ParseDeckRef extracts the deck ID from a deck URL. The reference must
// carry a host and a path; the ID is the last non-empty path segment.
func ParseDeckRef(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", &InvalidInputError{Ref: ref, Reason: "empty reference"}
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", &InvalidInputError{Ref: ref, Reason: err.Error()}
	}
	if u.Host == "" {
		return "", &InvalidInputError{Ref: ref, Reason: "missing host"}
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i], nil
		}
	}

	return "", &InvalidInputError{Ref: ref, Reason: "no deck ID in path"}
}

// DeckName builds the synthesized deck identifier from the tribe and deck ID.
func DeckName(tribe, deckID string) string {
	return strings.ReplaceAll(tribe, " ", "_") + "_" + deckID
}

// Load fetches the referenced deck and returns its normalized card table.
// Mainboard rows are ordered by card name; the commander row, when the deck
// has one, is appended last with IsCommander set.
func (l *Loader) Load(ctx context.Context, deckRef, tribe string) ([]Card, error) {
	deckID, err := ParseDeckRef(deckRef)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("fetching deck",
		zap.String("deck_id", deckID),
		zap.String("tribe", tribe))

	raw, err := l.client.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	deckName := DeckName(tribe, deckID)
	cards := normalize(raw, deckName, tribe)
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	l.logger.Debug("deck normalized",
		zap.String("deck", deckName),
		zap.Int("cards", len(cards)))

	return cards, nil
}

// normalize flattens a Moxfield deck payload into card rows.
func normalize(raw *MoxfieldDeck, deckName, tribe string) []Card {
	names := make([]string, 0, len(raw.Mainboard))
	for name := range raw.Mainboard {
		names = append(names, name)
	}
	sort.Strings(names)

	cards := make([]Card, 0, len(names)+1)
	for _, name := range names {
		entry := raw.Mainboard[name]
		quantity := entry.Quantity
		if quantity < 1 {
			quantity = 1
		}
		cards = append(cards, newCard(entry.Card, quantity, deckName, tribe, false))
	}

	if raw.Main != nil {
		cards = append(cards, newCard(*raw.Main, 1, deckName, tribe, true))
	}

	return cards
}

func newCard(mc MoxfieldCard, quantity int, deckName, tribe string, commander bool) Card {
	return Card{
		DeckID:        deckName,
		Tribe:         tribe,
		Quantity:      quantity,
		Name:          mc.Name,
		TypeLine:      mc.TypeLine,
		CMC:           mc.CMC,
		ColorIdentity: strings.Join(mc.ColorIdentity, ","),
		PriceUSD:      mc.Prices.USD,
		EDHRecRank:    mc.EDHRecRank,
		OracleText:    mc.OracleText,
		IsCommander:   commander,
	}
}
