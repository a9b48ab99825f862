// Package deck loads Commander decks from the Moxfield API and normalizes
// them into a flat card table.
package deck

import "strings"

// Card is one row of the normalized deck table. Every card of the deck,
// commander included, becomes exactly one Card; the commander row is marked
// with IsCommander.
type Card struct {
	DeckID        string  `json:"deck_id"`
	Tribe         string  `json:"tribe"`
	Quantity      int     `json:"quantity"`
	Name          string  `json:"name"`
	TypeLine      string  `json:"type_line"`
	CMC           float64 `json:"cmc"`
	ColorIdentity string  `json:"color_identity"`
	PriceUSD      *string `json:"price_usd,omitempty"`
	EDHRecRank    *int    `json:"edhrec_rank,omitempty"`
	OracleText    string  `json:"oracle_text"`
	IsCommander   bool    `json:"is_commander"`
}

// IsCreature reports whether the card's type line contains "Creature".
// The match is case-sensitive, so "creature" in reminder text does not count.
func (c Card) IsCreature() bool {
	return strings.Contains(c.TypeLine, "Creature")
}
