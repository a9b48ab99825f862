// Package scoring computes the CMC point total of a Commander deck and
// summarizes its mana curve.
package scoring

import (
	"sort"
	"strconv"

	"github.com/edhtools/deckwarden/internal/deck"
)

// Limits bounds the legal point total, inclusive on both ends.
type Limits struct {
	Min int
	Max int
}

// DefaultLimits is the standard house-rule point window.
var DefaultLimits = Limits{Min: 40, Max: 100}

// pointsByManaValue maps truncated mana values to point weights. Mana values
// of six and above score zero.
var pointsByManaValue = map[int]int{
	0: 5,
	1: 5,
	2: 4,
	3: 3,
	4: 2,
	5: 1,
}

// Points returns the point weight of a single copy at the given mana value.
// Fractional mana values truncate toward zero.
func Points(cmc float64) int {
	return pointsByManaValue[int(cmc)]
}

// Bucket summarizes one mana value band of the curve.
type Bucket struct {
	ManaValue   string `json:"mana_value"`
	Quantity    int    `json:"quantity"`
	Points      int    `json:"points"`
	UniqueCards int    `json:"unique_cards"`
}

// bucketLabel groups mana value 6 and above into a single band.
func bucketLabel(cmc float64) string {
	mv := int(cmc)
	if mv >= 6 {
		return "6+"
	}
	return strconv.Itoa(mv)
}

// Score totals CMC points across a deck's non-commander creatures and
// summarizes the curve per mana value band. Points are per copy, so a
// quantity of 2 doubles a card's contribution. Buckets exist only for bands
// present in the deck, ordered ascending with "6+" last. The bool reports
// whether the total falls inside limits; a deck with no scorable creatures
// is never legal.
func Score(cards []deck.Card, limits Limits) ([]Bucket, int, bool) {
	type band struct {
		quantity int
		points   int
		names    map[string]struct{}
	}

	bands := make(map[string]*band)
	total := 0

	for _, c := range cards {
		if !c.IsCreature() || c.IsCommander {
			continue
		}

		label := bucketLabel(c.CMC)
		b := bands[label]
		if b == nil {
			b = &band{names: make(map[string]struct{})}
			bands[label] = b
		}

		points := Points(c.CMC) * c.Quantity
		b.quantity += c.Quantity
		b.points += points
		b.names[c.Name] = struct{}{}
		total += points
	}

	if len(bands) == 0 {
		return nil, 0, false
	}

	labels := make([]string, 0, len(bands))
	for label := range bands {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	buckets := make([]Bucket, 0, len(labels))
	for _, label := range labels {
		b := bands[label]
		buckets = append(buckets, Bucket{
			ManaValue:   label,
			Quantity:    b.quantity,
			Points:      b.points,
			UniqueCards: len(b.names),
		})
	}

	legal := total >= limits.Min && total <= limits.Max
	return buckets, total, legal
}
