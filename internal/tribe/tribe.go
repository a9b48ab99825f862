// Package tribe flags creatures that fall outside a deck's declared tribe.
package tribe

import (
	"strings"

	"github.com/edhtools/deckwarden/internal/deck"
)

// Mismatch is a creature that does not belong to the declared tribe.
type Mismatch struct {
	Name     string `json:"name"`
	TypeLine string `json:"type_line"`
}

// Mismatches returns the deck's non-commander creatures whose type line and
// oracle text both lack the tribe name. Matching is case-insensitive
// substring containment, so "Elf" covers "Elves" type lines as well as
// creatures that merely reference the tribe in their rules text.
// Double-faced and split cards (names containing "/") are skipped. Rows come
// back in table order.
func Mismatches(cards []deck.Card, tribeName string) []Mismatch {
	needle := strings.ToLower(tribeName)

	var mismatches []Mismatch
	for _, c := range cards {
		if !c.IsCreature() || c.IsCommander {
			continue
		}
		if strings.Contains(c.Name, "/") {
			continue
		}

		typeLine := strings.ToLower(c.TypeLine)
		oracle := strings.ToLower(c.OracleText)
		if strings.Contains(typeLine, needle) || strings.Contains(oracle, needle) {
			continue
		}

		mismatches = append(mismatches, Mismatch{
			Name:     c.Name,
			TypeLine: c.TypeLine,
		})
	}

	return mismatches
}
