package scoring

import (
	"reflect"
	"testing"

	"github.com/edhtools/deckwarden/internal/deck"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name string
		cmc  float64
		want int
	}{
		{"zero", 0, 5},
		{"one", 1, 5},
		{"two", 2, 4},
		{"three", 3, 3},
		{"four", 4, 2},
		{"five", 5, 1},
		{"six", 6, 0},
		{"ten", 10, 0},
		{"fractional truncates down", 2.7, 4},
		{"just below six", 5.9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.cmc); got != tt.want {
				t.Errorf("Points(%v) = %d, want %d", tt.cmc, got, tt.want)
			}
		})
	}
}

func creature(name string, cmc float64, quantity int) deck.Card {
	return deck.Card{
		Name:     name,
		TypeLine: "Creature — Elf",
		CMC:      cmc,
		Quantity: quantity,
	}
}

func TestScore(t *testing.T) {
	cards := []deck.Card{
		creature("Arbor Elf", 1, 1),
		creature("Elvish Visionary", 2, 1),
		creature("Wellwisher", 2, 1),
		{Name: "Forest", TypeLine: "Basic Land — Forest", CMC: 0, Quantity: 10},
		{Name: "Ezuri, Renegade Leader", TypeLine: "Legendary Creature — Elf Warrior", CMC: 3, Quantity: 1, IsCommander: true},
	}

	buckets, total, legal := Score(cards, DefaultLimits)

	if total != 13 {
		t.Errorf("total = %d, want 13", total)
	}
	if legal {
		t.Error("legal = true, want false (13 is below the minimum)")
	}

	want := []Bucket{
		{ManaValue: "1", Quantity: 1, Points: 5, UniqueCards: 1},
		{ManaValue: "2", Quantity: 2, Points: 8, UniqueCards: 2},
	}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("buckets = %+v, want %+v", buckets, want)
	}
}

func TestScoreQuantityMultiplies(t *testing.T) {
	single := []deck.Card{creature("Llanowar Elves", 1, 1)}
	double := []deck.Card{creature("Llanowar Elves", 1, 2)}

	_, singleTotal, _ := Score(single, DefaultLimits)
	_, doubleTotal, _ := Score(double, DefaultLimits)

	if doubleTotal != 2*singleTotal {
		t.Errorf("doubled quantity total = %d, want %d", doubleTotal, 2*singleTotal)
	}
}

func TestScoreSplitRowsEquivalent(t *testing.T) {
	merged := []deck.Card{creature("Llanowar Elves", 1, 2)}
	split := []deck.Card{
		creature("Llanowar Elves", 1, 1),
		creature("Llanowar Elves", 1, 1),
	}

	mergedBuckets, mergedTotal, _ := Score(merged, DefaultLimits)
	splitBuckets, splitTotal, _ := Score(split, DefaultLimits)

	if mergedTotal != splitTotal {
		t.Errorf("split total = %d, merged total = %d", splitTotal, mergedTotal)
	}
	if !reflect.DeepEqual(mergedBuckets, splitBuckets) {
		t.Errorf("split buckets = %+v, merged buckets = %+v", splitBuckets, mergedBuckets)
	}
}

func TestScoreOrderInvariant(t *testing.T) {
	forward := []deck.Card{
		creature("A", 0, 1),
		creature("B", 3, 2),
		creature("C", 7, 1),
	}
	reversed := []deck.Card{forward[2], forward[1], forward[0]}

	fBuckets, fTotal, fLegal := Score(forward, DefaultLimits)
	rBuckets, rTotal, rLegal := Score(reversed, DefaultLimits)

	if fTotal != rTotal || fLegal != rLegal {
		t.Errorf("reordered input changed result: (%d, %v) vs (%d, %v)", fTotal, fLegal, rTotal, rLegal)
	}
	if !reflect.DeepEqual(fBuckets, rBuckets) {
		t.Errorf("reordered input changed buckets: %+v vs %+v", rBuckets, fBuckets)
	}
}

func TestScoreHighCurveBand(t *testing.T) {
	cards := []deck.Card{
		creature("Big One", 6, 1),
		creature("Bigger One", 8.5, 2),
	}

	buckets, total, _ := Score(cards, DefaultLimits)

	if total != 0 {
		t.Errorf("total = %d, want 0 (six-plus scores nothing)", total)
	}
	want := []Bucket{{ManaValue: "6+", Quantity: 3, Points: 0, UniqueCards: 2}}
	if !reflect.DeepEqual(buckets, want) {
		t.Errorf("buckets = %+v, want %+v", buckets, want)
	}
}

func TestScoreNoCreatures(t *testing.T) {
	tests := []struct {
		name  string
		cards []deck.Card
	}{
		{"empty table", nil},
		{"only lands", []deck.Card{{Name: "Island", TypeLine: "Basic Land — Island", Quantity: 30}}},
		{"only commander", []deck.Card{{Name: "Ezuri", TypeLine: "Legendary Creature — Elf", CMC: 3, Quantity: 1, IsCommander: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets, total, legal := Score(tt.cards, DefaultLimits)
			if buckets != nil {
				t.Errorf("buckets = %+v, want nil", buckets)
			}
			if total != 0 {
				t.Errorf("total = %d, want 0", total)
			}
			if legal {
				t.Error("legal = true, want false")
			}
		})
	}
}

func TestScoreLegalityBounds(t *testing.T) {
	tests := []struct {
		name      string
		cards     []deck.Card
		wantTotal int
		wantLegal bool
	}{
		{
			name:      "one below minimum",
			cards:     []deck.Card{creature("A", 0, 7), creature("B", 4, 2)},
			wantTotal: 39,
			wantLegal: false,
		},
		{
			name:      "exactly minimum",
			cards:     []deck.Card{creature("A", 0, 8)},
			wantTotal: 40,
			wantLegal: true,
		},
		{
			name:      "exactly maximum",
			cards:     []deck.Card{creature("A", 0, 20)},
			wantTotal: 100,
			wantLegal: true,
		},
		{
			name:      "one above maximum",
			cards:     []deck.Card{creature("A", 0, 20), creature("B", 5, 1)},
			wantTotal: 101,
			wantLegal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, legal := Score(tt.cards, DefaultLimits)
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if legal != tt.wantLegal {
				t.Errorf("legal = %v, want %v", legal, tt.wantLegal)
			}
		})
	}
}

func TestScoreCustomLimits(t *testing.T) {
	cards := []deck.Card{creature("A", 0, 2)} // 10 points

	if _, _, legal := Score(cards, Limits{Min: 5, Max: 15}); !legal {
		t.Error("legal = false inside custom limits")
	}
	if _, _, legal := Score(cards, Limits{Min: 11, Max: 20}); legal {
		t.Error("legal = true below custom minimum")
	}
}
