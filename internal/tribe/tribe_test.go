package tribe

import (
	"reflect"
	"testing"

	"github.com/edhtools/deckwarden/internal/deck"
)

func TestMismatches(t *testing.T) {
	cards := []deck.Card{
		{Name: "Llanowar Elves", TypeLine: "Creature — Elf Druid", Quantity: 1},
		{Name: "Grizzly Bears", TypeLine: "Creature — Bear", Quantity: 1},
		{Name: "Imperious Perfect", TypeLine: "Creature — Elf Warrior", Quantity: 1},
		{Name: "Forest", TypeLine: "Basic Land — Forest", Quantity: 10},
		{Name: "Ezuri, Renegade Leader", TypeLine: "Legendary Creature — Elf Warrior", Quantity: 1, IsCommander: true},
		{Name: "Wolf Pack", TypeLine: "Creature — Wolf", Quantity: 1},
	}

	got := Mismatches(cards, "Elf")
	want := []Mismatch{
		{Name: "Grizzly Bears", TypeLine: "Creature — Bear"},
		{Name: "Wolf Pack", TypeLine: "Creature — Wolf"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Mismatches() = %+v, want %+v", got, want)
	}
}

func TestMismatchesOracleTextCounts(t *testing.T) {
	// A non-Elf creature whose rules text supports the tribe is a match.
	cards := []deck.Card{
		{
			Name:       "Wirewood Lodge Keeper",
			TypeLine:   "Creature — Human",
			OracleText: "Untap target Elf.",
			Quantity:   1,
		},
	}

	if got := Mismatches(cards, "Elf"); len(got) != 0 {
		t.Errorf("Mismatches() = %+v, want none (oracle text mentions the tribe)", got)
	}
}

func TestMismatchesCaseInsensitive(t *testing.T) {
	cards := []deck.Card{
		{Name: "Elvish Mystic", TypeLine: "Creature — ELF Druid", Quantity: 1},
	}

	if got := Mismatches(cards, "elf"); len(got) != 0 {
		t.Errorf("Mismatches() = %+v, want none (matching ignores case)", got)
	}
}

func TestMismatchesSkipsSlashNames(t *testing.T) {
	cards := []deck.Card{
		{Name: "Ravager of the Fells // Huntmaster of the Fells", TypeLine: "Creature — Werewolf", Quantity: 1},
	}

	if got := Mismatches(cards, "Elf"); len(got) != 0 {
		t.Errorf("Mismatches() = %+v, want none (slash names are skipped)", got)
	}
}

func TestMismatchesExcludesCommanderAndNonCreatures(t *testing.T) {
	cards := []deck.Card{
		{Name: "Krenko, Mob Boss", TypeLine: "Legendary Creature — Goblin", Quantity: 1, IsCommander: true},
		{Name: "Lightning Bolt", TypeLine: "Instant", Quantity: 1},
	}

	if got := Mismatches(cards, "Elf"); len(got) != 0 {
		t.Errorf("Mismatches() = %+v, want none", got)
	}
}

func TestMismatchesEmptyInput(t *testing.T) {
	if got := Mismatches(nil, "Elf"); got != nil {
		t.Errorf("Mismatches(nil) = %+v, want nil", got)
	}
}

func TestMismatchesPreservesTableOrder(t *testing.T) {
	cards := []deck.Card{
		{Name: "Zetalpa, Primal Dawn", TypeLine: "Legendary Creature — Elder Dinosaur", Quantity: 1},
		{Name: "Axebane Beast", TypeLine: "Creature — Beast", Quantity: 1},
		{Name: "Murmuring Phantasm", TypeLine: "Creature — Spirit", Quantity: 1},
	}

	got := Mismatches(cards, "Elf")
	wantNames := []string{"Zetalpa, Primal Dawn", "Axebane Beast", "Murmuring Phantasm"}

	if len(got) != len(wantNames) {
		t.Fatalf("Mismatches() returned %d rows, want %d", len(got), len(wantNames))
	}
	for i, want := range wantNames {
		if got[i].Name != want {
			t.Errorf("Mismatches()[%d].Name = %q, want %q", i, got[i].Name, want)
		}
	}
}
