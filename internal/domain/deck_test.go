package domain

import (
	"encoding/json"
	"testing"
)

func testCards(ids ...string) []Card {
	cards := make([]Card, len(ids))
	for i, id := range ids {
		cards[i] = Card{ID: id, Text: "text " + id, Source: UnknownSource, Directory: RootDirectory}
	}
	return cards
}

func TestDeckLifecycle(t *testing.T) {
	var absent *Deck
	if absent.Active() || absent.Exhausted() {
		t.Error("nil deck must be neither active nor exhausted")
	}

	deck := NewDeck(testCards("A", "B", "C"))
	if !deck.Active() {
		t.Fatal("fresh deck must be active")
	}
	if cur, ok := deck.Current(); !ok || cur.ID != "A" {
		t.Errorf("expected current card A, got %v ok=%v", cur.ID, ok)
	}

	deck.Advance()
	deck.Advance()
	deck.Advance()
	if !deck.Exhausted() {
		t.Error("deck must be exhausted after deciding every card")
	}
	if _, ok := deck.Current(); ok {
		t.Error("exhausted deck has no current card")
	}

	// Advancing past the end must not move the cursor.
	deck.Advance()
	if deck.CurrentIndex != 3 {
		t.Errorf("cursor moved past len(cards): %d", deck.CurrentIndex)
	}
}

func TestDeckResumeRoundTrip(t *testing.T) {
	deck := NewDeck(testCards("A", "B", "C"))
	deck.Advance()
	deck.Advance()

	data, err := json.Marshal(deck)
	if err != nil {
		t.Fatalf("marshal deck: %v", err)
	}

	var loaded Deck
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal deck: %v", err)
	}

	if !loaded.Active() {
		t.Fatal("reloaded deck with one card left must be active")
	}
	remaining := loaded.Remaining()
	if len(remaining) != 1 || remaining[0].ID != "C" {
		t.Errorf("expected resumed slice [C], got %v", remaining)
	}
}

func TestDeckSnapshotIsolation(t *testing.T) {
	cards := testCards("A", "B")
	deck := NewDeck(cards)

	cards[0].Text = "mutated"
	if deck.Cards[0].Text == "mutated" {
		t.Error("deck must hold copies, not references to the caller's slice")
	}
}
