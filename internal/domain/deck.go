package domain

import "slices"

// Deck is one in-progress review pass: an ordered slice of card snapshots
// frozen at build time plus a cursor. The cursor ranges over
// [0, len(Cards)]; at len(Cards) the deck is exhausted.
//
// Deck cards are copies, not references. A card may have been deleted from
// the store after the deck was built; consumers must tolerate a snapshot
// whose id no longer resolves.
type Deck struct {
	Cards        []Card `json:"cards"`
	CurrentIndex int    `json:"currentIndex"`
}

// NewDeck starts a deck over a snapshot of the given cards.
func NewDeck(cards []Card) *Deck {
	return &Deck{Cards: slices.Clone(cards)}
}

// Active reports whether there is a card left to review.
func (d *Deck) Active() bool {
	return d != nil && d.CurrentIndex < len(d.Cards)
}

// Exhausted reports whether every card in the deck has been decided.
// An exhausted deck is not cleared automatically; the caller decides.
func (d *Deck) Exhausted() bool {
	return d != nil && d.CurrentIndex >= len(d.Cards)
}

// Current returns the card under the cursor.
func (d *Deck) Current() (Card, bool) {
	if !d.Active() {
		return Card{}, false
	}
	return d.Cards[d.CurrentIndex], true
}

// Advance moves the cursor past the current card, once per review decision.
// It never moves past len(Cards).
func (d *Deck) Advance() {
	if d.CurrentIndex < len(d.Cards) {
		d.CurrentIndex++
	}
}

// Remaining returns a copy of the undecided slice, cards[CurrentIndex:].
// This is what a resumed session reviews.
func (d *Deck) Remaining() []Card {
	if d == nil || d.CurrentIndex >= len(d.Cards) {
		return nil
	}
	return slices.Clone(d.Cards[d.CurrentIndex:])
}

// Len returns the total number of cards in the deck.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Cards)
}

// Position returns the 0-based cursor position.
func (d *Deck) Position() int {
	if d == nil {
		return 0
	}
	return d.CurrentIndex
}

// Clone returns a deep copy of the deck, or nil for a nil deck.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	return &Deck{Cards: slices.Clone(d.Cards), CurrentIndex: d.CurrentIndex}
}
