package commands

import (
	"strconv"
	"time"

	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// fakeStore is a minimal in-memory ports.CardStore for command tests.
type fakeStore struct {
	cards  []domain.Card
	moved  map[string]string
	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{moved: map[string]string{}}
}

func (f *fakeStore) mint() string {
	f.nextID++
	return strconv.Itoa(f.nextID)
}

func (f *fakeStore) CreateCard(text, source string) (domain.Card, error) {
	card := domain.NewCard(f.mint(), text, source, time.Now())
	f.cards = append(f.cards, card)
	return card, nil
}

func (f *fakeStore) CreateCardsFromBlocks(source string, texts []string) ([]domain.Card, error) {
	var out []domain.Card
	for _, t := range texts {
		card, _ := f.CreateCard(t, source)
		out = append(out, card)
	}
	return out, nil
}

func (f *fakeStore) DeleteCard(id string) error                { return nil }
func (f *fakeStore) MarkReviewed(id string, kept bool) error   { return nil }
func (f *fakeStore) ResetReviewedKept() error                  { return nil }
func (f *fakeStore) MoveSourceToDirectory(source, dir string) error {
	f.moved[source] = dir
	return nil
}

func (f *fakeStore) Unreviewed() []domain.Card { return f.cards }
func (f *fakeStore) All() []domain.Card        { return f.cards }
func (f *fakeStore) AllPaged(page, size int) ([]domain.Card, int) {
	return f.cards, len(f.cards)
}
func (f *fakeStore) Stats() (int, int, int) { return len(f.cards), 0, len(f.cards) }

func (f *fakeStore) Directories() []string                        { return domain.DirectoryNames(f.cards, nil) }
func (f *fakeStore) SourcesInDirectory(dir string) []string       { return domain.SourcesIn(f.cards, dir) }
func (f *fakeStore) CardsInDirectory(dir string) []domain.Card    { return domain.CardsIn(f.cards, dir) }
func (f *fakeStore) CardsFromSource(source string) []domain.Card  { return domain.CardsFrom(f.cards, source) }
func (f *fakeStore) CreateDirectory(name string) error            { return nil }
func (f *fakeStore) DeleteDirectory(name string) error            { return nil }

func (f *fakeStore) Deck() *domain.Deck { return nil }
func (f *fakeStore) StartReview(selection []domain.Card) (*domain.Deck, error) {
	return domain.NewDeck(selection), nil
}
func (f *fakeStore) RecordDecision(keep bool) (domain.Card, error) { return domain.Card{}, nil }
func (f *fakeStore) ClearDeck() error                              { return nil }

func (f *fakeStore) Settings() domain.Settings               { return domain.DefaultSettings() }
func (f *fakeStore) UpdateSettings(s domain.Settings) error  { return nil }
func (f *fakeStore) Flush() error                            { return nil }
func (f *fakeStore) Subscribe(ports.Observer)                {}
