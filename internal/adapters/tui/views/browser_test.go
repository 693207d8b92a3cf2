package views

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/domain"
	"cardbox/internal/store"
)

type memState struct {
	snap *domain.Snapshot
}

func (m *memState) Load() (*domain.Snapshot, error) {
	if m.snap == nil {
		return domain.EmptySnapshot(), nil
	}
	return m.snap, nil
}

func (m *memState) Save(snap *domain.Snapshot) error {
	m.snap = snap
	return nil
}

func newTestStore(t *testing.T, cardCount int) *store.Store {
	t.Helper()
	s, err := store.Open(&memState{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for i := 0; i < cardCount; i++ {
		if _, err := s.CreateCard(fmt.Sprintf("card %d", i), "notes/a.md"); err != nil {
			t.Fatalf("CreateCard: %v", err)
		}
	}
	return s
}

func TestBrowserLoadsCards(t *testing.T) {
	s := newTestStore(t, 3)
	m := NewBrowserModel(s)

	msg := m.Reload()
	loaded, ok := msg.(cardsLoadedMsg)
	if !ok {
		t.Fatalf("Reload returned %T, want cardsLoadedMsg", msg)
	}
	if len(loaded.cards) != 3 {
		t.Errorf("loaded %d cards, want 3", len(loaded.cards))
	}

	m.Update(loaded)
	if m.paginator.TotalPages() != 1 {
		t.Errorf("pages = %d, want 1", m.paginator.TotalPages())
	}
}

func TestBrowserDeleteConfirmFlow(t *testing.T) {
	s := newTestStore(t, 2)
	m := NewBrowserModel(s)
	m.Update(m.Reload())

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if !m.confirm.Active() {
		t.Fatal("delete key did not open confirmation")
	}

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("confirm produced no command")
	}
	cmd()
	if got := len(s.All()); got != 1 {
		t.Errorf("cards after confirmed delete = %d, want 1", got)
	}
}

func TestBrowserCancelKeepsCard(t *testing.T) {
	s := newTestStore(t, 1)
	m := NewBrowserModel(s)
	m.Update(m.Reload())

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if m.confirm.Active() {
		t.Error("cancel left confirmation active")
	}
	if got := len(s.All()); got != 1 {
		t.Errorf("cards after cancelled delete = %d, want 1", got)
	}
}

func TestReviewSessionKeepAdvancesDeck(t *testing.T) {
	s := newTestStore(t, 3)
	m := NewReviewModel(s)

	msg := m.start()
	started, ok := msg.(deckStartedMsg)
	if !ok {
		t.Fatalf("start returned %T, want deckStartedMsg", msg)
	}
	m.Update(started)
	if m.deck.Len() != 3 {
		t.Fatalf("deck len = %d, want 3", m.deck.Len())
	}

	cmd := m.decide(true)
	m.Update(cmd())
	if m.deck.Position() != 1 {
		t.Errorf("position after keep = %d, want 1", m.deck.Position())
	}
	if m.kept != 1 {
		t.Errorf("kept counter = %d, want 1", m.kept)
	}
}

func TestReviewArrowAndSpaceShortcuts(t *testing.T) {
	s := newTestStore(t, 3)
	m := NewReviewModel(s)
	m.Update(m.start())

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(cmd())
	_, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(cmd())
	if m.kept != 2 {
		t.Errorf("kept after right+space = %d, want 2", m.kept)
	}

	_, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(cmd())
	if m.discarded != 1 {
		t.Errorf("discarded after left = %d, want 1", m.discarded)
	}
}

func TestReviewSelectionNarrowsToSource(t *testing.T) {
	s := newTestStore(t, 2)
	if _, err := s.CreateCard("other", "notes/b.md"); err != nil {
		t.Fatal(err)
	}

	m := NewReviewModel(s)
	m.SetSelection("notes/b.md")
	msg := m.start()
	started, ok := msg.(deckStartedMsg)
	if !ok {
		t.Fatalf("start returned %T, want deckStartedMsg", msg)
	}
	if started.deck.Len() != 1 {
		t.Errorf("selection deck len = %d, want 1", started.deck.Len())
	}
}
