package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cardbox/internal/domain"
)

func TestLoadMissingFileReturnsEmptySnapshot(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cards.json"))

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Cards) != 0 || snap.CurrentDeck != nil {
		t.Errorf("missing file produced non-empty snapshot: %+v", snap)
	}
	if snap.Settings.ReviewBatchSize != domain.DefaultReviewBatchSize {
		t.Errorf("batch size = %d, want default", snap.Settings.ReviewBatchSize)
	}
}

func TestLoadCorruptFileReturnsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Cards) != 0 {
		t.Errorf("corrupt file produced cards: %+v", snap.Cards)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "cards.json")
	store := NewFileStore(path)

	at := time.UnixMilli(1700000000000)
	snap := domain.EmptySnapshot()
	snap.Cards = []domain.Card{
		domain.NewCard("1700000000000", "alpha", "notes/a.md", at),
		domain.NewCard("1700000000000-1", "beta", "notes/a.md", at),
	}
	snap.CurrentDeck = domain.NewDeck(snap.Cards)
	snap.CurrentDeck.Advance()
	snap.Directories = []string{"archive"}

	if err := store.Save(snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Cards) != 2 {
		t.Fatalf("loaded %d cards, want 2", len(got.Cards))
	}
	if got.Cards[0].Directory != "notes" {
		t.Errorf("directory = %q, want %q", got.Cards[0].Directory, "notes")
	}
	if got.CurrentDeck == nil || got.CurrentDeck.Position() != 1 {
		t.Errorf("deck cursor lost: %+v", got.CurrentDeck)
	}
	if len(got.Directories) != 1 || got.Directories[0] != "archive" {
		t.Errorf("directories = %v", got.Directories)
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	store := NewFileStore(path)

	first := domain.EmptySnapshot()
	first.Cards = []domain.Card{domain.NewCard("1", "one", "a.md", time.Now())}
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := domain.EmptySnapshot()
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Cards) != 0 {
		t.Errorf("stale cards survived overwrite: %v", got.Cards)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}
