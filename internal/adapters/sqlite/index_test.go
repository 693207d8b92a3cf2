package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"cardbox/internal/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func testCards() []domain.Card {
	base := time.UnixMilli(1700000000000)
	return []domain.Card{
		domain.NewCard("1", "Slices grow by doubling capacity", "notes/go/slices.md", base),
		domain.NewCard("2", "Maps are not safe for concurrent writes", "notes/go/maps.md", base.Add(time.Second)),
		domain.NewCard("3", "100% of goroutines need a parent", "notes/go/conc.md", base.Add(2*time.Second)),
	}
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testCards()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search("SLICES")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ID != "1" {
		t.Errorf("result id = %q, want 1", results[0].ID)
	}
	if results[0].Directory != "notes/go" {
		t.Errorf("directory = %q, want notes/go", results[0].Directory)
	}
}

func TestSearchMatchesSourcePath(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testCards()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search("maps.md")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ID != "2" {
		t.Errorf("result id = %q, want 2", results[0].ID)
	}
}

func TestSearchOrdersNewestFirst(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testCards()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search("a")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("got %d results, want several", len(results))
	}
	if results[0].ID != "3" {
		t.Errorf("first result = %q, want newest card 3", results[0].ID)
	}
}

func TestSearchEscapesLikeWildcards(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testCards()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search("100%")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "3" {
		t.Errorf("literal %% search = %v, want only card 3", results)
	}
}

func TestSearchEmptyQueryMatchesNothing(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testCards()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	results, err := idx.Search("   ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if results != nil {
		t.Errorf("blank query returned %v", results)
	}
}

func TestRebuildReplacesPreviousContents(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testCards()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if err := idx.Rebuild(nil); err != nil {
		t.Fatalf("empty Rebuild: %v", err)
	}

	results, err := idx.Search("slices")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("stale cards survived rebuild: %v", results)
	}
}

func TestSnippetTruncatesLongText(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "wordy "
	}
	got := snippet(long)
	if len([]rune(got)) > snippetLen {
		t.Errorf("snippet length = %d, want <= %d", len([]rune(got)), snippetLen)
	}
}
