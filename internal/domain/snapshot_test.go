package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSnapshotMigrateBackfillsDirectories(t *testing.T) {
	snap := &Snapshot{
		Cards: []Card{
			{ID: "1", Text: "a", Source: "notes/sub/page.md"},
			{ID: "2", Text: "b", Source: "page.md"},
			{ID: "3", Text: "c", Source: "other/doc.md", Directory: "custom"},
		},
		CurrentDeck: &Deck{
			Cards:        []Card{{ID: "1", Text: "a", Source: "notes/sub/page.md"}},
			CurrentIndex: 5, // corrupt cursor
		},
	}

	snap.Migrate()

	if snap.Cards[0].Directory != "notes/sub" {
		t.Errorf("card 1 directory = %q, want notes/sub", snap.Cards[0].Directory)
	}
	if snap.Cards[1].Directory != RootDirectory {
		t.Errorf("card 2 directory = %q, want root", snap.Cards[1].Directory)
	}
	if snap.Cards[2].Directory != "custom" {
		t.Errorf("migration must not overwrite an assigned directory, got %q", snap.Cards[2].Directory)
	}
	if snap.CurrentDeck.Cards[0].Directory != "notes/sub" {
		t.Errorf("deck snapshot directory = %q, want notes/sub", snap.CurrentDeck.Cards[0].Directory)
	}
	if snap.CurrentDeck.CurrentIndex != 1 {
		t.Errorf("corrupt deck cursor must clamp to len(cards), got %d", snap.CurrentDeck.CurrentIndex)
	}
	if snap.Settings.ReviewBatchSize != DefaultReviewBatchSize {
		t.Errorf("settings must be normalized, got batch %d", snap.Settings.ReviewBatchSize)
	}
}

func TestSnapshotLegacyBlobTolerated(t *testing.T) {
	// A legacy blob: no directory per card, no currentDeck, partial settings.
	blob := `{
		"cards": [{"id":"1","text":"a","source":"notes/page.md","createdAt":1,"reviewed":false,"kept":false}],
		"settings": {"reviewBatchSize": 5}
	}`

	var snap Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		t.Fatalf("unmarshal legacy blob: %v", err)
	}
	snap.Migrate()

	if snap.CurrentDeck != nil {
		t.Error("missing currentDeck must load as nil")
	}
	if snap.Cards[0].Directory != "notes" {
		t.Errorf("directory not derived on load: %q", snap.Cards[0].Directory)
	}
	want := Settings{AutoSave: true, ReviewBatchSize: 5}
	if snap.Settings != want {
		t.Errorf("settings = %+v, want %+v", snap.Settings, want)
	}
}

func TestDirectoryNames(t *testing.T) {
	cards := []Card{
		{ID: "1", Directory: "work"},
		{ID: "2", Directory: "notes"},
		{ID: "3", Directory: "work"},
	}

	got := DirectoryNames(cards, []string{"zed", "archive", ""})
	want := []string{RootDirectory, "archive", "notes", "work", "zed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DirectoryNames = %v, want %v", got, want)
	}

	// Root label exists even with zero cards and zero user labels.
	got = DirectoryNames(nil, nil)
	if !reflect.DeepEqual(got, []string{RootDirectory}) {
		t.Errorf("empty store must still expose the root label, got %v", got)
	}
}

func TestSourcesIn(t *testing.T) {
	cards := []Card{
		{ID: "1", Directory: "notes", Source: "notes/b.md"},
		{ID: "2", Directory: "notes", Source: "notes/a.md"},
		{ID: "3", Directory: "notes", Source: "notes/a.md"},
		{ID: "4", Directory: "work", Source: "work/x.md"},
	}

	got := SourcesIn(cards, "notes")
	want := []string{"notes/a.md", "notes/b.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SourcesIn = %v, want %v", got, want)
	}
}
