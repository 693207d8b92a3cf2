package domain

import (
	"testing"
	"time"
)

func TestDeriveDirectory(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "nested path",
			source: "notes/sub/page.md",
			want:   "notes/sub",
		},
		{
			name:   "single segment",
			source: "page.md",
			want:   RootDirectory,
		},
		{
			name:   "one level deep",
			source: "notes/page.md",
			want:   "notes",
		},
		{
			name:   "unknown sentinel",
			source: UnknownSource,
			want:   RootDirectory,
		},
		{
			name:   "empty source",
			source: "",
			want:   RootDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveDirectory(tt.source); got != tt.want {
				t.Errorf("DeriveDirectory(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestMintID(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	if got := MintID(at, 0); got != "1700000000000" {
		t.Errorf("MintID(seq 0) = %q, want bare timestamp", got)
	}
	if got := MintID(at, 3); got != "1700000000000-3" {
		t.Errorf("MintID(seq 3) = %q, want timestamp-3", got)
	}
}

func TestNewCard(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	card := NewCard("1", "  some text  ", "notes/page.md", at)

	if card.Text != "some text" {
		t.Errorf("expected trimmed text, got %q", card.Text)
	}
	if card.Directory != "notes" {
		t.Errorf("expected directory notes, got %q", card.Directory)
	}
	if card.CreatedAt != 1700000000000 {
		t.Errorf("expected createdAt in milliseconds, got %d", card.CreatedAt)
	}
	if card.Reviewed || card.Kept {
		t.Error("new card must be unreviewed")
	}

	nowhere := NewCard("2", "text", "", at)
	if nowhere.Source != UnknownSource {
		t.Errorf("expected unknown source sentinel, got %q", nowhere.Source)
	}
	if nowhere.Directory != RootDirectory {
		t.Errorf("expected root directory, got %q", nowhere.Directory)
	}
}
