package domain

import (
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	// RootDirectory is the label every card falls back to when its source
	// has no parent folder. It always exists, even with zero cards.
	RootDirectory = "inbox"

	// UnknownSource marks cards captured outside any document.
	UnknownSource = "unknown"
)

// Card is one reviewable text snippet.
type Card struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Source    string `json:"source"`
	Directory string `json:"directory"`
	CreatedAt int64  `json:"createdAt"` // milliseconds since epoch
	Reviewed  bool   `json:"reviewed"`
	Kept      bool   `json:"kept"`
}

// NewCard builds a card from trimmed text and its originating document path.
// The directory label is derived from the source at creation time.
func NewCard(id, text, source string, createdAt time.Time) Card {
	if source == "" {
		source = UnknownSource
	}
	return Card{
		ID:        id,
		Text:      strings.TrimSpace(text),
		Source:    source,
		Directory: DeriveDirectory(source),
		CreatedAt: createdAt.UnixMilli(),
	}
}

// DeriveDirectory strips the last path segment from a source path.
// Sources without a parent segment, or the unknown sentinel, land in
// the root directory.
func DeriveDirectory(source string) string {
	if source == "" || source == UnknownSource {
		return RootDirectory
	}
	dir := path.Dir(source)
	if dir == "." || dir == "/" {
		return RootDirectory
	}
	return dir
}

// MintID derives a card id from the creation timestamp. seq disambiguates
// cards minted within the same millisecond (bulk capture); seq 0 yields the
// bare timestamp form used for single creations.
func MintID(t time.Time, seq int) string {
	id := strconv.FormatInt(t.UnixMilli(), 10)
	if seq > 0 {
		id += "-" + strconv.Itoa(seq)
	}
	return id
}

// CreatedTime returns the card's creation timestamp as a time.Time.
func (c Card) CreatedTime() time.Time {
	return time.UnixMilli(c.CreatedAt)
}
