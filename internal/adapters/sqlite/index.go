// Package sqlite provides the keyword search index over captured cards.
// The index is derived data; the JSON snapshot stays the source of truth
// and the index is rebuilt from it wholesale.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cardbox/internal/domain"
	"cardbox/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// snippetLen caps the text excerpt returned per search hit.
const snippetLen = 120

// Index implements ports.SearchIndex using SQLite.
type Index struct {
	db     *sql.DB
	dbPath string
}

var _ ports.SearchIndex = (*Index)(nil)

// Open initializes the index at dbPath, creating the schema if needed.
func Open(dbPath string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			source TEXT NOT NULL,
			directory TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cards_source ON cards(source);
		CREATE INDEX IF NOT EXISTS idx_cards_directory ON cards(directory);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	idx := &Index{db: db, dbPath: dbPath}
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}
	return idx, nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)
	`, schemaVersion)
	return err
}

// Rebuild replaces the indexed cards with the given set in one transaction.
func (idx *Index) Rebuild(cards []domain.Card) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cards`); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO cards (id, text, source, directory, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cards {
		if _, err := stmt.Exec(c.ID, c.Text, c.Source, c.Directory, c.CreatedAt); err != nil {
			return fmt.Errorf("failed to index card %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// Search returns cards whose text or source contains the query,
// case-insensitively, newest first. An empty query matches nothing.
func (idx *Index) Search(query string) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	pattern := "%" + escapeLike(query) + "%"
	rows, err := idx.db.Query(`
		SELECT id, text, source, directory
		FROM cards
		WHERE text LIKE ? ESCAPE '\' COLLATE NOCASE
		   OR source LIKE ? ESCAPE '\' COLLATE NOCASE
		ORDER BY created_at DESC, id DESC
	`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var text string
		if err := rows.Scan(&r.ID, &text, &r.Source, &r.Directory); err != nil {
			return nil, err
		}
		r.Snippet = snippet(text)
		results = append(results, r)
	}
	return results, rows.Err()
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= snippetLen {
		return text
	}
	return string(runes[:snippetLen-1]) + "…"
}
