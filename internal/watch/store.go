package watch

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates no stored position for the requested entry.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
	content_id TEXT PRIMARY KEY,
	added_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	content_id TEXT NOT NULL,
	entry      INTEGER NOT NULL DEFAULT 0,
	seconds    INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (content_id, entry)
);
`

// Store provides access to watch state.
type Store struct {
	db *sql.DB
}

// NewStore creates a watch store and ensures its tables exist.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply watch schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Favorite pins a record. Pinning an already-pinned record keeps the
// original added time.
func (s *Store) Favorite(contentID string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO favorites (content_id, added_at) VALUES (?, ?)",
		contentID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// Unfavorite unpins a record, reporting whether it was pinned.
func (s *Store) Unfavorite(contentID string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM favorites WHERE content_id = ?", contentID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

// IsFavorite reports whether a record is pinned.
func (s *Store) IsFavorite(contentID string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM favorites WHERE content_id = ?", contentID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query favorite: %w", err)
	}
	return n > 0, nil
}

// ListFavorites returns pinned records, most recently pinned first.
func (s *Store) ListFavorites() ([]Favorite, error) {
	rows, err := s.db.Query("SELECT content_id, added_at FROM favorites ORDER BY added_at DESC, content_id")
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ContentID, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return out, nil
}

// SetPosition stores the resume point for a record entry, replacing any
// previous one.
func (s *Store) SetPosition(contentID string, entry, seconds int) error {
	_, err := s.db.Exec(`
		INSERT INTO positions (content_id, entry, seconds, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (content_id, entry) DO UPDATE SET
			seconds = excluded.seconds,
			updated_at = excluded.updated_at`,
		contentID, entry, seconds, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set position: %w", err)
	}
	return nil
}

// GetPosition retrieves the resume point for a record entry.
// Returns ErrNotFound when none is stored.
func (s *Store) GetPosition(contentID string, entry int) (*Position, error) {
	p := &Position{}
	err := s.db.QueryRow(`
		SELECT content_id, entry, seconds, updated_at
		FROM positions WHERE content_id = ? AND entry = ?`,
		contentID, entry,
	).Scan(&p.ContentID, &p.Entry, &p.Seconds, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("position %s/%d: %w", contentID, entry, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get position: %w", err)
	}
	return p, nil
}

// DeleteFor removes all watch state for a record, used when the record
// is deleted from the catalog.
func (s *Store) DeleteFor(contentID string) error {
	if _, err := s.db.Exec("DELETE FROM favorites WHERE content_id = ?", contentID); err != nil {
		return fmt.Errorf("delete favorites for %s: %w", contentID, err)
	}
	if _, err := s.db.Exec("DELETE FROM positions WHERE content_id = ?", contentID); err != nil {
		return fmt.Errorf("delete positions for %s: %w", contentID, err)
	}
	return nil
}
