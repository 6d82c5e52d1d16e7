// Package notestore persists per-note view state (cursor, scroll, wrap) in a
// SQLite database so reopening a note restores where you left off.
package notestore

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS note_state (
	path        TEXT PRIMARY KEY,
	cursor_row  INTEGER NOT NULL,
	cursor_col  INTEGER NOT NULL,
	scroll_top  INTEGER NOT NULL,
	line_wrap   INTEGER NOT NULL,
	updated     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_note_state_updated ON note_state(updated);
`

// maxEntries bounds the table; the least recently touched notes are pruned.
const maxEntries = 500

// State is the persisted view state of one note.
type State struct {
	CursorRow int
	CursorCol int
	ScrollTop int
	LineWrap  bool
}

// Store is a SQLite-backed note state store.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates or opens the store database at the given path.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open note db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db}
	s.prune()
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the saved state for a note path. Safe to call on a nil
// receiver (returns miss).
func (s *Store) Get(path string) (State, bool) {
	if s == nil {
		return State{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var st State
	var wrap int
	err := s.db.QueryRow(
		"SELECT cursor_row, cursor_col, scroll_top, line_wrap FROM note_state WHERE path = ?",
		path,
	).Scan(&st.CursorRow, &st.CursorCol, &st.ScrollTop, &wrap)
	if err != nil {
		return State{}, false
	}
	st.LineWrap = wrap != 0
	return st, true
}

// Set saves the state for a note path, also bumping it to the top of the
// recents. No-op on nil receiver.
func (s *Store) Set(path string, st State) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	wrap := 0
	if st.LineWrap {
		wrap = 1
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO note_state (path, cursor_row, cursor_col, scroll_top, line_wrap, updated)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		path, st.CursorRow, st.CursorCol, st.ScrollTop, wrap, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to save note state")
	}
}

// Recents returns up to limit note paths, most recently touched first. Safe
// to call on a nil receiver (returns nil).
func (s *Store) Recents(limit int) []string {
	if s == nil || limit <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		"SELECT path FROM note_state ORDER BY updated DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// Forget removes a note's saved state, for files that no longer exist.
// No-op on nil receiver.
func (s *Store) Forget(path string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM note_state WHERE path = ?", path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to forget note state")
	}
}

// prune drops the least recently touched rows past the table bound.
func (s *Store) prune() {
	res, err := s.db.Exec(
		`DELETE FROM note_state WHERE path NOT IN (
			SELECT path FROM note_state ORDER BY updated DESC LIMIT ?
		)`,
		maxEntries,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to prune note state")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("pruned old note state entries")
	}
}
