package notestore

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGet(t *testing.T) {
	s := openTestStore(t)

	// Miss on empty.
	if _, ok := s.Get("/notes/a.md"); ok {
		t.Fatal("expected miss")
	}

	want := State{CursorRow: 12, CursorCol: 4, ScrollTop: 8, LineWrap: true}
	s.Set("/notes/a.md", want)

	got, ok := s.Get("/notes/a.md")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	s.Set("/notes/a.md", State{CursorRow: 1})
	s.Set("/notes/a.md", State{CursorRow: 2, LineWrap: true})

	got, ok := s.Get("/notes/a.md")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.CursorRow != 2 || !got.LineWrap {
		t.Errorf("got %+v", got)
	}
}

func TestRecentsOrder(t *testing.T) {
	s := openTestStore(t)
	s.Set("/notes/old.md", State{})
	// Backdate so the ordering doesn't depend on sub-second timing.
	s.db.Exec("UPDATE note_state SET updated = ? WHERE path = ?",
		time.Now().Add(-time.Hour).Unix(), "/notes/old.md")
	s.Set("/notes/new.md", State{})

	got := s.Recents(10)
	if len(got) != 2 {
		t.Fatalf("Recents = %v", got)
	}
	if got[0] != "/notes/new.md" || got[1] != "/notes/old.md" {
		t.Errorf("Recents = %v, want newest first", got)
	}

	if got := s.Recents(1); len(got) != 1 || got[0] != "/notes/new.md" {
		t.Errorf("Recents(1) = %v", got)
	}
}

func TestForget(t *testing.T) {
	s := openTestStore(t)
	s.Set("/notes/a.md", State{CursorRow: 3})
	s.Forget("/notes/a.md")
	if _, ok := s.Get("/notes/a.md"); ok {
		t.Fatal("expected miss after forget")
	}
}

func TestPruneKeepsMostRecent(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < maxEntries+10; i++ {
		path := fmt.Sprintf("/notes/%d.md", i)
		s.Set(path, State{CursorRow: i})
		s.db.Exec("UPDATE note_state SET updated = ? WHERE path = ?",
			time.Now().Add(-time.Duration(maxEntries+10-i)*time.Minute).Unix(), path)
	}

	s.prune()

	if _, ok := s.Get("/notes/0.md"); ok {
		t.Error("oldest entry should be pruned")
	}
	last := fmt.Sprintf("/notes/%d.md", maxEntries+9)
	if _, ok := s.Get(last); !ok {
		t.Error("newest entry should survive prune")
	}
}

func TestNilReceiver(t *testing.T) {
	var s *Store
	if _, ok := s.Get("/x"); ok {
		t.Fatal("nil store should miss")
	}
	s.Set("/x", State{})
	s.Forget("/x")
	if got := s.Recents(5); got != nil {
		t.Fatalf("nil store Recents = %v", got)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("nil store Close: %v", err)
	}
}
