package tui

import "testing"

func TestUnsavedDiffClean(t *testing.T) {
	markers, stat := unsavedDiff("a\nb\nc\n", "a\nb\nc\n")
	if markers != nil {
		t.Errorf("markers = %v, want nil", markers)
	}
	if stat.dirty() {
		t.Errorf("stat = %+v, want clean", stat)
	}
}

func TestUnsavedDiffModifiedLine(t *testing.T) {
	markers, stat := unsavedDiff("a\nb\nc\n", "a\nX\nc\n")
	if stat.added != 0 || stat.modified != 1 || stat.removed != 0 {
		t.Fatalf("stat = %+v, want 0 added, 1 modified, 0 removed", stat)
	}
	if markers[1] != GutterChange {
		t.Errorf("markers[1] = %v, want GutterChange", markers[1])
	}
	if len(markers) != 1 {
		t.Errorf("markers = %v, want a single entry", markers)
	}
}

func TestUnsavedDiffAddedLine(t *testing.T) {
	markers, stat := unsavedDiff("a\nb\n", "a\nb\nc\n")
	if stat.added != 1 || stat.modified != 0 || stat.removed != 0 {
		t.Fatalf("stat = %+v, want 1 added, 0 modified, 0 removed", stat)
	}
	if markers[2] != GutterAdd {
		t.Errorf("markers[2] = %v, want GutterAdd", markers[2])
	}
}

func TestUnsavedDiffRemovedLine(t *testing.T) {
	markers, stat := unsavedDiff("a\nb\nc\n", "a\nc\n")
	if stat.added != 0 || stat.modified != 0 || stat.removed != 1 {
		t.Fatalf("stat = %+v, want 0 added, 0 modified, 1 removed", stat)
	}
	if markers[0] != GutterDelete {
		t.Errorf("markers[0] = %v, want GutterDelete", markers[0])
	}
}

func TestUnsavedDiffMixedRun(t *testing.T) {
	// One line replaced by two: a modification plus an addition.
	_, stat := unsavedDiff("a\nb\nc\n", "a\nX\nY\nc\n")
	if stat.modified != 1 || stat.added != 1 || stat.removed != 0 {
		t.Errorf("stat = %+v, want 1 modified, 1 added, 0 removed", stat)
	}
}
