package history

import (
	"testing"
	"time"

	"github.com/xonecas/quill/internal/editor/buffer"
)

func pos(row, col int) buffer.Position { return buffer.Position{Row: row, Col: col} }

func insertOp(row, col int, text string) Op {
	return Op{Kind: OpInsert, Pos: pos(row, col), Text: text}
}

func TestRecordAndUndo(t *testing.T) {
	h := New()
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "a"))

	if !h.CanUndo() {
		t.Fatal("CanUndo() = false after Record")
	}
	entry, ok := h.PopUndo()
	if !ok {
		t.Fatal("PopUndo() returned ok=false")
	}
	if entry.CursorBefore != pos(0, 0) || entry.CursorAfter != pos(0, 1) {
		t.Errorf("cursor bracket = %v..%v", entry.CursorBefore, entry.CursorAfter)
	}
	if !h.CanRedo() {
		t.Error("CanRedo() = false after undo")
	}
}

func TestUndoEmptyIsNoOp(t *testing.T) {
	h := New()
	if _, ok := h.PopUndo(); ok {
		t.Error("PopUndo() on empty history should report ok=false")
	}
	if _, ok := h.PopRedo(); ok {
		t.Error("PopRedo() on empty history should report ok=false")
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	h := New()
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "a"))
	h.PopUndo()
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "b"))

	if h.CanRedo() {
		t.Error("redo stack should be cleared by a new edit")
	}
}

func TestMergeWithinWindow(t *testing.T) {
	h := New()
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "a"))
	h.Record(pos(0, 1), pos(0, 2), insertOp(0, 1, "b"))
	h.Record(pos(0, 2), pos(0, 3), insertOp(0, 2, "c"))

	if h.UndoLen() != 1 {
		t.Fatalf("UndoLen() = %d, want 1 (burst should coalesce)", h.UndoLen())
	}
	entry, _ := h.PopUndo()
	if len(entry.Ops) != 3 {
		t.Errorf("merged entry has %d ops, want 3", len(entry.Ops))
	}
	if entry.CursorBefore != pos(0, 0) || entry.CursorAfter != pos(0, 3) {
		t.Errorf("cursor bracket = %v..%v, want (0,0)..(0,3)", entry.CursorBefore, entry.CursorAfter)
	}
}

func TestNoMergeOutsideWindow(t *testing.T) {
	h := New()
	h.mergeWindow = 10 * time.Millisecond
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "a"))
	time.Sleep(25 * time.Millisecond)
	h.Record(pos(0, 1), pos(0, 2), insertOp(0, 1, "b"))

	if h.UndoLen() != 2 {
		t.Fatalf("UndoLen() = %d, want 2 (stale entry must not merge)", h.UndoLen())
	}
	// Undoing once should only cover "b".
	entry, _ := h.PopUndo()
	if len(entry.Ops) != 1 || entry.Ops[0].Text != "b" {
		t.Errorf("top entry = %+v, want single 'b' insertion", entry.Ops)
	}
}

func TestNoMergeNonAdjacent(t *testing.T) {
	h := New()
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "a"))
	h.Record(pos(0, 5), pos(0, 6), insertOp(0, 5, "b")) // gap in columns

	if h.UndoLen() != 2 {
		t.Errorf("UndoLen() = %d, want 2", h.UndoLen())
	}
}

func TestNoMergeAcrossClasses(t *testing.T) {
	h := New()
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "a"))
	h.Record(pos(0, 1), pos(0, 2), insertOp(0, 1, " "))
	h.Record(pos(0, 2), pos(0, 3), insertOp(0, 2, "b"))

	if h.UndoLen() != 3 {
		t.Errorf("UndoLen() = %d, want 3 (word/space/word must not coalesce)", h.UndoLen())
	}
}

func TestNoMergeNonInsert(t *testing.T) {
	h := New()
	h.Record(pos(0, 0), pos(0, 1), insertOp(0, 0, "a"))
	h.Record(pos(0, 1), pos(0, 0), Op{Kind: OpDelete, Pos: pos(0, 0), End: pos(0, 1), Text: "a"})

	if h.UndoLen() != 2 {
		t.Errorf("UndoLen() = %d, want 2", h.UndoLen())
	}
}

func TestGroupedOpsStayOneEntry(t *testing.T) {
	h := New()
	// Selection replace: delete + insert recorded as a single entry.
	h.Record(pos(0, 5), pos(0, 6),
		Op{Kind: OpDelete, Pos: pos(0, 5), End: pos(0, 10), Text: "world"},
		insertOp(0, 5, "X"),
	)
	if h.UndoLen() != 1 {
		t.Fatalf("UndoLen() = %d, want 1", h.UndoLen())
	}
	entry, _ := h.PopUndo()
	if len(entry.Ops) != 2 {
		t.Errorf("entry has %d ops, want 2", len(entry.Ops))
	}
}

func TestCapacityEviction(t *testing.T) {
	h := New()
	// Alternate classes so no two entries merge.
	for i := 0; i < 1001; i++ {
		text := "x"
		if i%2 == 1 {
			text = " "
		}
		h.Record(pos(i, 0), pos(i, 1), insertOp(i, 0, text))
	}
	if h.UndoLen() != 1000 {
		t.Fatalf("UndoLen() = %d, want 1000", h.UndoLen())
	}
	// The oldest entry (row 0) must be gone; the deepest reachable is row 1.
	var last *Entry
	for {
		entry, ok := h.PopUndo()
		if !ok {
			break
		}
		last = entry
	}
	if last == nil || last.Ops[0].Pos.Row != 1 {
		t.Errorf("deepest entry row = %v, want 1 (row 0 evicted)", last.Ops[0].Pos)
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		want Op
	}{
		{
			"insert",
			insertOp(0, 0, "hello"),
			Op{Kind: OpDelete, Pos: pos(0, 0), End: pos(0, 5), Text: "hello"},
		},
		{
			"multiline insert",
			insertOp(2, 5, "hello\nworld\n!"),
			Op{Kind: OpDelete, Pos: pos(2, 5), End: pos(4, 1), Text: "hello\nworld\n!"},
		},
		{
			"delete",
			Op{Kind: OpDelete, Pos: pos(1, 5), End: pos(1, 10), Text: "world"},
			insertOp(1, 5, "world"),
		},
		{
			"split",
			Op{Kind: OpSplit, Pos: pos(5, 10)},
			Op{Kind: OpJoin, Pos: pos(6, 10)},
		},
		{
			"join",
			Op{Kind: OpJoin, Pos: pos(3, 15)},
			Op{Kind: OpSplit, Pos: pos(2, 15)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op.Inverse()
			if got.Kind != tt.want.Kind || got.Pos != tt.want.Pos || got.Text != tt.want.Text {
				t.Errorf("Inverse() = %+v, want %+v", got, tt.want)
			}
			if tt.want.Kind == OpDelete && got.End != tt.want.End {
				t.Errorf("Inverse().End = %v, want %v", got.End, tt.want.End)
			}
		})
	}
}

func TestDoubleInverseIsOriginal(t *testing.T) {
	ops := []Op{
		insertOp(0, 3, "abc"),
		{Kind: OpDelete, Pos: pos(1, 0), End: pos(2, 4), Text: "tail\nhead"},
		{Kind: OpSplit, Pos: pos(4, 2)},
		{Kind: OpJoin, Pos: pos(7, 9)},
	}
	for _, op := range ops {
		round := op.Inverse().Inverse()
		if round.Kind != op.Kind || round.Pos != op.Pos || round.Text != op.Text {
			t.Errorf("double inverse of %+v = %+v", op, round)
		}
	}
}
