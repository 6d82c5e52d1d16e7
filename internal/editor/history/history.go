package history

import (
	"time"

	"github.com/xonecas/quill/internal/editor/buffer"
)

const (
	defaultMaxEntries  = 1000
	defaultMergeWindow = 500 * time.Millisecond
)

// Entry is one undoable unit: one or more operations applied in order, plus
// the cursor positions bracketing them so undo/redo can restore the cursor.
type Entry struct {
	Ops          []Op
	CursorBefore buffer.Position
	CursorAfter  buffer.Position

	at    time.Time
	class insertClass
}

// History keeps a bounded undo stack and a redo stack. Recording a new entry
// clears the redo stack; exceeding the capacity evicts the oldest undo entry,
// which is then irrecoverable — an explicit trade-off for bounded memory.
type History struct {
	undo []*Entry
	redo []*Entry

	maxEntries  int
	mergeWindow time.Duration
}

// New returns a History with the default capacity (1000 entries) and merge
// window (500ms).
func New() *History {
	return &History{
		maxEntries:  defaultMaxEntries,
		mergeWindow: defaultMergeWindow,
	}
}

// Record pushes an entry for ops onto the undo stack and clears the redo
// stack. A single-rune insertion adjacent to the top entry, with the same
// insertion class and within the merge window, is coalesced into the top
// entry instead, so a typing burst undoes as one step.
func (h *History) Record(before, after buffer.Position, ops ...Op) {
	if len(ops) == 0 {
		return
	}
	h.redo = nil

	if len(h.undo) > 0 && len(ops) == 1 && h.canMerge(h.undo[len(h.undo)-1], ops[0]) {
		top := h.undo[len(h.undo)-1]
		top.Ops = append(top.Ops, ops[0])
		top.CursorAfter = after
		top.at = time.Now()
		return
	}

	entry := &Entry{
		Ops:          ops,
		CursorBefore: before,
		CursorAfter:  after,
		at:           time.Now(),
	}
	if len(ops) == 1 && ops[0].Kind == OpInsert {
		entry.class = classOf(ops[0].Text)
	}
	h.undo = append(h.undo, entry)

	if len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = append([]*Entry(nil), h.undo[excess:]...)
	}
}

// canMerge reports whether op can be coalesced into entry: both must be
// single-rune insertions of the same class, op must immediately follow the
// entry's last insertion, and the entry must be fresher than the merge window.
func (h *History) canMerge(entry *Entry, op Op) bool {
	if op.Kind != OpInsert {
		return false
	}
	cls := classOf(op.Text)
	if cls == classNone || cls != entry.class {
		return false
	}
	if time.Since(entry.at) > h.mergeWindow {
		return false
	}
	last := entry.Ops[len(entry.Ops)-1]
	if last.Kind != OpInsert {
		return false
	}
	want := EndPosition(last.Pos, last.Text)
	return op.Pos == want
}

// PopUndo removes the top undo entry, pushes it onto the redo stack, and
// returns it. ok=false means there was nothing to undo.
func (h *History) PopUndo() (*Entry, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	entry := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, entry)
	return entry, true
}

// PopRedo removes the top redo entry, pushes it back onto the undo stack, and
// returns it. ok=false means there was nothing to redo.
func (h *History) PopRedo() (*Entry, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	entry := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, entry)
	return entry, true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoLen returns the number of undo entries available.
func (h *History) UndoLen() int { return len(h.undo) }

// Clear discards all undo and redo entries.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
