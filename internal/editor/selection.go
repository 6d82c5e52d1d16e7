package editor

import "github.com/xonecas/quill/internal/editor/buffer"

// selection is an anchor plus an active end that follows the cursor. It only
// exists while non-empty; a zero-length selection collapses back to nil.
type selection struct {
	anchor buffer.Position
	active buffer.Position
}

// ordered returns the selection endpoints in document order.
func (s *selection) ordered() (start, end buffer.Position) {
	if s.active.Before(s.anchor) {
		return s.active, s.anchor
	}
	return s.anchor, s.active
}

// StartSelection anchors a selection at the cursor. No-op when a selection is
// already active.
func (e *Editor) StartSelection() {
	if e.sel != nil {
		return
	}
	e.sel = &selection{anchor: e.cur, active: e.cur}
}

// CancelSelection drops the selection without touching the buffer or cursor.
func (e *Editor) CancelSelection() {
	e.sel = nil
}

// HasSelection reports whether a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	return e.sel != nil && e.sel.anchor != e.sel.active
}

// Selection returns the selection endpoints in document order. ok is false
// when no selection is active.
func (e *Editor) Selection() (start, end buffer.Position, ok bool) {
	if !e.HasSelection() {
		return buffer.Position{}, buffer.Position{}, false
	}
	start, end = e.sel.ordered()
	return start, end, true
}

// SelectedText returns the selected text, or "" without a selection.
func (e *Editor) SelectedText() string {
	start, end, ok := e.Selection()
	if !ok {
		return ""
	}
	return e.buf.TextRange(start, end)
}

// SelectAll selects the whole document and moves the cursor to the end.
func (e *Editor) SelectAll() {
	last := e.buf.LineCount() - 1
	end := buffer.Position{Row: last, Col: e.buf.LineLen(last)}
	e.sel = &selection{anchor: buffer.Position{}, active: end}
	e.cur = end
	e.collapseEmptySelection()
	e.ensureCursorVisible()
}

// extendSelectionTo moves the active end to the cursor, collapsing if the
// selection became empty.
func (e *Editor) extendSelectionTo(p buffer.Position) {
	if e.sel == nil {
		return
	}
	e.sel.active = p
	e.collapseEmptySelection()
}

func (e *Editor) collapseEmptySelection() {
	if e.sel != nil && e.sel.anchor == e.sel.active {
		e.sel = nil
	}
}
