// Package editor implements the text-editing engine for quill: a line gap
// buffer with cursor and selection state, bounded undo/redo, soft line-wrap
// computation, key-driven editing intents, and mouse-driven selection with
// auto-scroll. The engine is single-writer and mutates synchronously in
// response to one input event at a time; the host owns rendering and event
// delivery and reads engine state through the query surface only.
package editor

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/quill/internal/editor/buffer"
	"github.com/xonecas/quill/internal/editor/history"
)

// Editor is the facade composing buffer, history, wrap cache, cursor and
// selection. It is the only type hosts touch directly.
type Editor struct {
	buf  *buffer.Buffer
	hist *history.History

	cur buffer.Position
	sel *selection

	wrap *wrapCache

	width  int // viewport text width in cells
	height int // viewport height in rows

	scrollTop int // first visible visual row
	hScroll   int // first visible column when wrap is off

	drag *DragState

	clip Clipboard
}

// New builds an editor over the initial lines. An empty or nil slice
// normalizes to a single empty line. The clipboard defaults to an
// unavailable stub; inject a real one with SetClipboard.
func New(lines []string) *Editor {
	buf := buffer.New(lines)
	return &Editor{
		buf:  buf,
		hist: history.New(),
		wrap: newWrapCache(buf),
		clip: noClipboard{},
	}
}

// SplitIntoLines splits document text into the line slice New expects,
// accepting any of the common newline conventions.
func SplitIntoLines(text string) []string {
	return strings.Split(normalizeNewlines(text), "\n")
}

// SetClipboard injects the clipboard capability used by Copy/Cut/Paste.
func (e *Editor) SetClipboard(c Clipboard) {
	if c == nil {
		c = noClipboard{}
	}
	e.clip = c
}

// SetSize sets the viewport text area dimensions used for wrapping, paging
// and scrolling.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.wrap.setWidth(width)
	e.clampScroll()
}

// SetLineWrap toggles soft wrapping. Horizontal scroll state is reset when
// wrap is enabled since every column becomes reachable.
func (e *Editor) SetLineWrap(enabled bool) {
	e.wrap.setEnabled(enabled)
	if enabled {
		e.hScroll = 0
	}
	e.clampScroll()
	e.ensureCursorVisible()
}

// LineWrap reports whether soft wrapping is enabled.
func (e *Editor) LineWrap() bool { return e.wrap.enabled }

// ---------------------------------------------------------------------------
// Read-only query surface
// ---------------------------------------------------------------------------

// Lines returns the document as an ordered slice of lines.
func (e *Editor) Lines() []string { return e.buf.Lines() }

// Line returns line row, or an error if row is out of range.
func (e *Editor) Line(row int) (string, error) { return e.buf.Line(row) }

// LineCount returns the number of lines, always >= 1.
func (e *Editor) LineCount() int { return e.buf.LineCount() }

// Text returns the whole document joined with newlines.
func (e *Editor) Text() string { return e.buf.Text() }

// Cursor returns the logical cursor position.
func (e *Editor) Cursor() (row, col int) { return e.cur.Row, e.cur.Col }

// CanUndo reports whether an undo entry is available.
func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo entry is available.
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// ScrollTop returns the first visible visual row.
func (e *Editor) ScrollTop() int { return e.scrollTop }

// HScroll returns the first visible column when wrap is disabled. Always 0
// with wrap enabled.
func (e *Editor) HScroll() int { return e.hScroll }

// WrapSegments returns the wrap segments for logical line row under the
// current width and wrap flag. With wrap disabled the line is a single
// segment.
func (e *Editor) WrapSegments(row int) []Segment { return e.wrap.lineSegments(row) }

// VisualLineCount returns the total number of visual rows the document
// occupies.
func (e *Editor) VisualLineCount() int { return e.wrap.visualCount() }

// CursorVisual returns the cursor location in visual coordinates: the visual
// row index and the column within that row's segment.
func (e *Editor) CursorVisual() (visRow, col int) {
	return e.wrap.visualForPosition(e.cur)
}

// Overflow reports whether the cursor line extends beyond the visible column
// window on either side. Only meaningful with wrap disabled; the host renders
// overflow indicators from this.
func (e *Editor) Overflow() (left, right bool) {
	if e.wrap.enabled {
		return false, false
	}
	left = e.hScroll > 0
	right = e.buf.LineLen(e.cur.Row) > e.hScroll+e.width
	return left, right
}

// RestoreView places the cursor and scroll position, clamping both to the
// document. Hosts use this to re-apply persisted view state.
func (e *Editor) RestoreView(row, col, scrollTop int) {
	e.cur = buffer.Position{Row: row, Col: col}.Clamp(e.buf)
	e.sel = nil
	e.scrollTop = scrollTop
	e.clampScroll()
	e.ensureCursorVisible()
}

// ---------------------------------------------------------------------------
// Scrolling
// ---------------------------------------------------------------------------

// Scroll moves the viewport by delta visual rows, clamped to content.
// Scrolling does not move the cursor.
func (e *Editor) Scroll(delta int) {
	e.scrollTop += delta
	e.clampScroll()
}

func (e *Editor) clampScroll() {
	maxScroll := e.wrap.visualCount() - e.height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.scrollTop > maxScroll {
		e.scrollTop = maxScroll
	}
	if e.scrollTop < 0 {
		e.scrollTop = 0
	}
}

// ensureCursorVisible scrolls the viewport (vertically, and horizontally when
// wrap is off) so the cursor is inside it.
func (e *Editor) ensureCursorVisible() {
	if e.height <= 0 {
		return
	}
	visRow, _ := e.wrap.visualForPosition(e.cur)
	if visRow < e.scrollTop {
		e.scrollTop = visRow
	}
	if visRow >= e.scrollTop+e.height {
		e.scrollTop = visRow - e.height + 1
	}
	e.clampScroll()

	if !e.wrap.enabled && e.width > 0 {
		if e.cur.Col < e.hScroll {
			e.hScroll = e.cur.Col
		}
		if e.cur.Col >= e.hScroll+e.width {
			e.hScroll = e.cur.Col - e.width + 1
		}
		if e.hScroll < 0 {
			e.hScroll = 0
		}
	}
}

// clampCursor pulls the cursor back inside the document. A position outside
// bounds here is a programming fault: movement and editing are supposed to
// clamp by construction, so this logs before repairing.
func (e *Editor) clampCursor() {
	clamped := e.cur.Clamp(e.buf)
	if clamped != e.cur {
		log.Warn().
			Int("row", e.cur.Row).Int("col", e.cur.Col).
			Int("lines", e.buf.LineCount()).
			Msg("editor: cursor out of bounds, clamping")
		e.cur = clamped
	}
}
