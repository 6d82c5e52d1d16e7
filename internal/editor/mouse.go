package editor

import (
	"time"

	"github.com/xonecas/quill/internal/editor/buffer"
)

// AutoScrollInterval is the cadence at which hosts should call
// AutoScrollTick while a drag is held.
const AutoScrollInterval = 50 * time.Millisecond

// autoScrollMargin is how close to the viewport's top or bottom edge, in
// rows, the pointer must be to trigger auto-scroll during a drag.
const autoScrollMargin = 2

// Rect is a screen-cell rectangle, used to describe the text viewport the
// mouse coordinates are relative to.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MouseEvent is a host-independent left-button mouse event in screen cells,
// together with the viewport rectangle the text is drawn in.
type MouseEvent struct {
	X, Y     int
	Viewport Rect
}

// DragState tracks a press-drag-release gesture.
type DragState struct {
	held     bool
	dragging bool
	lastX    int
	lastY    int
	viewport Rect
}

// Dragging reports whether a drag selection is in progress: the button is
// held and the pointer has moved since the press.
func (e *Editor) Dragging() bool {
	return e.drag != nil && e.drag.dragging
}

// MousePress starts a gesture: the cursor moves to the clicked cell and any
// selection is cancelled. A selection only begins once the pointer moves.
func (e *Editor) MousePress(ev MouseEvent) {
	pos := e.screenToPosition(ev)
	e.CancelSelection()
	e.cur = pos
	e.drag = &DragState{held: true, lastX: ev.X, lastY: ev.Y, viewport: ev.Viewport}
	e.ensureCursorVisible()
}

// MouseMotion extends the drag selection toward the pointer. Events without
// a preceding press are ignored.
func (e *Editor) MouseMotion(ev MouseEvent) {
	if e.drag == nil || !e.drag.held {
		return
	}
	e.drag.dragging = true
	e.drag.lastX = ev.X
	e.drag.lastY = ev.Y
	e.drag.viewport = ev.Viewport
	// A motion resolving to the anchor collapses the selection while the
	// cursor stays put, so anchoring here restores it on the next move.
	e.StartSelection()
	pos := e.screenToPosition(ev)
	e.cur = pos
	e.extendSelectionTo(pos)
}

// MouseRelease ends the gesture. A click without motion leaves just a moved
// cursor; a drag leaves its selection in place.
func (e *Editor) MouseRelease(ev MouseEvent) {
	if e.drag == nil {
		return
	}
	if e.drag.dragging {
		e.StartSelection()
		pos := e.screenToPosition(ev)
		e.cur = pos
		e.extendSelectionTo(pos)
	}
	e.drag = nil
}

// AutoScrollTick advances auto-scroll one step while a drag is held near the
// viewport's top or bottom edge, scrolling by one row and extending the
// selection to the row that came into view. It reports whether the host
// should schedule another tick; false stops the timer.
func (e *Editor) AutoScrollTick() bool {
	if e.drag == nil || !e.drag.held {
		return false
	}
	vp := e.drag.viewport
	dir := 0
	switch {
	case e.drag.lastY < vp.Y+autoScrollMargin && e.scrollTop > 0:
		dir = -1
	case e.drag.lastY >= vp.Y+vp.H-autoScrollMargin && e.scrollTop < e.maxScroll():
		dir = 1
	}
	if dir == 0 {
		// Held but away from the edges; keep ticking in case it returns.
		return true
	}
	e.scrollTop += dir
	e.clampScroll()

	edgeRow := e.scrollTop
	if dir > 0 {
		edgeRow = e.scrollTop + e.height - 1
	}
	col := e.drag.lastX - vp.X
	if col < 0 {
		col = 0
	}
	if !e.wrap.enabled {
		col += e.hScroll
	}
	pos := e.wrap.positionAt(edgeRow, col)
	e.drag.dragging = true
	e.StartSelection()
	e.cur = pos
	e.extendSelectionTo(pos)
	return true
}

func (e *Editor) maxScroll() int {
	m := e.wrap.visualCount() - e.height
	if m < 0 {
		return 0
	}
	return m
}

// screenToPosition hit-tests a screen cell against the buffer: the cell is
// translated into viewport-relative coordinates, offset by the scroll state,
// and resolved through the wrap segments. Coordinates outside the viewport
// clamp to its nearest edge.
func (e *Editor) screenToPosition(ev MouseEvent) buffer.Position {
	vp := ev.Viewport
	relY := ev.Y - vp.Y
	if relY < 0 {
		relY = 0
	}
	if vp.H > 0 && relY >= vp.H {
		relY = vp.H - 1
	}
	relX := ev.X - vp.X
	if relX < 0 {
		relX = 0
	}
	if !e.wrap.enabled {
		relX += e.hScroll
	}
	return e.wrap.positionAt(e.scrollTop+relY, relX)
}
