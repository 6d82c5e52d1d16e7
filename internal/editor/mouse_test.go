package editor

import (
	"strings"
	"testing"
)

func testViewport() Rect { return Rect{X: 2, Y: 1, W: 20, H: 10} }

func manyLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat("x", 8)
	}
	return lines
}

func TestClickMovesCursorWithoutSelection(t *testing.T) {
	e := New(manyLines(20))
	e.SetSize(20, 10)
	vp := testViewport()

	e.MousePress(MouseEvent{X: vp.X + 3, Y: vp.Y + 2, Viewport: vp})
	e.MouseRelease(MouseEvent{X: vp.X + 3, Y: vp.Y + 2, Viewport: vp})

	if row, col := e.Cursor(); row != 2 || col != 3 {
		t.Fatalf("Cursor() = (%d, %d), want (2, 3)", row, col)
	}
	if e.HasSelection() {
		t.Fatal("click without motion produced a selection")
	}
	if e.Dragging() {
		t.Fatal("still dragging after release")
	}
}

func TestClickClampsToLineEnd(t *testing.T) {
	e := New([]string{"hi"})
	e.SetSize(20, 10)
	vp := testViewport()
	e.MousePress(MouseEvent{X: vp.X + 15, Y: vp.Y, Viewport: vp})
	if row, col := e.Cursor(); row != 0 || col != 2 {
		t.Fatalf("Cursor() = (%d, %d), want (0, 2)", row, col)
	}
}

func TestClickClampsToLastLine(t *testing.T) {
	e := New([]string{"one", "two"})
	e.SetSize(20, 10)
	vp := testViewport()
	e.MousePress(MouseEvent{X: vp.X, Y: vp.Y + 8, Viewport: vp})
	if row, _ := e.Cursor(); row != 1 {
		t.Fatalf("cursor row = %d, want 1", row)
	}
}

func TestDragSelects(t *testing.T) {
	e := New(manyLines(20))
	e.SetSize(20, 10)
	vp := testViewport()

	e.MousePress(MouseEvent{X: vp.X + 1, Y: vp.Y, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X + 4, Y: vp.Y + 1, Viewport: vp})
	if !e.Dragging() {
		t.Fatal("not dragging after motion")
	}
	start, end, ok := e.Selection()
	if !ok {
		t.Fatal("no selection while dragging")
	}
	if start.Row != 0 || start.Col != 1 || end.Row != 1 || end.Col != 4 {
		t.Fatalf("selection %v..%v, want (0,1)..(1,4)", start, end)
	}

	e.MouseRelease(MouseEvent{X: vp.X + 4, Y: vp.Y + 1, Viewport: vp})
	if e.Dragging() {
		t.Fatal("still dragging after release")
	}
	if !e.HasSelection() {
		t.Fatal("release dropped the drag selection")
	}
}

func TestDragSelectsAfterSameCellMotion(t *testing.T) {
	e := New(manyLines(5))
	e.SetSize(20, 10)
	vp := testViewport()

	// Terminals often re-report the press cell as the first motion event;
	// the drag must still produce a selection once the pointer moves on.
	e.MousePress(MouseEvent{X: vp.X + 2, Y: vp.Y, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X + 2, Y: vp.Y, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X + 7, Y: vp.Y, Viewport: vp})

	start, end, ok := e.Selection()
	if !ok {
		t.Fatal("no selection after drag past a same-cell motion")
	}
	if start.Row != 0 || start.Col != 2 || end.Row != 0 || end.Col != 7 {
		t.Fatalf("selection %v..%v, want (0,2)..(0,7)", start, end)
	}

	e.MouseRelease(MouseEvent{X: vp.X + 7, Y: vp.Y, Viewport: vp})
	if !e.HasSelection() {
		t.Fatal("release dropped the drag selection")
	}
}

func TestDragThroughAnchorReanchors(t *testing.T) {
	e := New(manyLines(5))
	e.SetSize(20, 10)
	vp := testViewport()

	// Dragging back through the anchor collapses the selection mid-drag;
	// continuing past it must select again from the anchor.
	e.MousePress(MouseEvent{X: vp.X + 4, Y: vp.Y, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X + 7, Y: vp.Y, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X + 4, Y: vp.Y, Viewport: vp})
	if e.HasSelection() {
		t.Fatal("selection survived collapsing back to the anchor")
	}
	e.MouseMotion(MouseEvent{X: vp.X + 1, Y: vp.Y, Viewport: vp})

	start, end, ok := e.Selection()
	if !ok {
		t.Fatal("no selection after dragging past the anchor")
	}
	if start.Row != 0 || start.Col != 1 || end.Row != 0 || end.Col != 4 {
		t.Fatalf("selection %v..%v, want (0,1)..(0,4)", start, end)
	}
}

func TestDragBackwardSelects(t *testing.T) {
	e := New(manyLines(5))
	e.SetSize(20, 10)
	vp := testViewport()

	e.MousePress(MouseEvent{X: vp.X + 5, Y: vp.Y + 3, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X + 2, Y: vp.Y + 1, Viewport: vp})
	start, end, ok := e.Selection()
	if !ok {
		t.Fatal("no selection while dragging")
	}
	if start.Row != 1 || start.Col != 2 || end.Row != 3 || end.Col != 5 {
		t.Fatalf("selection %v..%v, want (1,2)..(3,5)", start, end)
	}
}

func TestMotionWithoutPressIgnored(t *testing.T) {
	e := New(manyLines(5))
	e.SetSize(20, 10)
	vp := testViewport()
	e.MouseMotion(MouseEvent{X: vp.X + 4, Y: vp.Y + 1, Viewport: vp})
	if e.HasSelection() || e.Dragging() {
		t.Fatal("motion without press changed drag state")
	}
	if row, col := e.Cursor(); row != 0 || col != 0 {
		t.Fatalf("motion without press moved cursor to (%d, %d)", row, col)
	}
}

func TestAutoScrollAtBottomEdge(t *testing.T) {
	e := New(manyLines(40))
	e.SetSize(20, 10)
	vp := testViewport()

	e.MousePress(MouseEvent{X: vp.X + 2, Y: vp.Y, Viewport: vp})
	// Drag to the last viewport row, inside the bottom margin.
	e.MouseMotion(MouseEvent{X: vp.X + 2, Y: vp.Y + vp.H - 1, Viewport: vp})

	if !e.AutoScrollTick() {
		t.Fatal("tick stopped while held at the bottom edge")
	}
	if top := e.ScrollTop(); top != 1 {
		t.Fatalf("ScrollTop() = %d, want 1", top)
	}
	_, end, ok := e.Selection()
	if !ok {
		t.Fatal("auto-scroll dropped the selection")
	}
	if end.Row != 10 {
		t.Fatalf("selection end row = %d, want 10", end.Row)
	}

	e.AutoScrollTick()
	if top := e.ScrollTop(); top != 2 {
		t.Fatalf("second tick: ScrollTop() = %d, want 2", top)
	}
}

func TestAutoScrollStopsAtDocumentEnd(t *testing.T) {
	e := New(manyLines(15))
	e.SetSize(20, 10)
	vp := testViewport()

	e.MousePress(MouseEvent{X: vp.X, Y: vp.Y, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X, Y: vp.Y + vp.H - 1, Viewport: vp})

	for i := 0; i < 20; i++ {
		e.AutoScrollTick()
	}
	if top := e.ScrollTop(); top != 5 {
		t.Fatalf("ScrollTop() = %d, want clamp at 5", top)
	}
}

func TestAutoScrollStopsAfterRelease(t *testing.T) {
	e := New(manyLines(40))
	e.SetSize(20, 10)
	vp := testViewport()

	e.MousePress(MouseEvent{X: vp.X, Y: vp.Y, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X, Y: vp.Y + vp.H - 1, Viewport: vp})
	e.MouseRelease(MouseEvent{X: vp.X, Y: vp.Y + vp.H - 1, Viewport: vp})

	if e.AutoScrollTick() {
		t.Fatal("tick continued after release")
	}
	if top := e.ScrollTop(); top != 0 {
		t.Fatalf("released drag still scrolled: ScrollTop() = %d", top)
	}
}

func TestAutoScrollAtTopEdge(t *testing.T) {
	e := New(manyLines(40))
	e.SetSize(20, 10)
	e.Scroll(20)
	vp := testViewport()

	e.MousePress(MouseEvent{X: vp.X, Y: vp.Y + 5, Viewport: vp})
	e.MouseMotion(MouseEvent{X: vp.X, Y: vp.Y, Viewport: vp})

	if !e.AutoScrollTick() {
		t.Fatal("tick stopped while held at the top edge")
	}
	if top := e.ScrollTop(); top != 19 {
		t.Fatalf("ScrollTop() = %d, want 19", top)
	}
	start, _, ok := e.Selection()
	if !ok {
		t.Fatal("auto-scroll dropped the selection")
	}
	if start.Row != 19 {
		t.Fatalf("selection start row = %d, want 19", start.Row)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Fatal("corner cells should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Fatal("cells past the edges should be outside")
	}
}
