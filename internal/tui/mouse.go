package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/quill/internal/editor"
)

// ---------------------------------------------------------------------------
// Mouse filter — throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMouseEvent time.Time

// MouseEventFilter rate-limits wheel and motion events (15 ms).
// Pass to tea.WithFilter. Never drops clicks or releases.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// ---------------------------------------------------------------------------
// Mouse handling
// ---------------------------------------------------------------------------

// textRect is the editable text area in screen cells: right of the gutter,
// above the status rows.
func (m Model) textRect() editor.Rect {
	g := m.gutterWidth()
	return editor.Rect{X: g, Y: 0, W: m.width - g, H: m.height - statusRows}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	rect := m.textRect()
	ev := editor.MouseEvent{X: mouse.X, Y: mouse.Y, Viewport: rect}

	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.ed.Scroll(-3)
		case tea.MouseWheelDown:
			m.ed.Scroll(3)
		}
		return m, nil

	case tea.MouseClickMsg:
		// Presses in the gutter or footer don't place the cursor.
		if msg.Button != tea.MouseLeft || !rect.Contains(mouse.X, mouse.Y) {
			return m, nil
		}
		m.ed.MousePress(ev)
		cmd := m.cur.Blink()
		return m, cmd

	case tea.MouseMotionMsg:
		// Drags may leave the rect; the engine clamps and auto-scrolls.
		m.ed.MouseMotion(ev)
		if m.ed.Dragging() && !m.autoScrolling {
			m.autoScrolling = true
			return m, autoScrollTick()
		}
		return m, nil

	case tea.MouseReleaseMsg:
		m.ed.MouseRelease(ev)
		return m, nil
	}

	return m, nil
}
