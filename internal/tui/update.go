package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/quill/internal/editor"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Paste (clipboard read or bracketed paste) ---------------------------
	case tea.ClipboardMsg:
		cmd := m.insertPaste(msg.String())
		return m, cmd
	case tea.PasteMsg:
		cmd := m.insertPaste(msg.Content)
		return m, cmd

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		return m.handleMouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	// -- Drag auto-scroll ----------------------------------------------------
	case autoScrollTickMsg:
		if !m.autoScrolling {
			return m, nil
		}
		if m.ed.AutoScrollTick() {
			return m, autoScrollTick()
		}
		m.autoScrolling = false
		return m, nil

	// -- Save ----------------------------------------------------------------
	case saveResultMsg:
		m.saveErr = msg.err
		if msg.err == nil {
			m.savedText = msg.content
			m.refreshDiff()
		} else {
			log.Warn().Err(msg.err).Str("path", m.notePath).Msg("tui: save failed")
		}
		return m, nil
	}

	// Everything else feeds cursor blink state.
	var cmd tea.Cmd
	m.cur, cmd = m.cur.Update(msg)
	return m, cmd
}

// handleResize applies a window size change and pushes the text-area
// dimensions into the engine.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.pushEditorSize()
}

// pushEditorSize re-derives the text area from the window and gutter. The
// gutter tracks the line-count digit width, so this runs after edits too.
func (m *Model) pushEditorSize() {
	w := m.width - m.gutterWidth()
	if w < 1 {
		w = 1
	}
	h := m.height - statusRows
	if h < 1 {
		h = 1
	}
	m.ed.SetSize(w, h)
}

// insertPaste inserts pasted text at the cursor, replacing any selection.
func (m *Model) insertPaste(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.ed.InsertText(text)
	return m.afterEdit()
}

// handleKeyPress routes host chords first, then hands the event to the
// editing engine.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.Keystroke() {
	case "ctrl+q":
		m.persistState()
		return m, tea.Quit
	case "ctrl+s":
		return m, saveNote(m.notePath, m.ed.Text())
	case "ctrl+w":
		m.ed.SetLineWrap(!m.ed.LineWrap())
		return m, nil
	case "ctrl+v", "ctrl+shift+v":
		// Reads come back as a ClipboardMsg.
		return m, tea.ReadClipboard
	case "tab":
		// Soft tabs keep one-rune-one-cell geometry for wrap and mouse math.
		m.ed.InsertText(strings.Repeat(" ", m.cfg.Editor.TabWidthOrDefault()))
		cmd := m.afterEdit()
		return m, cmd
	}

	consumed, err := m.ed.HandleKey(editor.KeyEvent{Key: msg.Keystroke(), Text: msg.Text})
	if err != nil {
		log.Warn().Err(err).Str("key", msg.Keystroke()).Msg("tui: key handling failed")
	}
	if !consumed {
		return m, nil
	}

	cmds := []tea.Cmd{m.afterEdit()}
	cmds = append(cmds, m.clip.flush()...)
	return m, tea.Batch(cmds...)
}

// afterEdit refreshes state derived from the buffer after a possible edit.
func (m *Model) afterEdit() tea.Cmd {
	m.refreshDiff()
	m.pushEditorSize()
	// Restart the blink so the cursor is solid right after input.
	return m.cur.Blink()
}
