package tui

import (
	"errors"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/quill/internal/editor"
)

// ---------------------------------------------------------------------------
// ELM messages
// ---------------------------------------------------------------------------

// autoScrollTickMsg drives selection auto-scroll while a drag sits at the
// viewport edge.
type autoScrollTickMsg time.Time

// saveResultMsg reports the outcome of writing the note to disk.
type saveResultMsg struct {
	content string // the text that was written
	err     error
}

// ---------------------------------------------------------------------------
// ELM commands
// ---------------------------------------------------------------------------

// autoScrollTick schedules the next auto-scroll step.
func autoScrollTick() tea.Cmd {
	return tea.Tick(editor.AutoScrollInterval, func(t time.Time) tea.Msg {
		return autoScrollTickMsg(t)
	})
}

// saveNote writes content to path off the update loop.
func saveNote(path, content string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return saveResultMsg{err: errors.New("no note path to save to")}
		}
		return saveResultMsg{
			content: content,
			err:     os.WriteFile(path, []byte(content), 0o644),
		}
	}
}
