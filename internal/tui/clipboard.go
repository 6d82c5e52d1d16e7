package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/quill/internal/editor"
)

// clipboardBridge adapts the engine clipboard to the terminal. Writes are
// buffered and flushed as tea.SetClipboard commands (OSC 52 — works through
// SSH/tmux) after the update that produced them. Reads never go through the
// engine: the host intercepts paste chords and issues tea.ReadClipboard, with
// the result arriving as a ClipboardMsg.
type clipboardBridge struct {
	pending []string
}

func (c *clipboardBridge) ReadText() (string, error) {
	return "", editor.ErrClipboardUnavailable
}

func (c *clipboardBridge) WriteText(text string) error {
	c.pending = append(c.pending, text)
	return nil
}

// flush drains buffered writes into commands.
func (c *clipboardBridge) flush() []tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(c.pending))
	for _, text := range c.pending {
		cmds = append(cmds, tea.SetClipboard(text))
	}
	c.pending = nil
	return cmds
}
