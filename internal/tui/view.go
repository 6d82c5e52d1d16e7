package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// renderContent produces the string content for the view: the editor rows
// followed by the separator and status bar.
func (m Model) renderContent() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	m.renderEditorRows(&b)
	b.WriteByte('\n')
	m.renderStatusBar(&b)
	return b.String()
}
