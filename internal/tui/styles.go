package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/quill/internal/config"
	"github.com/xonecas/quill/internal/highlight"
)

// Styles holds the lipgloss styles used across the TUI, derived from the
// configured Chroma theme so the chrome always matches the note colors.
type Styles struct {
	BgFill     lipgloss.Style // Plain background filler
	Text       lipgloss.Style // Primary text
	LineNum    lipgloss.Style // Line number gutter
	Border     lipgloss.Style // Separator lines
	Selection  lipgloss.Style // Selected text
	Overflow   lipgloss.Style // Horizontal overflow indicators
	StatusText lipgloss.Style // Status bar text
	StatusAdd  lipgloss.Style // Diff stat: added lines
	StatusMod  lipgloss.Style // Diff stat: modified lines
	StatusDel  lipgloss.Style // Diff stat: removed lines
	Accent     lipgloss.Style // Highlighted status segments
	Error      lipgloss.Style // Error text
	Cursor     lipgloss.Style // Cursor foreground
}

// newStyles derives the style set from the theme palette, with config color
// overrides applied on top.
func newStyles(cfg *config.Config) (Styles, highlight.Palette) {
	pal := highlight.ThemePalette(cfg.UI.SyntaxThemeOrDefault())

	selBg := pal.Select
	if cfg.UI.SelectionBG != "" {
		selBg = cfg.UI.SelectionBG
	}
	statusFg := pal.Muted
	if cfg.UI.StatusFG != "" {
		statusFg = cfg.UI.StatusFG
	}

	bg := lipgloss.Color(pal.Bg)
	s := Styles{
		BgFill:     lipgloss.NewStyle().Background(bg),
		Text:       lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(pal.Fg)),
		LineNum:    lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(pal.Dim)),
		Border:     lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(pal.Border)),
		Selection:  lipgloss.NewStyle().Background(lipgloss.Color(selBg)).Foreground(lipgloss.Color(pal.Fg)),
		Overflow:   lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(pal.Accent)),
		StatusText: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(statusFg)),
		StatusAdd:  lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#4fa36c")),
		StatusMod:  lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#b8a13a")),
		StatusDel:  lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(pal.Error)),
		Accent:     lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(pal.Accent)),
		Error:      lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(pal.Error)),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Accent)),
	}
	return s, pal
}
