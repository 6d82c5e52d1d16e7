package tui

import (
	"path/filepath"
	"strconv"
	"sync"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/quill/internal/config"
	"github.com/xonecas/quill/internal/editor"
	"github.com/xonecas/quill/internal/highlight"
	"github.com/xonecas/quill/internal/notestore"
)

// statusRows is the footer height: a separator line plus the status bar.
const statusRows = 2

// Model is the application model.
type Model struct {
	cfg    *config.Config
	store  *notestore.Store
	styles Styles
	pal    highlight.Palette

	notePath  string
	language  string
	savedText string

	ed   *editor.Editor
	cur  cursor.Model
	clip *clipboardBridge

	width  int
	height int

	markers map[int]GutterMark
	stat    diffStat

	autoScrolling bool
	saveErr       error
}

// New builds the model for a note. text is the note's saved content; prior
// cursor and scroll state is restored from the store when present.
func New(cfg *config.Config, st *notestore.Store, path, text string) Model {
	styles, pal := newStyles(cfg)

	ed := editor.New(editor.SplitIntoLines(text))
	ed.SetLineWrap(cfg.Editor.LineWrapOrDefault())

	clip := &clipboardBridge{}
	ed.SetClipboard(clip)

	c := cursor.New()
	c.SetMode(cursor.CursorBlink)
	c.Style = styles.Cursor
	c.TextStyle = styles.Text
	c.Focus()

	m := Model{
		cfg:       cfg,
		store:     st,
		styles:    styles,
		pal:       pal,
		notePath:  path,
		language:  highlight.DetectLanguage(path),
		savedText: text,
		ed:        ed,
		cur:       c,
		clip:      clip,
	}
	m.restoreState()
	return m
}

// Init kicks off cursor blinking (required by BubbleTea).
func (m Model) Init() tea.Cmd {
	return m.cur.Blink()
}

// restoreState re-applies the persisted cursor and scroll position.
func (m *Model) restoreState() {
	state, ok := m.store.Get(m.notePath)
	if !ok {
		return
	}
	m.ed.SetLineWrap(state.LineWrap)
	m.ed.RestoreView(state.CursorRow, state.CursorCol, state.ScrollTop)
}

// persistState writes the current view state back to the store.
func (m *Model) persistState() {
	row, col := m.ed.Cursor()
	m.store.Set(m.notePath, notestore.State{
		CursorRow: row,
		CursorCol: col,
		ScrollTop: m.ed.ScrollTop(),
		LineWrap:  m.ed.LineWrap(),
	})
}

// noteName is the short name shown in the status bar.
func (m Model) noteName() string {
	if m.notePath == "" {
		return "untitled"
	}
	return filepath.Base(m.notePath)
}

// gutterWidth is the line-number column width: digits, a marker cell, and a
// trailing space.
func (m Model) gutterWidth() int {
	digits := len(strconv.Itoa(m.ed.LineCount()))
	if digits < 2 {
		digits = 2
	}
	return digits + 2
}

// refreshDiff recomputes unsaved-change markers against the saved content.
func (m *Model) refreshDiff() {
	m.markers, m.stat = unsavedDiff(m.savedText, m.ed.Text())
}

// highlighted returns the per-line highlighted document text.
func (m Model) highlighted() []string {
	return highlightedLines(m.ed.Text(), m.language, m.cfg.UI.SyntaxThemeOrDefault(), m.pal.Bg)
}

// ---------------------------------------------------------------------------
// Highlight cache (global, shared across frames)
// ---------------------------------------------------------------------------

var (
	hlMu    sync.Mutex
	hlKey   string
	hlLines []string
)

// highlightedLines memoizes the per-line highlight of the whole document so
// blink frames don't re-run chroma. Highlighting the document as one block
// keeps multi-line constructs like fenced code colored correctly.
func highlightedLines(text, language, theme, bgHex string) []string {
	key := language + ":" + theme + ":" + bgHex + ":" + text
	hlMu.Lock()
	defer hlMu.Unlock()
	if key == hlKey {
		return hlLines
	}
	block := highlight.Highlight(text, language, theme, bgHex)
	hlKey = key
	hlLines = highlight.SplitLines(block)
	return hlLines
}
