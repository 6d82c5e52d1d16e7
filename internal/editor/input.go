package editor

// KeyEvent is a host-independent key press: a normalized keystroke string
// (such as "left", "shift+right", "ctrl+z") plus the printable text it
// carries, if any.
type KeyEvent struct {
	Key  string
	Text string
}

// IntentKind enumerates what a key event asks the editor to do.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentInsert
	IntentNewline
	IntentDeleteBack
	IntentDeleteForward
	IntentMove
	IntentUndo
	IntentRedo
	IntentCopy
	IntentCut
	IntentPaste
	IntentSelectAll
	IntentCancelSelection
)

// Intent is a decoded editing command. Move intents carry the movement
// variant and whether the selection extends; insert intents carry the text.
type Intent struct {
	Kind   IntentKind
	Text   string
	Move   Movement
	Extend bool
}

var keyMoves = map[string]Movement{
	"left":       CharLeft,
	"right":      CharRight,
	"up":         VisualLineUp,
	"down":       VisualLineDown,
	"ctrl+left":  WordLeft,
	"ctrl+right": WordRight,
	"alt+left":   WordLeft,
	"alt+right":  WordRight,
	"home":       LineStart,
	"end":        LineEnd,
	"ctrl+home":  DocStart,
	"ctrl+end":   DocEnd,
	"pgup":       PageUp,
	"pgdown":     PageDown,
}

// ProcessKey maps one key event to an intent. The mapping is stateless; keys
// the editor does not own decode to IntentNone so the host can handle them.
func ProcessKey(ev KeyEvent) Intent {
	key, extend := stripShift(ev.Key)
	if m, ok := keyMoves[key]; ok {
		return Intent{Kind: IntentMove, Move: m, Extend: extend}
	}

	switch ev.Key {
	case "enter":
		return Intent{Kind: IntentNewline}
	case "backspace", "ctrl+h":
		return Intent{Kind: IntentDeleteBack}
	case "delete":
		return Intent{Kind: IntentDeleteForward}
	case "tab":
		return Intent{Kind: IntentInsert, Text: "\t"}
	case "ctrl+z":
		return Intent{Kind: IntentUndo}
	case "ctrl+y", "ctrl+shift+z":
		return Intent{Kind: IntentRedo}
	case "ctrl+c", "ctrl+shift+c":
		return Intent{Kind: IntentCopy}
	case "ctrl+x", "ctrl+shift+x":
		return Intent{Kind: IntentCut}
	case "ctrl+v", "ctrl+shift+v":
		return Intent{Kind: IntentPaste}
	case "ctrl+a":
		return Intent{Kind: IntentSelectAll}
	case "esc":
		return Intent{Kind: IntentCancelSelection}
	}

	if ev.Text != "" {
		return Intent{Kind: IntentInsert, Text: ev.Text}
	}
	return Intent{Kind: IntentNone}
}

// stripShift splits the shift modifier off movement keystrokes, reporting
// whether it was present.
func stripShift(key string) (string, bool) {
	const prefix = "shift+"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return key[len(prefix):], true
	}
	const ctrlShift = "ctrl+shift+"
	if len(key) > len(ctrlShift) && key[:len(ctrlShift)] == ctrlShift {
		return "ctrl+" + key[len(ctrlShift):], true
	}
	return key, false
}

// HandleKey decodes and applies one key event. Reports whether the event was
// consumed; clipboard failures surface as the returned error.
func (e *Editor) HandleKey(ev KeyEvent) (bool, error) {
	return e.Apply(ProcessKey(ev))
}

// Apply executes a decoded intent against the editor.
func (e *Editor) Apply(in Intent) (bool, error) {
	switch in.Kind {
	case IntentInsert:
		for _, r := range in.Text {
			e.InsertRune(r)
		}
	case IntentNewline:
		e.InsertNewline()
	case IntentDeleteBack:
		e.DeleteBackward()
	case IntentDeleteForward:
		e.DeleteForward()
	case IntentMove:
		e.MoveCursor(in.Move, in.Extend)
	case IntentUndo:
		e.Undo()
	case IntentRedo:
		e.Redo()
	case IntentCopy:
		return true, e.Copy()
	case IntentCut:
		return true, e.Cut()
	case IntentPaste:
		return true, e.Paste()
	case IntentSelectAll:
		e.SelectAll()
	case IntentCancelSelection:
		e.CancelSelection()
	default:
		return false, nil
	}
	return true, nil
}
