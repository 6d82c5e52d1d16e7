package editor

import "testing"

func TestProcessKey(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want Intent
	}{
		{"left", KeyEvent{Key: "left"}, Intent{Kind: IntentMove, Move: CharLeft}},
		{"shift left", KeyEvent{Key: "shift+left"}, Intent{Kind: IntentMove, Move: CharLeft, Extend: true}},
		{"up is visual", KeyEvent{Key: "up"}, Intent{Kind: IntentMove, Move: VisualLineUp}},
		{"word right", KeyEvent{Key: "ctrl+right"}, Intent{Kind: IntentMove, Move: WordRight}},
		{"shift word right", KeyEvent{Key: "ctrl+shift+right"}, Intent{Kind: IntentMove, Move: WordRight, Extend: true}},
		{"home", KeyEvent{Key: "home"}, Intent{Kind: IntentMove, Move: LineStart}},
		{"doc end", KeyEvent{Key: "ctrl+end"}, Intent{Kind: IntentMove, Move: DocEnd}},
		{"page down", KeyEvent{Key: "pgdown"}, Intent{Kind: IntentMove, Move: PageDown}},
		{"enter", KeyEvent{Key: "enter"}, Intent{Kind: IntentNewline}},
		{"backspace", KeyEvent{Key: "backspace"}, Intent{Kind: IntentDeleteBack}},
		{"delete", KeyEvent{Key: "delete"}, Intent{Kind: IntentDeleteForward}},
		{"tab", KeyEvent{Key: "tab"}, Intent{Kind: IntentInsert, Text: "\t"}},
		{"undo", KeyEvent{Key: "ctrl+z"}, Intent{Kind: IntentUndo}},
		{"redo", KeyEvent{Key: "ctrl+y"}, Intent{Kind: IntentRedo}},
		{"redo shift", KeyEvent{Key: "ctrl+shift+z"}, Intent{Kind: IntentRedo}},
		{"copy", KeyEvent{Key: "ctrl+c"}, Intent{Kind: IntentCopy}},
		{"cut", KeyEvent{Key: "ctrl+x"}, Intent{Kind: IntentCut}},
		{"paste", KeyEvent{Key: "ctrl+v"}, Intent{Kind: IntentPaste}},
		{"select all", KeyEvent{Key: "ctrl+a"}, Intent{Kind: IntentSelectAll}},
		{"esc", KeyEvent{Key: "esc"}, Intent{Kind: IntentCancelSelection}},
		{"rune", KeyEvent{Key: "a", Text: "a"}, Intent{Kind: IntentInsert, Text: "a"}},
		{"unknown chord", KeyEvent{Key: "ctrl+t"}, Intent{Kind: IntentNone}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProcessKey(tc.ev); got != tc.want {
				t.Fatalf("ProcessKey(%+v) = %+v, want %+v", tc.ev, got, tc.want)
			}
		})
	}
}

func TestHandleKeyTypingSequence(t *testing.T) {
	e := newTestEditor("")
	for _, ev := range []KeyEvent{
		{Key: "h", Text: "h"},
		{Key: "i", Text: "i"},
		{Key: "enter"},
		{Key: "shift+!", Text: "!"},
		{Key: "backspace"},
	} {
		consumed, err := e.HandleKey(ev)
		if err != nil {
			t.Fatalf("HandleKey(%+v) error: %v", ev, err)
		}
		if !consumed {
			t.Fatalf("HandleKey(%+v) not consumed", ev)
		}
	}
	if got := e.Text(); got != "hi\n" {
		t.Fatalf("Text() = %q, want %q", got, "hi\n")
	}
}

func TestHandleKeyUnknownNotConsumed(t *testing.T) {
	e := newTestEditor("hi")
	consumed, err := e.HandleKey(KeyEvent{Key: "f5"})
	if err != nil || consumed {
		t.Fatalf("HandleKey(f5) = (%v, %v), want (false, nil)", consumed, err)
	}
	if got := e.Text(); got != "hi" {
		t.Fatalf("unknown key mutated text: %q", got)
	}
}

func TestEscCancelsSelection(t *testing.T) {
	e := newTestEditor("hello")
	e.MoveCursor(LineEnd, true)
	if !e.HasSelection() {
		t.Fatal("no selection to cancel")
	}
	if _, err := e.HandleKey(KeyEvent{Key: "esc"}); err != nil {
		t.Fatal(err)
	}
	if e.HasSelection() {
		t.Fatal("esc kept the selection")
	}
	if _, col := e.Cursor(); col != 5 {
		t.Fatalf("esc moved the cursor to col %d", col)
	}
}
