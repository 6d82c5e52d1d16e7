package editor

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/quill/internal/editor/buffer"
	"github.com/xonecas/quill/internal/editor/history"
)

// ---------------------------------------------------------------------------
// Editing commands
// ---------------------------------------------------------------------------

// InsertRune inserts a single rune at the cursor, replacing the selection if
// one is active. The replacement is one undo entry.
func (e *Editor) InsertRune(r rune) {
	before := e.cur
	ops := e.deleteSelectionOps()
	op := history.Op{Kind: history.OpInsert, Pos: e.cur, Text: string(r)}
	e.applyOp(op)
	e.cur = history.EndPosition(op.Pos, op.Text)
	ops = append(ops, op)
	e.hist.Record(before, e.cur, ops...)
	e.ensureCursorVisible()
}

// InsertNewline splits the current line at the cursor, replacing the
// selection if one is active.
func (e *Editor) InsertNewline() {
	before := e.cur
	ops := e.deleteSelectionOps()
	op := history.Op{Kind: history.OpSplit, Pos: e.cur}
	e.applyOp(op)
	e.cur = buffer.Position{Row: op.Pos.Row + 1, Col: 0}
	ops = append(ops, op)
	e.hist.Record(before, e.cur, ops...)
	e.ensureCursorVisible()
}

// InsertText inserts text, possibly spanning lines, at the cursor. Line
// endings are normalized to \n. The whole insertion, including replacing a
// selection, is one undo entry.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	text = normalizeNewlines(text)
	before := e.cur
	ops := e.deleteSelectionOps()
	op := history.Op{Kind: history.OpInsert, Pos: e.cur, Text: text}
	e.applyOp(op)
	e.cur = history.EndPosition(op.Pos, op.Text)
	ops = append(ops, op)
	e.hist.Record(before, e.cur, ops...)
	e.ensureCursorVisible()
}

// DeleteBackward removes the selection, or the rune before the cursor, or
// joins with the previous line at column zero. No-op at document start.
func (e *Editor) DeleteBackward() {
	before := e.cur
	if ops := e.deleteSelectionOps(); len(ops) > 0 {
		e.hist.Record(before, e.cur, ops...)
		e.ensureCursorVisible()
		return
	}
	var op history.Op
	switch {
	case e.cur.Col > 0:
		start := buffer.Position{Row: e.cur.Row, Col: e.cur.Col - 1}
		op = history.Op{
			Kind: history.OpDelete,
			Pos:  start,
			End:  e.cur,
			Text: e.buf.TextRange(start, e.cur),
		}
		e.applyOp(op)
		e.cur = start
	case e.cur.Row > 0:
		col := e.buf.LineLen(e.cur.Row - 1)
		op = history.Op{Kind: history.OpJoin, Pos: buffer.Position{Row: e.cur.Row, Col: col}}
		e.applyOp(op)
		e.cur = buffer.Position{Row: op.Pos.Row - 1, Col: col}
	default:
		return
	}
	e.hist.Record(before, e.cur, op)
	e.ensureCursorVisible()
}

// DeleteForward removes the selection, or the rune under the cursor, or
// joins the next line at end of line. No-op at document end.
func (e *Editor) DeleteForward() {
	before := e.cur
	if ops := e.deleteSelectionOps(); len(ops) > 0 {
		e.hist.Record(before, e.cur, ops...)
		e.ensureCursorVisible()
		return
	}
	var op history.Op
	switch {
	case e.cur.Col < e.buf.LineLen(e.cur.Row):
		end := buffer.Position{Row: e.cur.Row, Col: e.cur.Col + 1}
		op = history.Op{
			Kind: history.OpDelete,
			Pos:  e.cur,
			End:  end,
			Text: e.buf.TextRange(e.cur, end),
		}
		e.applyOp(op)
	case e.cur.Row < e.buf.LineCount()-1:
		op = history.Op{Kind: history.OpJoin, Pos: buffer.Position{Row: e.cur.Row + 1, Col: e.cur.Col}}
		e.applyOp(op)
	default:
		return
	}
	e.hist.Record(before, e.cur, op)
	e.ensureCursorVisible()
}

// deleteSelectionOps removes the active selection from the buffer and
// returns the delete op for history, moving the cursor to the selection
// start. Returns nil when no selection is active.
func (e *Editor) deleteSelectionOps() []history.Op {
	start, end, ok := e.Selection()
	if !ok {
		e.sel = nil
		return nil
	}
	op := history.Op{
		Kind: history.OpDelete,
		Pos:  start,
		End:  end,
		Text: e.buf.TextRange(start, end),
	}
	e.applyOp(op)
	e.cur = start
	e.sel = nil
	return []history.Op{op}
}

// ---------------------------------------------------------------------------
// Undo / redo
// ---------------------------------------------------------------------------

// Undo reverts the most recent entry, restoring the cursor to where it was
// before the edit. Reports whether anything was undone.
func (e *Editor) Undo() bool {
	entry, ok := e.hist.PopUndo()
	if !ok {
		return false
	}
	for i := len(entry.Ops) - 1; i >= 0; i-- {
		e.applyOp(entry.Ops[i].Inverse())
	}
	e.sel = nil
	e.cur = entry.CursorBefore.Clamp(e.buf)
	e.ensureCursorVisible()
	return true
}

// Redo re-applies the most recently undone entry. Reports whether anything
// was redone.
func (e *Editor) Redo() bool {
	entry, ok := e.hist.PopRedo()
	if !ok {
		return false
	}
	for _, op := range entry.Ops {
		e.applyOp(op)
	}
	e.sel = nil
	e.cur = entry.CursorAfter.Clamp(e.buf)
	e.ensureCursorVisible()
	return true
}

// ---------------------------------------------------------------------------
// Clipboard
// ---------------------------------------------------------------------------

// Copy writes the selected text to the clipboard. No-op without a selection.
func (e *Editor) Copy() error {
	text := e.SelectedText()
	if text == "" {
		return nil
	}
	return e.clip.WriteText(text)
}

// Cut copies the selection and then deletes it as one undo entry. If the
// clipboard write fails the buffer is left untouched.
func (e *Editor) Cut() error {
	start, end, ok := e.Selection()
	if !ok {
		return nil
	}
	if err := e.clip.WriteText(e.buf.TextRange(start, end)); err != nil {
		return err
	}
	before := e.cur
	ops := e.deleteSelectionOps()
	e.hist.Record(before, e.cur, ops...)
	e.ensureCursorVisible()
	return nil
}

// Paste inserts clipboard text at the cursor, replacing the selection. If
// the clipboard read fails nothing changes.
func (e *Editor) Paste() error {
	text, err := e.clip.ReadText()
	if err != nil {
		return err
	}
	e.InsertText(text)
	return nil
}

// ---------------------------------------------------------------------------
// Op application
// ---------------------------------------------------------------------------

// applyOp mutates the buffer per op and keeps the wrap cache aligned. Ops
// come from the editing commands or from history inverses, so positions are
// trusted; a buffer error here means the op stream is corrupt.
func (e *Editor) applyOp(op history.Op) {
	switch op.Kind {
	case history.OpInsert:
		e.applyInsert(op.Pos, op.Text)
	case history.OpDelete:
		e.buf.DeleteTextRange(op.Pos, op.End)
		for row := op.End.Row; row > op.Pos.Row; row-- {
			e.wrap.removeLine(row)
		}
		e.wrap.invalidateLine(op.Pos.Row)
	case history.OpSplit:
		if err := e.buf.SplitLine(op.Pos); err != nil {
			log.Error().Err(err).Int("row", op.Pos.Row).Msg("editor: split failed")
			return
		}
		e.wrap.insertLine(op.Pos.Row + 1)
		e.wrap.invalidateLine(op.Pos.Row)
	case history.OpJoin:
		if _, ok := e.buf.JoinLine(op.Pos.Row); !ok {
			log.Error().Int("row", op.Pos.Row).Msg("editor: join failed")
			return
		}
		e.wrap.removeLine(op.Pos.Row)
		e.wrap.invalidateLine(op.Pos.Row - 1)
	}
}

func (e *Editor) applyInsert(pos buffer.Position, text string) {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		if err := e.buf.InsertString(pos, text); err != nil {
			log.Error().Err(err).Int("row", pos.Row).Int("col", pos.Col).
				Msg("editor: insert failed")
			return
		}
		e.wrap.invalidateLine(pos.Row)
		return
	}
	// Split the target line at pos, then lay the pieces down: the first on
	// the head, the last at the start of the tail, the rest between.
	if err := e.buf.SplitLine(pos); err != nil {
		log.Error().Err(err).Int("row", pos.Row).Int("col", pos.Col).
			Msg("editor: insert split failed")
		return
	}
	e.wrap.insertLine(pos.Row + 1)
	if err := e.buf.InsertString(pos, lines[0]); err != nil {
		log.Error().Err(err).Int("row", pos.Row).Int("col", pos.Col).
			Msg("editor: insert failed")
	}
	e.wrap.invalidateLine(pos.Row)
	for i := 1; i < len(lines)-1; i++ {
		if err := e.buf.InsertLine(pos.Row+i, lines[i]); err != nil {
			log.Error().Err(err).Int("row", pos.Row+i).Msg("editor: insert line failed")
		}
		e.wrap.insertLine(pos.Row + i)
	}
	lastRow := pos.Row + len(lines) - 1
	if err := e.buf.InsertString(buffer.Position{Row: lastRow, Col: 0}, lines[len(lines)-1]); err != nil {
		log.Error().Err(err).Int("row", lastRow).Msg("editor: insert failed")
	}
	e.wrap.invalidateLine(lastRow)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
