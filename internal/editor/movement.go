package editor

import (
	"unicode"

	"github.com/xonecas/quill/internal/editor/buffer"
)

// Movement enumerates the cursor movement variants.
type Movement int

const (
	CharLeft Movement = iota
	CharRight
	WordLeft
	WordRight
	LineUp
	LineDown
	VisualLineUp
	VisualLineDown
	LineStart
	LineEnd
	DocStart
	DocEnd
	PageUp
	PageDown
)

// MoveCursor applies a movement. With extend the selection is anchored (if
// not already) and its active end follows the cursor; without it any active
// selection is cancelled first. Movements clamp at document boundaries.
func (e *Editor) MoveCursor(m Movement, extend bool) {
	if extend {
		e.StartSelection()
	} else {
		e.CancelSelection()
	}

	switch m {
	case CharLeft:
		e.cur = e.leftOf(e.cur)
	case CharRight:
		e.cur = e.rightOf(e.cur)
	case WordLeft:
		e.cur = e.wordLeftOf(e.cur)
	case WordRight:
		e.cur = e.wordRightOf(e.cur)
	case LineUp:
		e.moveLine(-1)
	case LineDown:
		e.moveLine(1)
	case VisualLineUp:
		e.moveVisualLine(-1)
	case VisualLineDown:
		e.moveVisualLine(1)
	case LineStart:
		e.cur.Col = 0
	case LineEnd:
		e.cur.Col = e.buf.LineLen(e.cur.Row)
	case DocStart:
		e.cur = buffer.Position{}
	case DocEnd:
		last := e.buf.LineCount() - 1
		e.cur = buffer.Position{Row: last, Col: e.buf.LineLen(last)}
	case PageUp:
		e.movePage(-1)
	case PageDown:
		e.movePage(1)
	}

	e.clampCursor()
	if extend {
		e.extendSelectionTo(e.cur)
	}
	e.ensureCursorVisible()
}

func (e *Editor) leftOf(p buffer.Position) buffer.Position {
	if p.Col > 0 {
		p.Col--
		return p
	}
	if p.Row > 0 {
		p.Row--
		p.Col = e.buf.LineLen(p.Row)
	}
	return p
}

func (e *Editor) rightOf(p buffer.Position) buffer.Position {
	if p.Col < e.buf.LineLen(p.Row) {
		p.Col++
		return p
	}
	if p.Row < e.buf.LineCount()-1 {
		p.Row++
		p.Col = 0
	}
	return p
}

// wordLeftOf moves to the start of the previous word, hopping to the end of
// the previous line when already at column zero.
func (e *Editor) wordLeftOf(p buffer.Position) buffer.Position {
	if p.Col == 0 {
		return e.leftOf(p)
	}
	line, _ := e.buf.Line(p.Row)
	runes := []rune(line)
	i := p.Col
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	p.Col = i
	return p
}

// wordRightOf moves past the current word and any whitespace after it,
// hopping to the start of the next line at end of line.
func (e *Editor) wordRightOf(p buffer.Position) buffer.Position {
	n := e.buf.LineLen(p.Row)
	if p.Col >= n {
		return e.rightOf(p)
	}
	line, _ := e.buf.Line(p.Row)
	runes := []rune(line)
	i := p.Col
	for i < n && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < n && unicode.IsSpace(runes[i]) {
		i++
	}
	p.Col = i
	return p
}

func (e *Editor) moveLine(delta int) {
	row := e.cur.Row + delta
	if row < 0 {
		row = 0
	}
	if row > e.buf.LineCount()-1 {
		row = e.buf.LineCount() - 1
	}
	e.cur.Row = row
	if n := e.buf.LineLen(row); e.cur.Col > n {
		e.cur.Col = n
	}
}

// moveVisualLine moves by one wrapped row, keeping the column within the
// segment. Clamps at the first and last visual row.
func (e *Editor) moveVisualLine(delta int) {
	visRow, col := e.wrap.visualForPosition(e.cur)
	target := visRow + delta
	if target < 0 || target >= e.wrap.visualCount() {
		return
	}
	e.cur = e.wrap.positionAt(target, col)
}

func (e *Editor) movePage(dir int) {
	step := e.height
	if step <= 0 {
		step = 1
	}
	e.moveLine(dir * step)
	e.Scroll(dir * step)
}
