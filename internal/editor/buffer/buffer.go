// Package buffer implements the line-oriented gap buffer backing the editor.
// Lines before the gap are stored in order; lines after the gap are stored in
// reverse so both sides have O(1) access at the gap boundary. Sequential edits
// at the same locus are amortized O(1); a far jump costs O(distance) to move
// the gap.
package buffer

import (
	"errors"
	"strings"
)

// ErrOutOfRange reports a position outside the valid buffer bounds. Callers
// are expected to clamp positions before calling; seeing this error is a
// programming fault, not a user condition.
var ErrOutOfRange = errors.New("buffer: position out of range")

// Buffer is a line-based gap buffer. The zero value is not usable; construct
// with New. A Buffer always holds at least one line.
type Buffer struct {
	before []string // lines before the gap, in order
	after  []string // lines after the gap, reversed
}

// New builds a buffer from initial lines. An empty slice normalizes to a
// single empty line — a document is never zero lines.
func New(lines []string) *Buffer {
	if len(lines) == 0 {
		return &Buffer{before: []string{""}}
	}
	before := make([]string, len(lines))
	copy(before, lines)
	return &Buffer{before: before}
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.before) + len(b.after)
}

// IsEmpty reports whether the buffer holds exactly one empty line.
func (b *Buffer) IsEmpty() bool {
	return b.LineCount() == 1 && len(b.Lines()[0]) == 0
}

func (b *Buffer) gapPos() int { return len(b.before) }

// moveGapTo repositions the gap so that rows [0,row) are on the before side.
func (b *Buffer) moveGapTo(row int) {
	cur := b.gapPos()
	switch {
	case row == cur:
	case row < cur:
		for i := cur; i > row; i-- {
			n := len(b.before)
			b.after = append(b.after, b.before[n-1])
			b.before = b.before[:n-1]
		}
	default:
		target := min(row, b.LineCount())
		for i := cur; i < target; i++ {
			n := len(b.after)
			b.before = append(b.before, b.after[n-1])
			b.after = b.after[:n-1]
		}
	}
}

// Line returns the content of line row.
func (b *Buffer) Line(row int) (string, error) {
	if row < 0 || row >= b.LineCount() {
		return "", ErrOutOfRange
	}
	if row < b.gapPos() {
		return b.before[row], nil
	}
	return b.after[len(b.after)-(row-b.gapPos())-1], nil
}

// lineAt is Line without the bounds error, for callers that have already
// validated row.
func (b *Buffer) lineAt(row int) string {
	s, _ := b.Line(row)
	return s
}

// lineMut moves the gap so line row is the last before-side entry and returns
// a pointer into the before slice. Valid until the next gap move.
func (b *Buffer) lineMut(row int) *string {
	b.moveGapTo(row + 1)
	return &b.before[row]
}

// LineLen returns the length of line row in runes, or 0 if out of range.
func (b *Buffer) LineLen(row int) int {
	s, err := b.Line(row)
	if err != nil {
		return 0
	}
	return len([]rune(s))
}

// Lines returns all lines in logical order. The returned slice is freshly
// allocated; the strings are shared.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, b.LineCount())
	out = append(out, b.before...)
	for i := len(b.after) - 1; i >= 0; i-- {
		out = append(out, b.after[i])
	}
	return out
}

// Text returns the whole document joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// InsertChar inserts r at pos, shifting the rest of the line right.
func (b *Buffer) InsertChar(pos Position, r rune) error {
	if pos.Row < 0 || pos.Row >= b.LineCount() {
		return ErrOutOfRange
	}
	line := b.lineMut(pos.Row)
	runes := []rune(*line)
	if pos.Col < 0 || pos.Col > len(runes) {
		return ErrOutOfRange
	}
	*line = string(runes[:pos.Col]) + string(r) + string(runes[pos.Col:])
	return nil
}

// InsertString inserts a single-line string at pos. s must not contain
// newlines; multi-line insertion is composed from InsertString and SplitLine
// by the caller.
func (b *Buffer) InsertString(pos Position, s string) error {
	if pos.Row < 0 || pos.Row >= b.LineCount() {
		return ErrOutOfRange
	}
	line := b.lineMut(pos.Row)
	runes := []rune(*line)
	if pos.Col < 0 || pos.Col > len(runes) {
		return ErrOutOfRange
	}
	*line = string(runes[:pos.Col]) + s + string(runes[pos.Col:])
	return nil
}

// SplitLine splits line pos.Row at pos.Col into two lines, increasing the
// line count by one.
func (b *Buffer) SplitLine(pos Position) error {
	if pos.Row < 0 || pos.Row >= b.LineCount() {
		return ErrOutOfRange
	}
	line := b.lineMut(pos.Row)
	runes := []rune(*line)
	if pos.Col < 0 || pos.Col > len(runes) {
		return ErrOutOfRange
	}
	rest := string(runes[pos.Col:])
	*line = string(runes[:pos.Col])
	b.before = append(b.before, rest)
	return nil
}

// DeleteChar removes the character immediately before pos (backspace
// semantics) and returns it. At column 0 or (0,0) it is a no-op and returns
// ok=false; callers join lines with JoinLine instead.
func (b *Buffer) DeleteChar(pos Position) (r rune, ok bool) {
	if pos.Row < 0 || pos.Row >= b.LineCount() || pos.Col <= 0 {
		return 0, false
	}
	line := b.lineMut(pos.Row)
	runes := []rune(*line)
	if pos.Col > len(runes) {
		return 0, false
	}
	r = runes[pos.Col-1]
	*line = string(runes[:pos.Col-1]) + string(runes[pos.Col:])
	return r, true
}

// JoinLine merges line row into line row-1 when pos is at column 0 of a
// non-first line. Returns the column in the merged line where the join
// happened, for cursor placement. No-op at document start.
func (b *Buffer) JoinLine(row int) (col int, ok bool) {
	if row <= 0 || row >= b.LineCount() {
		return 0, false
	}
	b.moveGapTo(row + 1)
	cur := b.before[row]
	b.before = b.before[:row]
	prev := &b.before[row-1]
	col = len([]rune(*prev))
	*prev = *prev + cur
	return col, true
}

// InsertLine inserts content as a new line at row, shifting rows >= row down.
func (b *Buffer) InsertLine(row int, content string) error {
	if row < 0 || row > b.LineCount() {
		return ErrOutOfRange
	}
	b.moveGapTo(row)
	b.before = append(b.before, content)
	return nil
}

// DeleteLine removes line row and returns its content. When only one line
// remains the line is emptied instead of removed, preserving the >= 1 line
// invariant.
func (b *Buffer) DeleteLine(row int) (string, bool) {
	if row < 0 || row >= b.LineCount() {
		return "", false
	}
	if b.LineCount() == 1 {
		content := b.lineAt(0)
		*b.lineMut(0) = ""
		return content, true
	}
	b.moveGapTo(row + 1)
	content := b.before[row]
	b.before = b.before[:row]
	return content, true
}

// TextRange returns the text between start and end (end exclusive), with
// lines joined by newlines. Columns are clamped to line lengths.
func (b *Buffer) TextRange(start, end Position) string {
	if start.Row == end.Row {
		runes := []rune(b.lineAt(start.Row))
		s := min(start.Col, len(runes))
		e := min(end.Col, len(runes))
		if s >= e {
			return ""
		}
		return string(runes[s:e])
	}

	var sb strings.Builder
	first := []rune(b.lineAt(start.Row))
	sb.WriteString(string(first[min(start.Col, len(first)):]))
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lineAt(row))
	}
	sb.WriteByte('\n')
	last := []rune(b.lineAt(end.Row))
	sb.WriteString(string(last[:min(end.Col, len(last))]))
	return sb.String()
}

// DeleteTextRange removes the text between start and end (end exclusive) and
// returns it. Multi-line ranges collapse into a single line joining the head
// of the start line with the tail of the end line.
func (b *Buffer) DeleteTextRange(start, end Position) string {
	deleted := b.TextRange(start, end)

	if start.Row == end.Row {
		line := b.lineMut(start.Row)
		runes := []rune(*line)
		s := min(start.Col, len(runes))
		e := min(end.Col, len(runes))
		*line = string(runes[:s]) + string(runes[e:])
		return deleted
	}

	endRunes := []rune(b.lineAt(end.Row))
	tail := string(endRunes[min(end.Col, len(endRunes)):])

	for row := start.Row + 1; row <= end.Row; row++ {
		b.DeleteLine(start.Row + 1)
	}

	line := b.lineMut(start.Row)
	runes := []rune(*line)
	*line = string(runes[:min(start.Col, len(runes))]) + tail
	return deleted
}
