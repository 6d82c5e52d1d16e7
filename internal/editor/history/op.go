// Package history records invertible edit operations and provides bounded
// undo/redo with time-windowed merging of typing bursts.
package history

import (
	"strings"
	"unicode"

	"github.com/xonecas/quill/internal/editor/buffer"
)

// Kind identifies an edit operation variant. The set is closed so merge and
// eviction logic can switch exhaustively.
type Kind int

const (
	// OpInsert inserts Text at Pos. Text may span lines.
	OpInsert Kind = iota
	// OpDelete removes the text between Pos and End; Text holds what was
	// removed so the inverse can restore it.
	OpDelete
	// OpSplit splits the line at Pos into two.
	OpSplit
	// OpJoin merges line Pos.Row into the previous line; Pos.Col is the
	// column in the merged line where the join happened.
	OpJoin
)

// Op is one edit operation. Each variant carries enough data to construct its
// exact inverse. Ops are immutable once recorded.
type Op struct {
	Kind Kind
	Pos  buffer.Position
	End  buffer.Position // OpDelete only
	Text string          // OpInsert: inserted text; OpDelete: removed text
}

// Inverse returns the operation that exactly undoes o.
func (o Op) Inverse() Op {
	switch o.Kind {
	case OpInsert:
		return Op{Kind: OpDelete, Pos: o.Pos, End: EndPosition(o.Pos, o.Text), Text: o.Text}
	case OpDelete:
		return Op{Kind: OpInsert, Pos: o.Pos, Text: o.Text}
	case OpSplit:
		return Op{Kind: OpJoin, Pos: buffer.Position{Row: o.Pos.Row + 1, Col: o.Pos.Col}}
	case OpJoin:
		return Op{Kind: OpSplit, Pos: buffer.Position{Row: o.Pos.Row - 1, Col: o.Pos.Col}}
	}
	return o
}

// EndPosition returns the position one past the last rune of text inserted at
// start, accounting for embedded line breaks.
func EndPosition(start buffer.Position, text string) buffer.Position {
	if text == "" {
		return start
	}
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return buffer.Position{Row: start.Row, Col: start.Col + len([]rune(text))}
	}
	last := lines[len(lines)-1]
	return buffer.Position{Row: start.Row + len(lines) - 1, Col: len([]rune(last))}
}

// insertClass tags single-rune insertions for merge decisions: runs of the
// same class within the merge window coalesce into one undo entry.
type insertClass int

const (
	classNone insertClass = iota
	classWord
	classSpace
)

func classOf(text string) insertClass {
	runes := []rune(text)
	if len(runes) != 1 {
		return classNone
	}
	if unicode.IsSpace(runes[0]) {
		return classSpace
	}
	return classWord
}
