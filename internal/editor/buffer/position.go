package buffer

// Position is a logical location in the document: Row is a line index, Col a
// rune offset within that line. Col == LineLen(Row) addresses the end of the
// line.
type Position struct {
	Row, Col int
}

// Before reports whether p precedes q in document order.
func (p Position) Before(q Position) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

// Clamp returns p constrained to valid coordinates for b.
func (p Position) Clamp(b *Buffer) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= b.LineCount() {
		p.Row = b.LineCount() - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := b.LineLen(p.Row); p.Col > n {
		p.Col = n
	}
	return p
}
