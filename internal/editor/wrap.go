package editor

import (
	"unicode"

	"github.com/xonecas/quill/internal/editor/buffer"
)

// Segment is one visual row of a wrapped logical line, as a half-open rune
// column range [Start, End) into that line.
type Segment struct {
	Start int
	End   int
}

// wrapCache lazily computes wrap segments per logical line and keeps them
// aligned with the buffer under edits. segs[row] == nil means not computed.
type wrapCache struct {
	buf     *buffer.Buffer
	width   int
	enabled bool
	segs    [][]Segment
}

func newWrapCache(buf *buffer.Buffer) *wrapCache {
	return &wrapCache{buf: buf, segs: make([][]Segment, buf.LineCount())}
}

func (w *wrapCache) setWidth(width int) {
	if width == w.width {
		return
	}
	w.width = width
	w.invalidateAll()
}

func (w *wrapCache) setEnabled(enabled bool) {
	if enabled == w.enabled {
		return
	}
	w.enabled = enabled
	w.invalidateAll()
}

func (w *wrapCache) invalidateAll() {
	w.segs = make([][]Segment, w.buf.LineCount())
}

// invalidateLine drops the cached segments for one line after its content
// changed.
func (w *wrapCache) invalidateLine(row int) {
	if row >= 0 && row < len(w.segs) {
		w.segs[row] = nil
	}
}

// insertLine mirrors a line insertion at row in the cache.
func (w *wrapCache) insertLine(row int) {
	if row < 0 || row > len(w.segs) {
		return
	}
	w.segs = append(w.segs, nil)
	copy(w.segs[row+1:], w.segs[row:])
	w.segs[row] = nil
}

// removeLine mirrors a line removal at row in the cache.
func (w *wrapCache) removeLine(row int) {
	if row < 0 || row >= len(w.segs) {
		return
	}
	w.segs = append(w.segs[:row], w.segs[row+1:]...)
}

// lineSegments returns the segments for row, computing them on demand. Every
// line has at least one segment; an empty line wraps to a single empty one.
func (w *wrapCache) lineSegments(row int) []Segment {
	if row < 0 || row >= w.buf.LineCount() {
		return nil
	}
	if row >= len(w.segs) {
		// Cache fell out of sync with the buffer; rebuild the index.
		w.invalidateAll()
	}
	if w.segs[row] == nil {
		line, _ := w.buf.Line(row)
		w.segs[row] = w.wrapLine(line)
	}
	return w.segs[row]
}

// wrapLine splits a line into segments of at most width runes, preferring to
// break after the last run of whitespace that fits. A word longer than the
// width is broken hard after the last rune that fits.
func (w *wrapCache) wrapLine(line string) []Segment {
	runes := []rune(line)
	if !w.enabled || w.width <= 0 || len(runes) <= w.width {
		return []Segment{{Start: 0, End: len(runes)}}
	}
	var segs []Segment
	start := 0
	for len(runes)-start > w.width {
		limit := start + w.width
		brk := limit
		if at, ok := lastBreakBefore(runes, start, limit); ok {
			brk = at
		}
		segs = append(segs, Segment{Start: start, End: brk})
		start = brk
	}
	segs = append(segs, Segment{Start: start, End: len(runes)})
	return segs
}

// lastBreakBefore finds the position just after the last whitespace run in
// runes[start:limit], so the trailing spaces stay on the upper segment and
// the next word starts the following one.
func lastBreakBefore(runes []rune, start, limit int) (int, bool) {
	last := -1
	i := start
	for i < limit {
		if !unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		j := i + 1
		for j < limit && unicode.IsSpace(runes[j]) {
			j++
		}
		last = j
		i = j
	}
	if last <= start {
		return 0, false
	}
	return last, true
}

// visualCount returns the total visual row count of the document.
func (w *wrapCache) visualCount() int {
	n := 0
	for row := 0; row < w.buf.LineCount(); row++ {
		n += len(w.lineSegments(row))
	}
	return n
}

// visualForPosition maps a buffer position to its visual row index and the
// column within that row. A position at a segment boundary belongs to the
// later segment, except at end of line where it stays on the last one.
func (w *wrapCache) visualForPosition(pos buffer.Position) (visRow, col int) {
	base := 0
	for row := 0; row < pos.Row && row < w.buf.LineCount(); row++ {
		base += len(w.lineSegments(row))
	}
	segs := w.lineSegments(pos.Row)
	for i, seg := range segs {
		if pos.Col < seg.End || i == len(segs)-1 {
			return base + i, pos.Col - seg.Start
		}
	}
	return base, pos.Col
}

// segmentAt resolves a visual row index to its logical row and segment.
// Rows past the end resolve to the last segment of the last line.
func (w *wrapCache) segmentAt(visRow int) (row, segIdx int) {
	if visRow < 0 {
		visRow = 0
	}
	for row = 0; row < w.buf.LineCount(); row++ {
		segs := w.lineSegments(row)
		if visRow < len(segs) {
			return row, visRow
		}
		visRow -= len(segs)
	}
	row = w.buf.LineCount() - 1
	return row, len(w.lineSegments(row)) - 1
}

// positionAt maps a visual row and column within it to a buffer position,
// clamping the column to the segment.
func (w *wrapCache) positionAt(visRow, col int) buffer.Position {
	row, segIdx := w.segmentAt(visRow)
	segs := w.lineSegments(row)
	seg := segs[segIdx]
	if col < 0 {
		col = 0
	}
	c := seg.Start + col
	max := seg.End
	if segIdx == len(segs)-1 {
		// End of line is addressable only on the final segment.
		max = w.buf.LineLen(row)
	}
	if c > max {
		c = max
	}
	return buffer.Position{Row: row, Col: c}
}
