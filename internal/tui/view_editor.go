package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/quill/internal/editor"
)

// visualRow is one rendered terminal row of the text area.
type visualRow struct {
	bufRow int            // buffer line index
	seg    editor.Segment // rune span of the line shown on this row
	sub    int            // 0 = first wrap segment of its line
}

// visibleRows collects the visual rows starting at the engine scroll offset.
func (m Model) visibleRows(height int) []visualRow {
	rows := make([]visualRow, 0, height)
	skip := m.ed.ScrollTop()
	for bufRow := 0; bufRow < m.ed.LineCount() && len(rows) < height; bufRow++ {
		segs := m.ed.WrapSegments(bufRow)
		if skip >= len(segs) {
			skip -= len(segs)
			continue
		}
		for sub := skip; sub < len(segs) && len(rows) < height; sub++ {
			rows = append(rows, visualRow{bufRow: bufRow, seg: segs[sub], sub: sub})
		}
		skip = 0
	}
	return rows
}

// renderEditorRows writes the gutter and text rows into b.
func (m Model) renderEditorRows(b *strings.Builder) {
	gutter := m.gutterWidth()
	tw := m.width - gutter
	if tw < 1 {
		tw = 1
	}
	height := m.height - statusRows
	if height < 1 {
		height = 1
	}

	rows := m.visibleRows(height)
	hl := m.highlighted()
	wrapOn := m.ed.LineWrap()
	hScroll := m.ed.HScroll()
	top := m.ed.ScrollTop()

	curVisRow, curVisCol := m.ed.CursorVisual()
	selStart, selEnd, hasSel := m.ed.Selection()

	bg := m.styles.BgFill

	for vi := 0; vi < height; vi++ {
		if vi > 0 {
			b.WriteByte('\n')
		}
		if vi >= len(rows) {
			b.WriteString(bg.Render(strings.Repeat(" ", m.width)))
			continue
		}
		vr := rows[vi]

		// -- Gutter: line number on the first sub-row, blank on continuations
		if vr.sub == 0 {
			num := fmt.Sprintf("%*d", gutter-2, vr.bufRow+1)
			b.WriteString(m.styles.LineNum.Render(num))
			b.WriteString(m.renderGutterMark(vr.bufRow))
			b.WriteString(bg.Render(" "))
		} else {
			b.WriteString(bg.Render(strings.Repeat(" ", gutter)))
		}

		line, err := m.ed.Line(vr.bufRow)
		if err != nil {
			b.WriteString(bg.Render(strings.Repeat(" ", tw)))
			continue
		}
		lineRunes := []rune(line)
		lineLen := len(lineRunes)

		var fullHL string
		if vr.bufRow < len(hl) {
			fullHL = hl[vr.bufRow]
		}

		// The rune window of the line shown on this row.
		from, to := vr.seg.Start, vr.seg.End
		if !wrapOn {
			from = hScroll
			to = from + tw
			if to > lineLen {
				to = lineLen
			}
			if from > to {
				from = to
			}
		}

		// Selection intersection with [from, to), in window-local runes.
		rowSelStart, rowSelEnd := 0, 0
		rowHasSel := false
		if hasSel && vr.bufRow >= selStart.Row && vr.bufRow <= selEnd.Row {
			absStart := from
			if vr.bufRow == selStart.Row {
				absStart = selStart.Col
			}
			absEnd := to
			if vr.bufRow == selEnd.Row {
				absEnd = selEnd.Col
			}
			localStart := absStart - from
			localEnd := absEnd - from
			if localStart < 0 {
				localStart = 0
			}
			if localEnd > to-from {
				localEnd = to - from
			}
			if localStart < localEnd {
				rowHasSel = true
				rowSelStart = localStart
				rowSelEnd = localEnd
			}
		}

		// Cursor cell, if it falls on this row.
		cursorCol := -1
		if top+vi == curVisRow {
			cursorCol = curVisCol - (from - vr.seg.Start)
			if cursorCol < 0 || cursorCol > to-from {
				cursorCol = -1
			}
		}

		var rendered string
		switch {
		case rowHasSel:
			rendered = m.renderSelectedWindow(lineRunes, fullHL, from, to,
				rowSelStart, rowSelEnd, cursorCol)
		case cursorCol >= 0:
			rendered = m.renderCursorWindow(lineRunes, fullHL, from, to, cursorCol)
		default:
			rendered = m.cutWindow(lineRunes, fullHL, from, to)
		}

		// Horizontal overflow indicators replace the edge cells.
		if !wrapOn {
			if from > 0 && lineLen > 0 {
				rendered = m.styles.Overflow.Render("«") + ansi.TruncateLeft(rendered, 1, "")
			}
			if lineLen > from+tw {
				rendered = ansi.Truncate(rendered, tw-1, "") + m.styles.Overflow.Render("»")
			}
		}

		rw := lipgloss.Width(rendered)
		if rw > tw {
			rendered = ansi.Truncate(rendered, tw, "")
			rw = tw
		}
		b.WriteString(rendered)
		if rw < tw {
			b.WriteString(bg.Render(strings.Repeat(" ", tw-rw)))
		}
	}
}

// renderGutterMark renders the one-cell unsaved-change marker for a line.
func (m Model) renderGutterMark(bufRow int) string {
	switch m.markers[bufRow] {
	case GutterAdd:
		return m.styles.StatusAdd.Render("+")
	case GutterChange:
		return m.styles.StatusMod.Render("~")
	case GutterDelete:
		return m.styles.StatusDel.Render("-")
	}
	return m.styles.BgFill.Render(" ")
}

// cutWindow extracts the [from, to) rune window of a line, keeping syntax
// coloring when a highlighted version exists.
func (m Model) cutWindow(lineRunes []rune, fullHL string, from, to int) string {
	if from >= to {
		return ""
	}
	if fullHL != "" {
		return ansi.Cut(fullHL, from, to)
	}
	return m.styles.Text.Render(string(lineRunes[from:to]))
}

// renderCursorWindow renders the window with the cursor at local rune offset
// localCol. The cursor may sit one past the end of the line text.
func (m Model) renderCursorWindow(lineRunes []rune, fullHL string, from, to, localCol int) string {
	cursorChar := " "
	if from+localCol < len(lineRunes) && localCol < to-from {
		cursorChar = string(lineRunes[from+localCol])
	}

	before := m.cutWindow(lineRunes, fullHL, from, from+localCol)
	after := ""
	if from+localCol+1 <= to {
		after = m.cutWindow(lineRunes, fullHL, from+localCol+1, to)
	}

	m.cur.SetChar(cursorChar)
	m.cur.TextStyle = m.styles.Text
	return before + m.cur.View() + after
}

// renderSelectedWindow renders the window with a selection span (and possibly
// the cursor). selStart/selEnd and cursorCol are window-local rune offsets;
// cursorCol is -1 when the cursor is elsewhere.
func (m Model) renderSelectedWindow(
	lineRunes []rune, fullHL string, from, to, selStart, selEnd, cursorCol int,
) string {
	selSty := m.styles.Selection

	renderSel := func(a, z int) string {
		if a >= z {
			return ""
		}
		if fullHL != "" {
			return selSty.Render(ansi.Strip(ansi.Cut(fullHL, from+a, from+z)))
		}
		return selSty.Render(string(lineRunes[from+a : from+z]))
	}
	renderNormal := func(a, z int) string {
		return m.cutWindow(lineRunes, fullHL, from+a, from+z)
	}

	n := to - from
	if cursorCol < 0 {
		return renderNormal(0, selStart) + renderSel(selStart, selEnd) + renderNormal(selEnd, n)
	}

	cursorChar := " "
	if from+cursorCol < len(lineRunes) && cursorCol < n {
		cursorChar = string(lineRunes[from+cursorCol])
	}
	m.cur.SetChar(cursorChar)
	if cursorCol >= selStart && cursorCol < selEnd {
		m.cur.TextStyle = selSty
	} else {
		m.cur.TextStyle = m.styles.Text
	}
	cv := m.cur.View()

	var sb strings.Builder
	switch {
	case cursorCol < selStart:
		sb.WriteString(renderNormal(0, cursorCol))
		sb.WriteString(cv)
		sb.WriteString(renderNormal(cursorCol+1, selStart))
		sb.WriteString(renderSel(selStart, selEnd))
		sb.WriteString(renderNormal(selEnd, n))
	case cursorCol >= selEnd:
		sb.WriteString(renderNormal(0, selStart))
		sb.WriteString(renderSel(selStart, selEnd))
		sb.WriteString(renderNormal(selEnd, cursorCol))
		sb.WriteString(cv)
		sb.WriteString(renderNormal(cursorCol+1, n))
	default:
		sb.WriteString(renderNormal(0, selStart))
		sb.WriteString(renderSel(selStart, cursorCol))
		sb.WriteString(cv)
		sb.WriteString(renderSel(cursorCol+1, selEnd))
		sb.WriteString(renderNormal(selEnd, n))
	}
	return sb.String()
}
