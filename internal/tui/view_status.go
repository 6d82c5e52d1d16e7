package tui

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// renderStatusBar writes the status separator and bar.
func (m Model) renderStatusBar(b *strings.Builder) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	// -- Left segments --
	var leftParts []string

	name := m.noteName()
	if m.stat.dirty() {
		name += "*"
	}
	namePart := m.styles.StatusText.Render(" " + name)
	if m.stat.dirty() {
		counts := strings.Join([]string{
			m.styles.StatusAdd.Render("+" + strconv.Itoa(m.stat.added)),
			m.styles.StatusMod.Render("~" + strconv.Itoa(m.stat.modified)),
			m.styles.StatusDel.Render("-" + strconv.Itoa(m.stat.removed)),
		}, m.styles.StatusText.Render(" "))
		namePart = strings.Join([]string{namePart, counts}, m.styles.StatusText.Render(" "))
	}
	leftParts = append(leftParts, namePart)

	if m.saveErr != nil {
		errText := m.saveErr.Error()
		if len(errText) > 40 {
			errText = errText[:40] + "…"
		}
		leftParts = append(leftParts, m.styles.Error.Render("✗ "+errText))
	}

	left := strings.Join(leftParts, m.styles.StatusText.Render("  "))

	// -- Right segments --
	var rightParts []string

	if m.ed.LineWrap() {
		rightParts = append(rightParts, m.styles.StatusText.Render("wrap"))
	} else {
		rightParts = append(rightParts, m.styles.StatusText.Render("nowrap"))
	}

	words := len(strings.Fields(m.ed.Text()))
	rightParts = append(rightParts, m.styles.StatusText.Render(strconv.Itoa(words)+" words"))

	row, col := m.ed.Cursor()
	pos := "Ln " + strconv.Itoa(row+1) + ", Col " + strconv.Itoa(col+1)
	rightParts = append(rightParts, m.styles.StatusText.Render(pos))

	pct := 100
	if n := m.ed.LineCount(); n > 1 {
		pct = (row * 100) / (n - 1)
	}
	rightParts = append(rightParts, m.styles.Accent.Render(strconv.Itoa(pct)+"%"))

	right := strings.Join(rightParts, m.styles.StatusText.Render("  "))

	// -- Compose: left + gap + right + trailing space --
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		gap = 0
	}
	b.WriteString(left)
	b.WriteString(m.styles.BgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(m.styles.BgFill.Render(" "))
}
