package tui

import (
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// GutterMark is the per-line unsaved-change marker shown in the gutter.
type GutterMark int

const (
	GutterNone GutterMark = iota
	GutterAdd
	GutterChange
	GutterDelete
)

// diffStat aggregates unsaved changes for the status bar.
type diffStat struct {
	added    int
	modified int
	removed  int
}

func (d diffStat) dirty() bool { return d.added+d.modified+d.removed > 0 }

// unsavedDiff diffs the saved content against the buffer and returns gutter
// markers keyed by 0-indexed buffer row, plus the aggregate stat. Paired
// delete+insert runs count as modifications; a pure deletion marks the line
// before the gap.
func unsavedDiff(saved, current string) (map[int]GutterMark, diffStat) {
	var st diffStat
	if saved == current {
		return nil, st
	}

	edits := myers.ComputeEdits(span.URIFromPath("note"), saved, current)
	unified := gotextdiff.ToUnified("saved", "buffer", saved, edits)

	markers := make(map[int]GutterMark)
	for _, h := range unified.Hunks {
		newLine := h.ToLine // 1-based row in the buffer
		dels := 0
		var ins []int

		flush := func() {
			if dels == 0 && len(ins) == 0 {
				return
			}
			mod := dels
			if len(ins) < mod {
				mod = len(ins)
			}
			for i, row := range ins {
				if i < mod {
					markers[row-1] = GutterChange
				} else {
					markers[row-1] = GutterAdd
				}
			}
			st.modified += mod
			st.added += len(ins) - mod
			if extra := dels - mod; extra > 0 {
				st.removed += extra
				row := newLine - 2
				if row < 0 {
					row = 0
				}
				if _, taken := markers[row]; !taken {
					markers[row] = GutterDelete
				}
			}
			dels = 0
			ins = ins[:0]
		}

		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Equal:
				flush()
				newLine++
			case gotextdiff.Insert:
				ins = append(ins, newLine)
				newLine++
			case gotextdiff.Delete:
				dels++
			}
		}
		flush()
	}

	if len(markers) == 0 {
		return nil, st
	}
	return markers, st
}
