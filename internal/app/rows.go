package app

type rowKind int

const (
	rowCategory rowKind = iota
	rowFile
)

// row is one line of the file list: a category's "Select All" toggle or a
// file belonging to it.
type row struct {
	kind     rowKind
	category string
	path     string
}

// rebuildRows lays out the list for the current filter, keeping the cursor
// on the same row when it is still visible.
func (m *Model) rebuildRows() {
	var current row
	hadCurrent := m.cursor >= 0 && m.cursor < len(m.rows)
	if hadCurrent {
		current = m.rows[m.cursor]
	}

	rows := make([]row, 0, m.sel.Total()+len(m.sel.Categories()))
	for _, cat := range m.sel.Categories() {
		visible := m.sel.Visible(cat.Name, m.filterQuery)
		if len(visible) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowCategory, category: cat.Name})
		for _, path := range visible {
			rows = append(rows, row{kind: rowFile, category: cat.Name, path: path})
		}
	}
	m.rows = rows

	if hadCurrent {
		for i, r := range rows {
			if r == current {
				m.cursor = i
				m.clampCursor()
				return
			}
		}
	}
	m.clampCursor()
}

func (m *Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// listHeight is the number of rows that fit in the list pane.
func (m *Model) listHeight() int {
	return maxInt(m.computeLayout().listInnerHeight, 1)
}

func (m *Model) ensureCursorVisible() {
	height := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	if maxOffset := maxInt(len(m.rows)-height, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
