package ui

import (
	"strings"

	"github.com/joinme/admin-tui/internal/format"
)

// Column describes one table column. A Width of 0 marks the flex column
// that absorbs the remaining horizontal space; at most one column should
// be flex.
type Column struct {
	Title string
	Width int
}

// Table renders rows of pre-formatted cells with a movable cursor.
// It holds view state only; the owning screen keeps the data.
type Table struct {
	cols    []Column
	rows    [][]string
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
	empty   string
}

// NewTable creates a table with the given columns.
func NewTable(cols []Column, emptyMessage string) *Table {
	return &Table{cols: cols, empty: emptyMessage}
}

// SetSize sets the table's render area (rows area excludes the header line).
func (t *Table) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.clamp()
}

// SetFocused sets the focus state
func (t *Table) SetFocused(focused bool) {
	t.focused = focused
}

// SetRows replaces the table contents. The cursor is clamped but
// otherwise kept, so a refresh doesn't jump the operator's position.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	t.clamp()
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Cursor returns the index of the row the cursor is on, or -1 when empty.
func (t *Table) Cursor() int {
	if len(t.rows) == 0 {
		return -1
	}
	return t.cursor
}

// CursorUp moves the cursor one row up.
func (t *Table) CursorUp() {
	if t.cursor > 0 {
		t.cursor--
	}
	t.scrollIntoView()
}

// CursorDown moves the cursor one row down.
func (t *Table) CursorDown() {
	if t.cursor < len(t.rows)-1 {
		t.cursor++
	}
	t.scrollIntoView()
}

// GotoTop moves the cursor to the first row.
func (t *Table) GotoTop() {
	t.cursor = 0
	t.offset = 0
}

func (t *Table) clamp() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	t.scrollIntoView()
}

// visibleRows is the number of data rows that fit under the header.
func (t *Table) visibleRows() int {
	v := t.height - 1
	if v < 1 {
		v = 1
	}
	return v
}

func (t *Table) scrollIntoView() {
	visible := t.visibleRows()
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+visible {
		t.offset = t.cursor - visible + 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// colWidths resolves the flex column against the current width.
func (t *Table) colWidths() []int {
	widths := make([]int, len(t.cols))
	fixed := 0
	flexIdx := -1
	for i, c := range t.cols {
		widths[i] = c.Width
		if c.Width == 0 {
			flexIdx = i
		} else {
			fixed += c.Width + 1 // +1 separator
		}
	}
	if flexIdx >= 0 {
		remaining := t.width - fixed - 1
		if remaining < 4 {
			remaining = 4
		}
		widths[flexIdx] = remaining
	}
	return widths
}

func (t *Table) renderLine(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = format.Pad(cell, w)
	}
	return strings.Join(parts, " ")
}

// View renders the table
func (t *Table) View() string {
	var b strings.Builder
	widths := t.colWidths()

	headers := make([]string, len(t.cols))
	for i, c := range t.cols {
		headers[i] = c.Title
	}
	b.WriteString(TableHeaderStyle.Render(t.renderLine(headers, widths)))
	b.WriteString("\n")

	if len(t.rows) == 0 {
		b.WriteString(TableEmptyStyle.Render(t.empty))
		return b.String()
	}

	visible := t.visibleRows()
	end := t.offset + visible
	if end > len(t.rows) {
		end = len(t.rows)
	}

	for i := t.offset; i < end; i++ {
		style := TableRowStyle
		if i == t.cursor && t.focused {
			style = TableCursorStyle
		}
		b.WriteString(style.Render(t.renderLine(t.rows[i], widths)))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
