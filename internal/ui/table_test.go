package ui

import (
	"strings"
	"testing"
)

func testTable() *Table {
	t := NewTable([]Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 0},
		{Title: "City", Width: 12},
	}, "No events yet")
	t.SetSize(60, 10)
	t.SetFocused(true)
	return t
}

func testRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{string(rune('1' + i)), "Event " + string(rune('A'+i)), "Moscow"}
	}
	return rows
}

func TestTable_EmptyState(t *testing.T) {
	tbl := testTable()

	if tbl.Cursor() != -1 {
		t.Errorf("Cursor() = %d, want -1 for empty table", tbl.Cursor())
	}

	view := tbl.View()
	if !strings.Contains(view, "No events yet") {
		t.Error("Empty table should render the empty message")
	}
	if !strings.Contains(view, "ID") || !strings.Contains(view, "Title") {
		t.Error("Empty table should still render the header")
	}
}

func TestTable_CursorMovement(t *testing.T) {
	tbl := testTable()
	tbl.SetRows(testRows(5))

	if tbl.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 initially", tbl.Cursor())
	}

	tbl.CursorDown()
	tbl.CursorDown()
	if tbl.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", tbl.Cursor())
	}

	tbl.CursorUp()
	if tbl.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", tbl.Cursor())
	}
}

func TestTable_CursorClamps(t *testing.T) {
	tbl := testTable()
	tbl.SetRows(testRows(3))

	tbl.CursorUp()
	if tbl.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 at top", tbl.Cursor())
	}

	for i := 0; i < 10; i++ {
		tbl.CursorDown()
	}
	if tbl.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2 at bottom", tbl.Cursor())
	}
}

func TestTable_SetRowsKeepsCursorInRange(t *testing.T) {
	tbl := testTable()
	tbl.SetRows(testRows(5))

	for i := 0; i < 4; i++ {
		tbl.CursorDown()
	}
	if tbl.Cursor() != 4 {
		t.Fatalf("Cursor() = %d, want 4", tbl.Cursor())
	}

	// Refresh shrinks the list, cursor clamps to the new last row
	tbl.SetRows(testRows(2))
	if tbl.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1 after shrink", tbl.Cursor())
	}

	tbl.SetRows(nil)
	if tbl.Cursor() != -1 {
		t.Errorf("Cursor() = %d, want -1 after clearing rows", tbl.Cursor())
	}
}

func TestTable_Scrolling(t *testing.T) {
	tbl := testTable()
	tbl.SetSize(60, 4) // header + 3 visible rows
	tbl.SetRows(testRows(8))

	for i := 0; i < 5; i++ {
		tbl.CursorDown()
	}

	if tbl.Cursor() != 5 {
		t.Fatalf("Cursor() = %d, want 5", tbl.Cursor())
	}
	if tbl.offset != 3 {
		t.Errorf("offset = %d, want 3", tbl.offset)
	}

	tbl.GotoTop()
	if tbl.Cursor() != 0 || tbl.offset != 0 {
		t.Errorf("GotoTop: cursor = %d, offset = %d, want 0, 0", tbl.Cursor(), tbl.offset)
	}
}

func TestTable_ViewShowsRows(t *testing.T) {
	tbl := testTable()
	tbl.SetRows([][]string{
		{"1", "Go Meetup", "Moscow"},
		{"2", "Rust Evening", "Kazan"},
	})

	view := tbl.View()
	if !strings.Contains(view, "Go Meetup") || !strings.Contains(view, "Rust Evening") {
		t.Error("Table view should contain the row cells")
	}
}
