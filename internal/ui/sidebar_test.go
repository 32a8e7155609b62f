package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testSidebar() *Sidebar {
	s := NewSidebar([]string{"Events", "Users", "Chats", "Statistics"})
	s.SetSize(22, 20)
	s.SetFocused(true)
	return s
}

func TestSidebar_Navigation(t *testing.T) {
	s := testSidebar()

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	up := tea.KeyPressMsg{Code: tea.KeyUp}

	s, _ = s.Update(down)
	s, _ = s.Update(down)
	if s.selectedIdx != 2 {
		t.Errorf("selectedIdx = %d, want 2", s.selectedIdx)
	}

	s, _ = s.Update(up)
	if s.selectedIdx != 1 {
		t.Errorf("selectedIdx = %d, want 1", s.selectedIdx)
	}
}

func TestSidebar_NavigationClamps(t *testing.T) {
	s := testSidebar()

	up := tea.KeyPressMsg{Code: tea.KeyUp}
	s, _ = s.Update(up)
	if s.selectedIdx != 0 {
		t.Errorf("selectedIdx = %d, want 0 at top", s.selectedIdx)
	}

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	for i := 0; i < 10; i++ {
		s, _ = s.Update(down)
	}
	if s.selectedIdx != 3 {
		t.Errorf("selectedIdx = %d, want 3 at bottom", s.selectedIdx)
	}
}

func TestSidebar_EnterEmitsSelection(t *testing.T) {
	s := testSidebar()

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	s, _ = s.Update(down)

	enter := tea.KeyPressMsg{Code: tea.KeyEnter}
	s, cmd := s.Update(enter)
	if cmd == nil {
		t.Fatal("Enter should emit a command")
	}

	msg := cmd()
	nav, ok := msg.(NavSelectedMsg)
	if !ok {
		t.Fatalf("Expected NavSelectedMsg, got %T", msg)
	}
	if nav.Index != 1 {
		t.Errorf("NavSelectedMsg.Index = %d, want 1", nav.Index)
	}
}

func TestSidebar_IgnoresKeysWhenUnfocused(t *testing.T) {
	s := testSidebar()
	s.SetFocused(false)

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	s, cmd := s.Update(down)
	if cmd != nil {
		t.Error("Unfocused sidebar should not emit commands")
	}
	if s.selectedIdx != 0 {
		t.Errorf("selectedIdx = %d, want 0 when unfocused", s.selectedIdx)
	}
}

func TestSidebar_SetActiveSyncsSelection(t *testing.T) {
	s := testSidebar()

	s.SetActive(2)
	if s.Active() != 2 {
		t.Errorf("Active() = %d, want 2", s.Active())
	}
	if s.selectedIdx != 2 {
		t.Errorf("selectedIdx = %d, want 2 after SetActive", s.selectedIdx)
	}

	// Out-of-range indices are ignored
	s.SetActive(10)
	if s.Active() != 2 {
		t.Errorf("Active() = %d, want 2 after out-of-range SetActive", s.Active())
	}
}

func TestSidebar_ViewShowsEntries(t *testing.T) {
	s := testSidebar()

	view := s.View()
	for _, entry := range []string{"Events", "Users", "Chats", "Statistics"} {
		if !strings.Contains(view, entry) {
			t.Errorf("Sidebar view missing entry %q", entry)
		}
	}
}
