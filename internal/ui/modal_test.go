package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestNewModal(t *testing.T) {
	modal := NewModal()

	if modal == nil {
		t.Fatal("NewModal() returned nil")
	}

	if modal.IsVisible() {
		t.Error("New modal should not be visible")
	}

	if modal.State != nil {
		t.Error("New modal should have nil state")
	}
}

func TestModal_ShowHide(t *testing.T) {
	modal := NewModal()

	state := NewConfirmDeleteState("event", "Go Meetup", 7)

	modal.Show(state)

	if !modal.IsVisible() {
		t.Error("Modal should be visible after Show")
	}

	if modal.State == nil {
		t.Error("Modal state should not be nil after Show")
	}

	modal.Hide()

	if modal.IsVisible() {
		t.Error("Modal should not be visible after Hide")
	}

	if modal.State != nil {
		t.Error("Modal state should be nil after Hide")
	}
}

func TestModal_Error(t *testing.T) {
	modal := NewModal()

	if modal.GetError() != "" {
		t.Error("New modal should have no error")
	}

	modal.SetError("Something went wrong")

	if modal.GetError() != "Something went wrong" {
		t.Errorf("GetError() = %q, want %q", modal.GetError(), "Something went wrong")
	}

	modal.Show(NewNoticeState("Oops", "bad", true))

	if modal.GetError() != "" {
		t.Error("Show should clear the error")
	}
}

func TestConfirmDeleteState_DefaultsToCancel(t *testing.T) {
	state := NewConfirmDeleteState("user", "Alice", 3)

	if state.Confirmed() {
		t.Error("New confirm state should default to Cancel")
	}

	if state.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %d, want 0", state.SelectedIndex)
	}
}

func TestConfirmDeleteState_Navigation(t *testing.T) {
	state := NewConfirmDeleteState("event", "Go Meetup", 7)

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	up := tea.KeyPressMsg{Code: tea.KeyUp}

	state.Update(down)
	if !state.Confirmed() {
		t.Error("Down should move selection to Delete")
	}

	// Already at the last option, stays put
	state.Update(down)
	if state.SelectedIndex != 1 {
		t.Errorf("SelectedIndex = %d, want 1", state.SelectedIndex)
	}

	state.Update(up)
	if state.Confirmed() {
		t.Error("Up should move selection back to Cancel")
	}
}

func TestConfirmDeleteState_Render(t *testing.T) {
	state := NewConfirmDeleteState("event", "Go Meetup", 7)

	rendered := state.Render()

	if !strings.Contains(rendered, "Delete event?") {
		t.Error("Render should contain the title")
	}
	if !strings.Contains(rendered, "Go Meetup") {
		t.Error("Render should contain the item label")
	}
	if !strings.Contains(rendered, "Cancel") || !strings.Contains(rendered, "Delete") {
		t.Error("Render should contain both options")
	}
}

func TestNoticeState_Render(t *testing.T) {
	state := NewNoticeState("Delete failed", "Event has active participants", true)

	rendered := state.Render()

	if !strings.Contains(rendered, "Delete failed") {
		t.Error("Render should contain the heading")
	}
	if !strings.Contains(rendered, "Event has active participants") {
		t.Error("Render should contain the message verbatim")
	}
}

func TestModal_View(t *testing.T) {
	modal := NewModal()

	if modal.View(80, 24) != "" {
		t.Error("Hidden modal should render empty")
	}

	modal.Show(NewConfirmDeleteState("chat", "a1b2c3d4...", 9))

	view := modal.View(80, 24)
	if view == "" {
		t.Error("Visible modal should render content")
	}
	if !strings.Contains(view, "Delete chat?") {
		t.Error("Modal view should contain the state's title")
	}
}
