package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered over the given screen area.
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// ConfirmDeleteState - State for the Confirm Delete modal
// =============================================================================

type ConfirmDeleteState struct {
	Resource      string // singular resource label, e.g. "event"
	ItemLabel     string // human-readable identifier of the item
	ItemID        int64
	Options       []string
	SelectedIndex int
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string {
	return fmt.Sprintf("Delete %s?", s.Resource)
}

func (s *ConfirmDeleteState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	itemLabel := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.ItemLabel)

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render("This cannot be undone.")

	var optionList string
	for i, opt := range s.Options {
		style := SidebarItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+opt) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, itemLabel, message, optionList, help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Confirmed returns true if the user selected the Delete option.
func (s *ConfirmDeleteState) Confirmed() bool {
	return s.SelectedIndex == 1 // "Delete" is index 1
}

// NewConfirmDeleteState creates a new ConfirmDeleteState
func NewConfirmDeleteState(resource, itemLabel string, itemID int64) *ConfirmDeleteState {
	return &ConfirmDeleteState{
		Resource:      resource,
		ItemLabel:     itemLabel,
		ItemID:        itemID,
		Options:       []string{"Cancel", "Delete"},
		SelectedIndex: 0,
	}
}

// =============================================================================
// NoticeState - State for a blocking notice modal
// =============================================================================

// NoticeState shows a message the operator must acknowledge, such as a
// server-side delete rejection.
type NoticeState struct {
	Heading string
	Message string
	IsError bool
}

func (*NoticeState) modalState() {}

func (s *NoticeState) Title() string { return s.Heading }

func (s *NoticeState) Help() string {
	return "Enter or Esc to dismiss"
}

func (s *NoticeState) Render() string {
	title := ModalTitleStyle.Render(s.Heading)

	msgStyle := lipgloss.NewStyle().Foreground(ColorText)
	if s.IsError {
		msgStyle = msgStyle.Foreground(ColorError)
	}
	message := msgStyle.Width(ModalWidth - 6).Render(s.Message)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, message, help)
}

func (s *NoticeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewNoticeState creates a new NoticeState
func NewNoticeState(heading, message string, isError bool) *NoticeState {
	return &NoticeState{Heading: heading, Message: message, IsError: isError}
}
