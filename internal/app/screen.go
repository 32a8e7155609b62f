package app

import tea "charm.land/bubbletea/v2"

// screen is one dashboard section. The app forwards data messages to every
// screen (each screen ignores messages that are not its own) and key
// messages only to the visible one.
type screen interface {
	// Title is the section label shown in the sidebar.
	Title() string

	// Activate is called when the screen becomes visible. It returns the
	// command that starts the screen's automatic load.
	Activate() tea.Cmd

	// Deactivate is called when the operator leaves the screen. Any
	// in-flight result for the old visit must be discarded, never applied.
	Deactivate()

	// Update handles a message and returns any follow-up command.
	Update(msg tea.Msg) tea.Cmd

	// DeleteConfirmed starts the delete call after the operator confirmed
	// the modal. Screens without deletable rows return nil.
	DeleteConfirmed(id int64) tea.Cmd

	// SetSize sets the screen's content area.
	SetSize(width, height int)

	// SetFocused tells the screen whether it owns keyboard focus.
	SetFocused(focused bool)

	// View renders the screen content.
	View() string
}
