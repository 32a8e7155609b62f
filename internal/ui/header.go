package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width     int
	serverURL string
	loggedIn  bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetServerURL sets the API server shown on the right
func (h *Header) SetServerURL(url string) {
	h.serverURL = url
}

// SetLoggedIn sets whether an operator session is active
func (h *Header) SetLoggedIn(loggedIn bool) {
	h.loggedIn = loggedIn
}

// View renders the header
func (h *Header) View() string {
	titleText := " JoinMe Admin"

	var rightText string
	if h.serverURL != "" {
		rightText = h.serverURL
		if !h.loggedIn {
			rightText += " (not logged in)"
		}
		rightText += " "
	}

	// Account for the style's horizontal padding
	paddingLen := h.width - lipgloss.Width(titleText) - lipgloss.Width(rightText) - 2
	if paddingLen < 0 {
		paddingLen = 0
	}

	content := titleText + strings.Repeat(" ", paddingLen) + rightText
	return HeaderStyle.Width(h.width).Render(content)
}
