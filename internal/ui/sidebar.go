package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joinme/admin-tui/internal/keys"
)

// NavSelectedMsg is emitted when the operator activates a navigation entry.
type NavSelectedMsg struct {
	Index int
}

// Sidebar is the left navigation panel listing the dashboard sections.
type Sidebar struct {
	entries     []string
	selectedIdx int
	activeIdx   int // the section whose screen is currently shown
	width       int
	height      int
	focused     bool
}

// NewSidebar creates a sidebar over the given section labels.
func NewSidebar(entries []string) *Sidebar {
	return &Sidebar{entries: entries}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetActive marks the section whose screen is currently shown.
func (s *Sidebar) SetActive(idx int) {
	if idx >= 0 && idx < len(s.entries) {
		s.activeIdx = idx
		s.selectedIdx = idx
	}
}

// Active returns the index of the shown section.
func (s *Sidebar) Active() int {
	return s.activeIdx
}

// Update handles key messages while the sidebar is focused.
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
	case keys.Down, "j":
		if s.selectedIdx < len(s.entries)-1 {
			s.selectedIdx++
		}
	case keys.Enter:
		idx := s.selectedIdx
		return s, func() tea.Msg { return NavSelectedMsg{Index: idx} }
	}
	return s, nil
}

// View renders the sidebar
func (s *Sidebar) View() string {
	var b strings.Builder

	b.WriteString(PanelTitleStyle.Render("Sections"))
	b.WriteString("\n\n")

	for i, entry := range s.entries {
		style := SidebarItemStyle
		prefix := "  "
		switch {
		case s.focused && i == s.selectedIdx:
			style = SidebarSelectedStyle
			prefix = "> "
		case i == s.activeIdx:
			style = SidebarItemStyle.Foreground(ColorSecondary)
			prefix = "* "
		}
		b.WriteString(style.Render(prefix + entry))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SidebarHintStyle.Render("ctrl+l logout"))

	panel := PanelStyle
	if s.focused {
		panel = PanelFocusedStyle
	}

	content := lipgloss.NewStyle().
		Width(s.width - BorderSize).
		Height(s.height - BorderSize).
		Render(b.String())

	return panel.Render(content)
}
