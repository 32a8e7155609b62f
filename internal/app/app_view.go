package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joinme/admin-tui/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

// render produces the full frame as a string. Split out from View so
// tests can assert on the output.
func (m *Model) render() string {
	switch m.gate {
	case GateChecking:
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			ui.StatusLoadingStyle.Render("JoinMe Admin"),
		)
	case GateLogin:
		m.updateFooterContext()
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.header.View(),
			m.login.View(),
			m.footer.View(),
		)
	}

	m.updateFooterContext()

	header := m.header.View()
	footer := m.footer.View()

	sidebarView := m.sidebar.View()

	contentHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	screenWidth := m.width - ui.SidebarWidth
	panel := ui.PanelStyle
	if m.focus == FocusContent {
		panel = ui.PanelFocusedStyle
	}
	contentView := panel.Render(
		lipgloss.NewStyle().
			Width(screenWidth - ui.BorderSize).
			Height(contentHeight - ui.BorderSize).
			Render(m.activeScreen().View()),
	)

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarView,
		contentView,
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panels,
		footer,
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	return view
}

// updateFooterContext keeps the footer's conditional bindings in sync.
func (m *Model) updateFooterContext() {
	_, isStats := m.activeScreen().(*StatsScreen)
	detailOpen := false
	if ds, ok := m.activeScreen().(interface{ DetailOpen() bool }); ok {
		detailOpen = ds.DetailOpen()
	}
	m.footer.SetContext(
		m.focus == FocusSidebar,
		detailOpen,
		!isStats,
		m.modal.IsVisible(),
		m.gate == GateLogin,
	)
}
