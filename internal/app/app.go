package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/joinme/admin-tui/internal/api"
	"github.com/joinme/admin-tui/internal/config"
	"github.com/joinme/admin-tui/internal/logger"
	"github.com/joinme/admin-tui/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusContent
)

// GateState is the session gate. The gate state alone decides which root
// view renders; there is no way to show a dashboard screen while
// unauthenticated.
type GateState int

const (
	GateChecking GateState = iota // startup, session store not read yet
	GateLogin                     // no valid session
	GateDashboard                 // operator session active
)

// String returns a human-readable name for the state
func (s GateState) String() string {
	switch s {
	case GateChecking:
		return "Checking"
	case GateLogin:
		return "Login"
	case GateDashboard:
		return "Dashboard"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	client  *api.Client
	version string // App version (injected at build time)

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	login   *ui.Login
	modal   *ui.Modal

	screens []screen
	active  int

	gate  GateState
	focus Focus

	windowFocused bool

	width  int
	height int
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	client := api.New(cfg.GetAPIBaseURL(), cfg)

	screens := []screen{
		newEventsScreen(client),
		newUsersScreen(client),
		newChatsScreen(client, cfg),
		newStatsScreen(client),
	}

	entries := make([]string, len(screens))
	for i, s := range screens {
		entries[i] = s.Title()
	}

	m := &Model{
		config:  cfg,
		client:  client,
		version: version,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		sidebar: ui.NewSidebar(entries),
		login:   ui.NewLogin(),
		modal:   ui.NewModal(),
		screens: screens,
		gate:    GateChecking,
		focus:   FocusContent,

		windowFocused: true,
	}

	m.header.SetServerURL(cfg.GetAPIBaseURL())

	return m
}

// setGate transitions the session gate with logging
func (m *Model) setGate(newState GateState) {
	if m.gate != newState {
		logger.Info("App: Gate transition %s -> %s", m.gate, newState)
		m.gate = newState
	}
}

// activeScreen returns the visible dashboard screen.
func (m *Model) activeScreen() screen {
	return m.screens[m.active]
}

// Init resolves the session gate: the store was loaded synchronously
// before the program started, so the first routing decision never sees an
// unchecked store.
func (m *Model) Init() tea.Cmd {
	hasToken := m.config.HasToken()
	return func() tea.Msg {
		return sessionCheckedMsg{hasToken: hasToken}
	}
}

// enterDashboard switches to the dashboard root and activates the first
// screen.
func (m *Model) enterDashboard() tea.Cmd {
	m.setGate(GateDashboard)
	m.header.SetLoggedIn(true)
	m.active = 0
	m.sidebar.SetActive(0)
	m.focus = FocusContent
	m.applyFocus()
	m.updateSizes()
	return m.activeScreen().Activate()
}

// logout ends the session and drops back to the login form.
func (m *Model) logout() {
	if err := m.config.ClearToken(); err != nil {
		logger.Warn("Clearing token failed: %v", err)
	}
	m.activeScreen().Deactivate()
	m.modal.Hide()
	m.footer.ClearFlash()
	m.login.Reset()
	m.header.SetLoggedIn(false)
	m.setGate(GateLogin)
}

// switchScreen deactivates the old section and activates the new one.
// The old visit's generation dies with it, so late responses are dropped.
func (m *Model) switchScreen(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.screens) {
		return nil
	}
	m.focus = FocusContent
	if idx == m.active {
		m.applyFocus()
		return nil
	}
	m.activeScreen().Deactivate()
	m.active = idx
	m.sidebar.SetActive(idx)
	m.applyFocus()
	m.updateSizes()
	return m.activeScreen().Activate()
}

func (m *Model) applyFocus() {
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	m.activeScreen().SetFocused(m.focus == FocusContent)
}

func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	contentHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.login.SetSize(m.width, contentHeight)
	m.sidebar.SetSize(ui.SidebarWidth, contentHeight)

	screenWidth := m.width - ui.SidebarWidth - ui.BorderSize
	if screenWidth < 1 {
		screenWidth = 1
	}
	for _, s := range m.screens {
		s.SetSize(screenWidth, contentHeight-ui.BorderSize)
	}
}
