package app

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/joinme/admin-tui/internal/api"
	"github.com/joinme/admin-tui/internal/keys"
	"github.com/joinme/admin-tui/internal/logger"
	"github.com/joinme/admin-tui/internal/notification"
	"github.com/joinme/admin-tui/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case sessionCheckedMsg:
		if msg.hasToken {
			return m, m.enterDashboard()
		}
		m.setGate(GateLogin)
		return m, nil

	case ui.LoginSubmitMsg:
		m.login.SetSubmitting(true)
		return m, m.loginCmd(msg.Email, msg.Password)

	case loginResultMsg:
		if msg.err != nil {
			reason := api.ServerMessage(msg.err)
			if reason == "" {
				reason = "Login failed"
			}
			logger.Warn("Login failed: %v", msg.err)
			m.login.SetError(reason)
			return m, nil
		}
		if err := m.config.SetToken(msg.token); err != nil {
			logger.Warn("Persisting token failed: %v", err)
		}
		m.login.Reset()
		return m, m.enterDashboard()

	case sessionExpiredMsg:
		if m.gate != GateDashboard {
			return m, nil
		}
		m.logout()
		m.login.SetError("Session expired, sign in again")
		return m, nil

	case requestDeleteMsg:
		m.modal.Show(ui.NewConfirmDeleteState(msg.resource, msg.label, msg.id))
		return m, nil

	case deleteFailedMsg:
		m.modal.Show(ui.NewNoticeState("Delete failed", msg.message, true))
		if !m.windowFocused && m.config.GetNotificationsEnabled() {
			resource, reason := msg.resource, msg.message
			return m, func() tea.Msg {
				if err := notification.DeleteFailed(resource, reason); err != nil {
					logger.Debug("Notification failed: %v", err)
				}
				return nil
			}
		}
		return m, nil

	case deleteSucceededMsg:
		m.footer.SetFlash(capitalize(msg.resource)+" deleted", ui.FlashSuccess)
		return m, ui.FlashTick()

	case flashMsg:
		flashType := ui.FlashInfo
		if msg.isError {
			flashType = ui.FlashError
		}
		m.footer.SetFlash(msg.text, flashType)
		return m, ui.FlashTick()

	case ui.FlashTimeoutMsg:
		m.footer.ClearFlash()
		return m, nil

	case ui.NavSelectedMsg:
		return m, m.switchScreen(msg.Index)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Everything else is screen data (fetch results, delete results,
	// spinner ticks). Fan it out to every screen; each one drops messages
	// that are not its own or that belong to an abandoned visit.
	if m.gate == GateDashboard {
		var cmds []tea.Cmd
		for _, s := range m.screens {
			if cmd := s.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *Model) loginCmd(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		token, err := client.Login(context.Background(), email, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keys.CtrlC {
		return m, tea.Quit
	}

	switch m.gate {
	case GateChecking:
		return m, nil
	case GateLogin:
		return m, m.login.Update(msg)
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch msg.String() {
	case keys.CtrlL:
		m.logout()
		return m, nil
	case "q":
		return m, tea.Quit
	case keys.Tab, keys.ShiftTab:
		if m.focus == FocusSidebar {
			m.focus = FocusContent
		} else {
			m.focus = FocusSidebar
		}
		m.applyFocus()
		return m, nil
	}

	if m.focus == FocusSidebar {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}

	return m, m.activeScreen().Update(msg)
}

// handleModalKey resolves the open modal. Enter on the confirm modal with
// Delete selected is the only path that starts a DELETE call; every other
// way out is a no-op.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		state := m.modal.State
		m.modal.Hide()
		if confirm, ok := state.(*ui.ConfirmDeleteState); ok && confirm.Confirmed() {
			logger.Info("App: Delete confirmed for %s %d", confirm.Resource, confirm.ItemID)
			return m, m.activeScreen().DeleteConfirmed(confirm.ItemID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
