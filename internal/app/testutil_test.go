package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/joinme/admin-tui/internal/config"
	"github.com/joinme/admin-tui/internal/keys"
)

// testConfig creates a config backed by a temp file so tests never touch
// the real home directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	return cfg
}

// testModel creates a test Model with the given config.
func testModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	m := New(cfg, "0.0.0-test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// testModelWithServer points the model's API client at an httptest server.
func testModelWithServer(t *testing.T, cfg *config.Config, handler http.Handler) *Model {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	if err := cfg.SetAPIBaseURL(server.URL); err != nil {
		t.Fatalf("SetAPIBaseURL failed: %v", err)
	}
	return testModel(t, cfg)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) (*Model, tea.Cmd) {
	result, cmd := m.Update(keyPress(key))
	return result.(*Model), cmd
}

// startDashboard drives the model through the session gate into the
// dashboard without executing the initial fetch.
func startDashboard(t *testing.T, m *Model) {
	t.Helper()
	if err := m.config.SetToken("test-token"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	m.Update(sessionCheckedMsg{hasToken: true})
	if m.gate != GateDashboard {
		t.Fatalf("gate = %v, want Dashboard", m.gate)
	}
}
