package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a transient footer message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashError
)

// FlashTimeoutMsg is sent when a flash message should be dismissed
type FlashTimeoutMsg struct{}

// FlashTick returns a command that dismisses the flash after a delay
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDurationSeconds*time.Second, func(time.Time) tea.Msg {
		return FlashTimeoutMsg{}
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width          int
	sidebarFocused bool // Whether the navigation sidebar has focus
	detailOpen     bool // Whether a detail panel is showing
	listScreen     bool // Whether the active screen is list-backed
	modalOpen      bool // Whether a modal is capturing input
	loginScreen    bool // Whether the login form is showing

	flash     string
	flashType FlashType
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{listScreen: true}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sidebarFocused, detailOpen, listScreen, modalOpen, loginScreen bool) {
	f.sidebarFocused = sidebarFocused
	f.detailOpen = detailOpen
	f.listScreen = listScreen
	f.modalOpen = modalOpen
	f.loginScreen = loginScreen
}

// SetFlash shows a transient message instead of the keybindings
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flash = text
	f.flashType = flashType
}

// ClearFlash removes the transient message
func (f *Footer) ClearFlash() {
	f.flash = ""
}

// bindings returns the keybindings for the current context
func (f *Footer) bindings() []KeyBinding {
	switch {
	case f.modalOpen:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		}
	case f.loginScreen:
		return []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "log in"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case f.sidebarFocused:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter/tab", Desc: "open"},
			{Key: "ctrl+l", Desc: "logout"},
			{Key: "q", Desc: "quit"},
		}
	case !f.listScreen:
		return []KeyBinding{
			{Key: "r", Desc: "refresh"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "tab", Desc: "sidebar"},
			{Key: "q", Desc: "quit"},
		}
	case f.detailOpen:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "rows"},
			{Key: "esc", Desc: "close detail"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "d", Desc: "delete"},
			{Key: "y", Desc: "copy id"},
			{Key: "r", Desc: "refresh"},
		}
	default:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "rows"},
			{Key: "enter", Desc: "details"},
			{Key: "d", Desc: "delete"},
			{Key: "y", Desc: "copy id"},
			{Key: "r", Desc: "refresh"},
			{Key: "tab", Desc: "sidebar"},
			{Key: "q", Desc: "quit"},
		}
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flash != "" {
		style := FooterDescStyle
		switch f.flashType {
		case FlashSuccess:
			style = StatusSuccessStyle
		case FlashError:
			style = StatusErrorStyle
		}
		return FooterStyle.Width(f.width).Render(style.Render(f.flash))
	}

	var parts []string
	for _, b := range f.bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := strings.Join(parts, sep)
	return FooterStyle.Width(f.width).Render(content)
}
