package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/joinme/admin-tui/internal/keys"
)

// LoginSubmitMsg carries the credentials the operator entered.
type LoginSubmitMsg struct {
	Email    string
	Password string
}

// Login is the sign-in form shown before a session token exists.
type Login struct {
	form       *huh.Form
	email      string
	password   string
	width      int
	height     int
	submitting bool
	errMsg     string
}

// NewLogin creates the login form.
func NewLogin() *Login {
	l := &Login{}
	l.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@example.com").
				Value(&l.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password),
		),
	).WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(l.form)
	return l
}

// SetSize sets the area the login view is centered in.
func (l *Login) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetSubmitting toggles the in-flight state while the token request runs.
func (l *Login) SetSubmitting(submitting bool) {
	l.submitting = submitting
	if submitting {
		l.errMsg = ""
	}
}

// SetError shows a failure message under the form and re-enables input.
func (l *Login) SetError(msg string) {
	l.errMsg = msg
	l.submitting = false
}

// Reset clears the entered credentials.
func (l *Login) Reset() {
	l.password = ""
	l.errMsg = ""
	l.submitting = false
}

// Update handles form input. Enter submits when both fields are filled.
func (l *Login) Update(msg tea.Msg) tea.Cmd {
	if l.submitting {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Enter {
		email := strings.TrimSpace(l.email)
		if email == "" || l.password == "" {
			l.errMsg = "Email and password are required"
			return nil
		}
		l.submitting = true
		l.errMsg = ""
		password := l.password
		return func() tea.Msg {
			return LoginSubmitMsg{Email: email, Password: password}
		}
	}

	var cmd tea.Cmd
	l.form, cmd = huhFormUpdate(l.form, msg)
	return cmd
}

// View renders the form centered in the available area.
func (l *Login) View() string {
	title := ModalTitleStyle.Render("Sign in to JoinMe Admin")

	var status string
	switch {
	case l.submitting:
		status = StatusLoadingStyle.Render("Signing in...")
	case l.errMsg != "":
		status = StatusErrorStyle.Render(l.errMsg)
	default:
		status = ModalHelpStyle.Render("Enter to sign in")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, l.form.View(), "", status)
	box := ModalStyle.Render(content)

	return lipgloss.Place(
		l.width, l.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
