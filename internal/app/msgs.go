package app

import "github.com/joinme/admin-tui/internal/api"

// Messages that cross between the program loop and the screens. Fetch and
// delete results carry the generation of the screen visit that started
// them; a screen drops any result whose generation is not current.

// sessionCheckedMsg resolves the startup session check.
type sessionCheckedMsg struct {
	hasToken bool
}

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	token string
	err   error
}

// sessionExpiredMsg is emitted when any API call comes back 401. The
// dashboard drops to the login screen and the stored token is cleared.
type sessionExpiredMsg struct{}

// itemsMsg delivers a finished list fetch to its screen.
type itemsMsg[T any] struct {
	gen   int
	items []T
	err   error
}

// deleteDoneMsg delivers a finished delete call to its screen.
type deleteDoneMsg[T any] struct {
	gen int
	id  int64
	err error
}

// statsMsg delivers a finished statistics fetch.
type statsMsg struct {
	gen   int
	stats *api.Statistics
	err   error
}

// requestDeleteMsg asks the app layer to open the confirm modal for an
// item. Nothing is called and nothing mutates until the operator picks
// Delete in the modal.
type requestDeleteMsg struct {
	resource string
	label    string
	id       int64
}

// deleteFailedMsg raises the blocking notice with the server's reason.
type deleteFailedMsg struct {
	resource string
	message  string
}

// deleteSucceededMsg triggers the transient footer confirmation.
type deleteSucceededMsg struct {
	resource string
}

// flashMsg shows a transient footer message.
type flashMsg struct {
	text    string
	isError bool
}

// spinnerTickMsg advances a screen's loading spinner.
type spinnerTickMsg struct {
	gen int
}
