package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joinme/admin-tui/internal/api"
	"github.com/joinme/admin-tui/internal/clipboard"
	"github.com/joinme/admin-tui/internal/keys"
	"github.com/joinme/admin-tui/internal/logger"
	"github.com/joinme/admin-tui/internal/ui"
)

// Descriptor binds one entity type to its screen: how rows and details are
// projected, and which API calls back the screen.
type Descriptor[T any] struct {
	Resource  string // singular label, e.g. "event"
	Title     string
	Columns   []ui.Column
	Row       func(item T) []string
	Detail    func(item T) ui.Detail
	Fetch     func(ctx context.Context) ([]T, error)
	Delete    func(ctx context.Context, id int64) error
	ID        func(item T) int64
	Label     func(item T) string
	Empty     string
	LoadErr   string // fallback when the server sent no message
	DeleteErr string
}

// Resource is the list/detail controller shared by the events, users and
// chats screens. Each screen visit gets a generation number; results
// stamped with an older generation are dropped on arrival.
type Resource[T any] struct {
	desc   Descriptor[T]
	table  *ui.Table
	detail *ui.DetailPanel

	items    []T
	loading  bool
	err      string
	selected *T

	gen        int
	frame      int
	width      int
	height     int
	detailOpen bool
}

func newResource[T any](desc Descriptor[T]) *Resource[T] {
	r := &Resource[T]{
		desc:   desc,
		table:  ui.NewTable(desc.Columns, desc.Empty),
		detail: ui.NewDetailPanel(),
	}
	r.table.SetFocused(true)
	return r
}

// Title is the sidebar label.
func (r *Resource[T]) Title() string {
	return r.desc.Title
}

// Activate starts a fresh screen visit with one automatic load.
func (r *Resource[T]) Activate() tea.Cmd {
	r.gen++
	r.loading = true
	r.err = ""
	r.selected = nil
	r.detailOpen = false
	r.detail.Clear()
	r.table.GotoTop()
	r.layout()
	return tea.Batch(r.fetchCmd(r.gen), r.spinnerTick(r.gen))
}

// Deactivate abandons the current visit. Bumping the generation makes any
// in-flight response for it a no-op.
func (r *Resource[T]) Deactivate() {
	r.gen++
	r.loading = false
}

// SetSize sets the content area.
func (r *Resource[T]) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.layout()
}

// SetFocused routes focus to the table.
func (r *Resource[T]) SetFocused(focused bool) {
	r.table.SetFocused(focused)
}

// DetailOpen reports whether the detail panel is showing.
func (r *Resource[T]) DetailOpen() bool {
	return r.detailOpen
}

func (r *Resource[T]) layout() {
	bodyHeight := r.height - ui.TitleHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if r.detailOpen {
		detailWidth := r.width / ui.DetailWidthRatio
		r.table.SetSize(r.width-detailWidth-1, bodyHeight)
		r.detail.SetSize(detailWidth, bodyHeight)
	} else {
		r.table.SetSize(r.width, bodyHeight)
	}
}

func (r *Resource[T]) fetchCmd(gen int) tea.Cmd {
	fetch := r.desc.Fetch
	return func() tea.Msg {
		items, err := fetch(context.Background())
		return itemsMsg[T]{gen: gen, items: items, err: err}
	}
}

func (r *Resource[T]) spinnerTick(gen int) tea.Cmd {
	return tea.Tick(ui.SpinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{gen: gen}
	})
}

func (r *Resource[T]) reload() tea.Cmd {
	r.loading = true
	r.err = ""
	return tea.Batch(r.fetchCmd(r.gen), r.spinnerTick(r.gen))
}

// DeleteConfirmed runs the DELETE call for an id the operator confirmed.
func (r *Resource[T]) DeleteConfirmed(id int64) tea.Cmd {
	del := r.desc.Delete
	gen := r.gen
	return func() tea.Msg {
		err := del(context.Background(), id)
		return deleteDoneMsg[T]{gen: gen, id: id, err: err}
	}
}

// Update handles data and key messages for this screen.
func (r *Resource[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemsMsg[T]:
		return r.applyItems(msg)
	case deleteDoneMsg[T]:
		return r.applyDelete(msg)
	case spinnerTickMsg:
		if msg.gen != r.gen || !r.loading {
			return nil
		}
		r.frame++
		return r.spinnerTick(r.gen)
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return nil
}

func (r *Resource[T]) applyItems(msg itemsMsg[T]) tea.Cmd {
	if msg.gen != r.gen {
		logger.Debug("Dropping stale %s fetch result", r.desc.Resource)
		return nil
	}
	r.loading = false
	if msg.err != nil {
		if api.IsUnauthorized(msg.err) {
			return func() tea.Msg { return sessionExpiredMsg{} }
		}
		reason := api.ServerMessage(msg.err)
		if reason == "" {
			reason = r.desc.LoadErr
		}
		r.err = reason
		logger.Warn("Loading %s failed: %v", r.desc.Resource, msg.err)
		return nil
	}
	r.err = ""
	r.items = msg.items
	r.refreshRows()
	return nil
}

func (r *Resource[T]) applyDelete(msg deleteDoneMsg[T]) tea.Cmd {
	if msg.gen != r.gen {
		logger.Debug("Dropping stale %s delete result", r.desc.Resource)
		return nil
	}
	if msg.err != nil {
		if api.IsUnauthorized(msg.err) {
			return func() tea.Msg { return sessionExpiredMsg{} }
		}
		reason := api.ServerMessage(msg.err)
		if reason == "" {
			reason = r.desc.DeleteErr
		}
		logger.Warn("Deleting %s %d failed: %v", r.desc.Resource, msg.id, msg.err)
		resource := r.desc.Resource
		return func() tea.Msg { return deleteFailedMsg{resource: resource, message: reason} }
	}
	r.removeByID(msg.id)
	resource := r.desc.Resource
	return func() tea.Msg { return deleteSucceededMsg{resource: resource} }
}

// removeByID splices out at most one matching item and clears the
// selection only when it held that id.
func (r *Resource[T]) removeByID(id int64) {
	for i, item := range r.items {
		if r.desc.ID(item) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	if r.selected != nil && r.desc.ID(*r.selected) == id {
		r.selected = nil
		r.detailOpen = false
		r.detail.Clear()
		r.layout()
	}
	r.refreshRows()
}

func (r *Resource[T]) refreshRows() {
	rows := make([][]string, len(r.items))
	for i, item := range r.items {
		rows[i] = r.desc.Row(item)
	}
	r.table.SetRows(rows)
}

func (r *Resource[T]) cursorItem() (T, bool) {
	var zero T
	idx := r.table.Cursor()
	if idx < 0 || idx >= len(r.items) {
		return zero, false
	}
	return r.items[idx], true
}

func (r *Resource[T]) openDetail(item T) {
	selected := item
	r.selected = &selected
	r.detailOpen = true
	r.layout()
	r.detail.SetDetail(r.desc.Detail(item))
}

func (r *Resource[T]) closeDetail() {
	r.selected = nil
	r.detailOpen = false
	r.detail.Clear()
	r.layout()
}

func (r *Resource[T]) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if r.loading {
		return nil
	}

	switch msg.String() {
	case "r":
		return r.reload()
	}

	if r.err != "" {
		return nil
	}

	switch msg.String() {
	case keys.Up, "k":
		r.table.CursorUp()
		r.syncDetail()
	case keys.Down, "j":
		r.table.CursorDown()
		r.syncDetail()
	case keys.Home:
		r.table.GotoTop()
		r.syncDetail()
	case keys.PgUp, keys.PgDown:
		if r.detailOpen {
			return r.detail.Update(msg)
		}
	case keys.Enter:
		if item, ok := r.cursorItem(); ok {
			r.openDetail(item)
		}
	case keys.Escape:
		if r.detailOpen {
			r.closeDetail()
		}
	case "d":
		if item, ok := r.cursorItem(); ok {
			resource := r.desc.Resource
			label := r.desc.Label(item)
			id := r.desc.ID(item)
			return func() tea.Msg {
				return requestDeleteMsg{resource: resource, label: label, id: id}
			}
		}
	case "y":
		if item, ok := r.cursorItem(); ok {
			id := r.desc.ID(item)
			if err := clipboard.WriteText(fmt.Sprintf("%d", id)); err != nil {
				logger.Warn("Clipboard write failed: %v", err)
				return func() tea.Msg {
					return flashMsg{text: "Could not copy ID", isError: true}
				}
			}
			return func() tea.Msg {
				return flashMsg{text: fmt.Sprintf("ID %d copied", id)}
			}
		}
	}
	return nil
}

// syncDetail keeps the open detail panel on the cursor row.
func (r *Resource[T]) syncDetail() {
	if !r.detailOpen {
		return
	}
	if item, ok := r.cursorItem(); ok {
		selected := item
		r.selected = &selected
		r.detail.SetDetail(r.desc.Detail(item))
	}
}

// View renders the screen's tri-state body: spinner while loading, the
// error alone on failure, otherwise the table with the optional detail
// panel alongside.
func (r *Resource[T]) View() string {
	title := ui.PanelTitleStyle.Render(r.desc.Title)

	var body string
	switch {
	case r.loading:
		body = ui.Spinner(r.frame, "Loading "+strings.ToLower(r.desc.Title)+"...")
	case r.err != "":
		body = ui.StatusErrorStyle.Render(r.err)
	case r.detailOpen:
		body = lipgloss.JoinHorizontal(lipgloss.Top, r.table.View(), " ", r.detail.View())
	default:
		body = r.table.View()
	}

	return title + "\n" + body
}
