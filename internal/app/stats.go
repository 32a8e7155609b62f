package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/joinme/admin-tui/internal/api"
	"github.com/joinme/admin-tui/internal/format"
	"github.com/joinme/admin-tui/internal/keys"
	"github.com/joinme/admin-tui/internal/logger"
	"github.com/joinme/admin-tui/internal/ui"
)

// StatsScreen shows the platform-wide statistics projection. Every fetch
// replaces the whole snapshot; there is nothing to select or delete.
type StatsScreen struct {
	fetch func(ctx context.Context) (*api.Statistics, error)

	stats   *api.Statistics
	loading bool
	err     string

	gen      int
	frame    int
	width    int
	height   int
	viewport viewport.Model
}

func newStatsScreen(client *api.Client) *StatsScreen {
	return &StatsScreen{
		fetch:    client.GetStatistics,
		viewport: viewport.New(),
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) Activate() tea.Cmd {
	s.gen++
	s.loading = true
	s.err = ""
	return tea.Batch(s.fetchCmd(s.gen), s.spinnerTick(s.gen))
}

func (s *StatsScreen) Deactivate() {
	s.gen++
	s.loading = false
}

func (s *StatsScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height - ui.TitleHeight)
	s.render()
}

func (s *StatsScreen) SetFocused(bool) {}

func (s *StatsScreen) DeleteConfirmed(int64) tea.Cmd {
	return nil
}

func (s *StatsScreen) fetchCmd(gen int) tea.Cmd {
	fetch := s.fetch
	return func() tea.Msg {
		stats, err := fetch(context.Background())
		return statsMsg{gen: gen, stats: stats, err: err}
	}
}

func (s *StatsScreen) spinnerTick(gen int) tea.Cmd {
	return tea.Tick(ui.SpinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{gen: gen}
	})
}

func (s *StatsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statsMsg:
		if msg.gen != s.gen {
			logger.Debug("Dropping stale statistics result")
			return nil
		}
		s.loading = false
		if msg.err != nil {
			if api.IsUnauthorized(msg.err) {
				return func() tea.Msg { return sessionExpiredMsg{} }
			}
			reason := api.ServerMessage(msg.err)
			if reason == "" {
				reason = "Failed to load statistics"
			}
			s.err = reason
			logger.Warn("Loading statistics failed: %v", msg.err)
			return nil
		}
		s.err = ""
		s.stats = msg.stats
		s.render()
		s.viewport.GotoTop()
		return nil
	case spinnerTickMsg:
		if msg.gen != s.gen || !s.loading {
			return nil
		}
		s.frame++
		return s.spinnerTick(s.gen)
	case tea.KeyPressMsg:
		if s.loading {
			return nil
		}
		switch msg.String() {
		case "r":
			s.loading = true
			s.err = ""
			return tea.Batch(s.fetchCmd(s.gen), s.spinnerTick(s.gen))
		case keys.PgUp, keys.PgDown, keys.Up, keys.Down, "k", "j":
			if s.err == "" {
				var cmd tea.Cmd
				s.viewport, cmd = s.viewport.Update(msg)
				return cmd
			}
		}
	}
	return nil
}

func (s *StatsScreen) render() {
	if s.stats == nil {
		s.viewport.SetContent("")
		return
	}
	stats := s.stats

	var sb strings.Builder

	counter := func(label string, value int) {
		sb.WriteString(ui.DetailLabelStyle.Render(format.Pad(label, 20)))
		sb.WriteString(fmt.Sprintf("  %d\n", value))
	}

	counter("Total users", stats.TotalUsers)
	counter("Total events", stats.TotalEvents)
	counter("Total chats", stats.TotalChats)
	counter("Total messages", stats.TotalMessages)
	counter("Active events", stats.ActiveEvents)
	counter("Pending requests", stats.PendingRequests)

	if a := stats.Analytics; a != nil {
		sb.WriteString("\n")
		sb.WriteString(ui.DetailTitleStyle.Render("App activity"))
		sb.WriteString("\n")
		counter("New users", a.Total.UserCreated)
		counter("Created events", a.Total.EventCreated)
		counter("Event requests", a.Total.EventRequests)

		if len(a.Daily) > 0 {
			sb.WriteString("\n")
			sb.WriteString(ui.DetailTitleStyle.Render("Daily activity (last 30 days)"))
			sb.WriteString("\n")
			sb.WriteString(ui.TableHeaderStyle.Render(
				format.Pad("Date", 12) + " " +
					format.Pad("Users", 8) + " " +
					format.Pad("Events", 8) + " " +
					format.Pad("Requests", 8)))
			sb.WriteString("\n")
			for _, day := range a.Daily {
				sb.WriteString(format.Pad(format.Date(day.Date), 12))
				sb.WriteString(fmt.Sprintf(" %-8d %-8d %-8d\n",
					day.UserCreated, day.EventCreated, day.EventRequests))
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(ui.DetailTitleStyle.Render("Events by city"))
	sb.WriteString("\n")
	if len(stats.EventsByCity) == 0 {
		sb.WriteString(ui.TableEmptyStyle.Render("No data"))
		sb.WriteString("\n")
	} else {
		for _, c := range stats.EventsByCity {
			city := c.City
			if city == "" {
				city = "not set"
			}
			sb.WriteString(format.Pad(city, 20))
			sb.WriteString(fmt.Sprintf("  %d\n", c.Count))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(ui.DetailTitleStyle.Render("New users (last 7 days)"))
	sb.WriteString("\n")
	if len(stats.RecentUsers) == 0 {
		sb.WriteString(ui.TableEmptyStyle.Render("No data"))
		sb.WriteString("\n")
	} else {
		for _, d := range stats.RecentUsers {
			sb.WriteString(format.Pad(format.Date(d.Date), 12))
			sb.WriteString(fmt.Sprintf("  %d users\n", d.Count))
		}
	}

	s.viewport.SetContent(sb.String())
}

func (s *StatsScreen) View() string {
	title := ui.PanelTitleStyle.Render("Statistics")

	var body string
	switch {
	case s.loading:
		body = ui.Spinner(s.frame, "Loading statistics...")
	case s.err != "":
		body = ui.StatusErrorStyle.Render(s.err)
	default:
		body = s.viewport.View()
	}

	return title + "\n" + body
}
