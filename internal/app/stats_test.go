package app

import (
	"context"
	"strings"
	"testing"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/joinme/admin-tui/internal/api"
)

func testStatsScreen(stats *api.Statistics, err error) *StatsScreen {
	s := &StatsScreen{
		fetch: func(ctx context.Context) (*api.Statistics, error) {
			return stats, err
		},
		viewport: viewport.New(),
	}
	s.SetSize(80, 30)
	return s
}

func baseStats() *api.Statistics {
	return &api.Statistics{
		TotalUsers:      150,
		TotalEvents:     45,
		TotalChats:      30,
		TotalMessages:   1200,
		ActiveEvents:    12,
		PendingRequests: 5,
		EventsByCity: []api.CityCount{
			{City: "Moscow", Count: 20},
			{City: "", Count: 3},
		},
		RecentUsers: []api.DateCount{
			{Date: "2024-03-15T00:00:00Z", Count: 7},
		},
	}
}

func TestStats_SnapshotReplacedWholesale(t *testing.T) {
	s := testStatsScreen(baseStats(), nil)
	s.Activate()

	first := baseStats()
	s.Update(statsMsg{gen: s.gen, stats: first})

	second := baseStats()
	second.TotalUsers = 999
	second.EventsByCity = nil
	s.Update(statsMsg{gen: s.gen, stats: second})

	if s.stats.TotalUsers != 999 {
		t.Errorf("TotalUsers = %d, want 999", s.stats.TotalUsers)
	}
	if len(s.stats.EventsByCity) != 0 {
		t.Error("Old snapshot fields must not survive a refresh")
	}
}

func TestStats_RendersCountersAndSections(t *testing.T) {
	s := testStatsScreen(nil, nil)
	s.Activate()
	s.Update(statsMsg{gen: s.gen, stats: baseStats()})

	view := s.View()
	for _, want := range []string{"Total users", "150", "Events by city", "Moscow", "New users"} {
		if !strings.Contains(view, want) {
			t.Errorf("Statistics view missing %q", want)
		}
	}
	if !strings.Contains(view, "not set") {
		t.Error("Empty city should render as not set")
	}
}

func TestStats_AnalyticsAbsentIsNotAnError(t *testing.T) {
	s := testStatsScreen(nil, nil)
	s.Activate()
	s.Update(statsMsg{gen: s.gen, stats: baseStats()})

	if s.err != "" {
		t.Errorf("err = %q, want none without analytics", s.err)
	}
	if strings.Contains(s.View(), "App activity") {
		t.Error("Analytics section must not render when the block is absent")
	}
}

func TestStats_AnalyticsRenderedWhenPresent(t *testing.T) {
	stats := baseStats()
	stats.Analytics = &api.Analytics{
		Total: api.AnalyticsTotals{UserCreated: 10, EventCreated: 4, EventRequests: 22},
		Daily: []api.AnalyticsDay{
			{Date: "2024-03-15T00:00:00Z", UserCreated: 2, EventCreated: 1, EventRequests: 5},
		},
	}

	s := testStatsScreen(nil, nil)
	s.Activate()
	s.Update(statsMsg{gen: s.gen, stats: stats})

	view := s.View()
	for _, want := range []string{"App activity", "Daily activity", "15.03.2024"} {
		if !strings.Contains(view, want) {
			t.Errorf("Statistics view missing %q", want)
		}
	}
}

func TestStats_ErrorState(t *testing.T) {
	s := testStatsScreen(nil, nil)
	s.Activate()
	s.Update(statsMsg{gen: s.gen, err: &api.Error{Status: 500, Message: "stats backend down"}})

	if s.err != "stats backend down" {
		t.Errorf("err = %q, want the server message", s.err)
	}
	if !strings.Contains(s.View(), "stats backend down") {
		t.Error("Error state should render the message")
	}
}

func TestStats_StaleGenerationDiscarded(t *testing.T) {
	s := testStatsScreen(nil, nil)
	s.Activate()
	stale := s.gen
	s.Deactivate()
	s.Activate()

	s.Update(statsMsg{gen: stale, stats: baseStats()})

	if s.stats != nil {
		t.Error("Stale statistics result must not be applied")
	}
}

func TestStats_RefreshKey(t *testing.T) {
	s := testStatsScreen(baseStats(), nil)
	s.Activate()
	s.Update(statsMsg{gen: s.gen, stats: baseStats()})

	cmd := s.Update(tea.KeyPressMsg{Text: "r", Code: 'r'})
	if cmd == nil {
		t.Fatal("r should start a reload")
	}
	if !s.loading {
		t.Error("loading should be true during the reload")
	}
}
