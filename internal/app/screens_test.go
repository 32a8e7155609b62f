package app

import (
	"strings"
	"testing"

	"github.com/joinme/admin-tui/internal/api"
)

func testScreens(t *testing.T) (*Resource[api.Event], *Resource[api.User], *Resource[api.Chat]) {
	t.Helper()
	cfg := testConfig(t)
	client := api.New(cfg.GetAPIBaseURL(), cfg)
	return newEventsScreen(client), newUsersScreen(client), newChatsScreen(client, cfg)
}

func TestEventRow_AuthorFallbackAndParticipants(t *testing.T) {
	events, _, _ := testScreens(t)

	e := api.Event{
		ID:               5,
		Title:            "Go Meetup",
		Date:             "2024-03-15T00:00:00Z",
		Time:             "19:00",
		City:             "Moscow",
		ParticipantLimit: 20,
		AuthorID:         42,
		Participants:     []api.User{{ID: 1}, {ID: 2}},
	}

	row := events.desc.Row(e)
	if row[2] != "ID: 42" {
		t.Errorf("author cell = %q, want the id fallback", row[2])
	}
	if row[3] != "15.03.2024 19:00" {
		t.Errorf("date cell = %q, want day-first date with time", row[3])
	}
	if row[5] != "2 / 20" {
		t.Errorf("participants cell = %q, want %q", row[5], "2 / 20")
	}

	e.Author = &api.User{Name: "Alice", Email: "alice@example.com"}
	row = events.desc.Row(e)
	if row[2] != "Alice" {
		t.Errorf("author cell = %q, want the expanded name", row[2])
	}
}

func TestEventDetail_IncludesDescriptionAndParticipants(t *testing.T) {
	events, _, _ := testScreens(t)

	e := api.Event{
		Title:        "Go Meetup",
		Description:  "Monthly gathering",
		Author:       &api.User{Name: "Alice", Email: "alice@example.com"},
		Participants: []api.User{{Name: "Bob", Email: "bob@example.com"}},
	}

	d := events.desc.Detail(e)
	if d.Title != "Go Meetup" {
		t.Errorf("Title = %q", d.Title)
	}

	var authorField string
	for _, f := range d.Fields {
		if f.Label == "Author" {
			authorField = f.Value
		}
	}
	if authorField != "Alice (alice@example.com)" {
		t.Errorf("Author field = %q", authorField)
	}

	body := strings.Join(d.Body, "\n")
	if !strings.Contains(body, "Monthly gathering") {
		t.Error("Detail body should include the description")
	}
	if !strings.Contains(body, "Bob (bob@example.com)") {
		t.Error("Detail body should list participants")
	}
}

func TestUserRow_EmptyFieldsRenderDash(t *testing.T) {
	_, users, _ := testScreens(t)

	u := api.User{ID: 3, Name: "Carol", Email: "carol@example.com", CreatedAt: "2024-01-02T10:00:00Z"}

	row := users.desc.Row(u)
	if row[3] != "-" || row[4] != "-" {
		t.Errorf("phone/city cells = %q, %q, want dashes", row[3], row[4])
	}
	if row[5] != "02.01.2024" {
		t.Errorf("registered cell = %q, want day-first date", row[5])
	}
}

func TestUserDetail_FallbacksAndPremium(t *testing.T) {
	_, users, _ := testScreens(t)

	d := users.desc.Detail(api.User{Name: "Carol", Premium: true})

	fields := map[string]string{}
	for _, f := range d.Fields {
		fields[f.Label] = f.Value
	}
	if fields["Phone"] != "not set" || fields["City"] != "not set" {
		t.Error("Empty phone/city should render as not set")
	}
	if fields["Premium"] != "yes" {
		t.Errorf("Premium = %q, want yes", fields["Premium"])
	}
}

func TestChatRow_ShortenedIDAndEventFallback(t *testing.T) {
	_, _, chats := testScreens(t)

	c := api.Chat{
		ID:        123456789012,
		EventID:   7,
		Messages:  []api.Message{{ID: 1}, {ID: 2}, {ID: 3}},
		CreatedAt: "2024-02-20T00:00:00Z",
	}

	row := chats.desc.Row(c)
	if row[0] != "12345678..." {
		t.Errorf("id cell = %q, want the 8-char prefix", row[0])
	}
	if row[1] != "Event ID: 7" {
		t.Errorf("event cell = %q, want the id fallback", row[1])
	}
	if row[2] != "3" {
		t.Errorf("messages cell = %q, want 3", row[2])
	}

	c.Event = &api.Event{Title: "Go Meetup"}
	row = chats.desc.Row(c)
	if row[1] != "Go Meetup" {
		t.Errorf("event cell = %q, want the expanded title", row[1])
	}
}

func TestChatDetail_MessageFeed(t *testing.T) {
	_, _, chats := testScreens(t)

	c := api.Chat{
		ID: 9,
		Messages: []api.Message{
			{UserID: 4, Text: "first", CreatedAt: "2024-02-20T10:00:00Z"},
			{User: &api.User{Name: "Dave"}, Text: "second", CreatedAt: "2024-02-20T10:05:00Z"},
		},
	}

	d := chats.desc.Detail(c)
	body := strings.Join(d.Body, "\n")

	if !strings.Contains(body, "ID: 4") {
		t.Error("Unexpanded sender should fall back to the user id")
	}
	if !strings.Contains(body, "Dave") || !strings.Contains(body, "second") {
		t.Error("Expanded sender and text should render")
	}

	firstIdx := strings.Index(body, "first")
	secondIdx := strings.Index(body, "second")
	if firstIdx < 0 || secondIdx < 0 || firstIdx > secondIdx {
		t.Error("Messages must keep chronological order")
	}
}
