package app

import (
	"fmt"

	"github.com/joinme/admin-tui/internal/api"
	"github.com/joinme/admin-tui/internal/config"
	"github.com/joinme/admin-tui/internal/format"
	"github.com/joinme/admin-tui/internal/ui"
)

// Descriptors for the three list screens. Column sets and detail fields
// mirror the admin dashboard's tables; relation fields fall back to the
// raw id when the backend did not expand them.

func eventAuthorName(e api.Event) string {
	if e.Author != nil {
		return e.Author.Name
	}
	return fmt.Sprintf("ID: %d", e.AuthorID)
}

func eventAuthorFull(e api.Event) string {
	if e.Author != nil {
		return fmt.Sprintf("%s (%s)", e.Author.Name, e.Author.Email)
	}
	return fmt.Sprintf("ID: %d", e.AuthorID)
}

func orNotSet(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func newEventsScreen(client *api.Client) *Resource[api.Event] {
	return newResource(Descriptor[api.Event]{
		Resource: "event",
		Title:    "Events",
		Columns: []ui.Column{
			{Title: "ID", Width: 6},
			{Title: "Title", Width: 0},
			{Title: "Author", Width: 16},
			{Title: "Date", Width: 16},
			{Title: "City", Width: 12},
			{Title: "Participants", Width: 12},
		},
		Row: func(e api.Event) []string {
			return []string{
				fmt.Sprintf("%d", e.ID),
				e.Title,
				eventAuthorName(e),
				format.Date(e.Date) + " " + e.Time,
				e.City,
				fmt.Sprintf("%d / %d", len(e.Participants), e.ParticipantLimit),
			}
		},
		Detail: func(e api.Event) ui.Detail {
			fields := []ui.Field{
				{Label: "Date", Value: format.Date(e.Date)},
				{Label: "Time", Value: e.Time},
				{Label: "Location", Value: e.Location},
				{Label: "City", Value: e.City},
				{Label: "Limit", Value: fmt.Sprintf("%d", e.ParticipantLimit)},
				{Label: "Author", Value: eventAuthorFull(e)},
				{Label: "Participants", Value: fmt.Sprintf("%d", len(e.Participants))},
				{Label: "Created", Value: format.DateTime(e.CreatedAt)},
			}
			var body []string
			if e.Description != "" {
				body = append(body, e.Description)
			}
			if len(e.Participants) > 0 {
				if len(body) > 0 {
					body = append(body, "")
				}
				body = append(body, "Participants:")
				for _, p := range e.Participants {
					body = append(body, fmt.Sprintf("  %s (%s)", p.Name, p.Email))
				}
			}
			return ui.Detail{Title: e.Title, Fields: fields, Body: body}
		},
		Fetch:     client.ListEvents,
		Delete:    client.DeleteEvent,
		ID:        func(e api.Event) int64 { return e.ID },
		Label:     func(e api.Event) string { return e.Title },
		Empty:     "No events",
		LoadErr:   "Failed to load events",
		DeleteErr: "Failed to delete event",
	})
}

func newUsersScreen(client *api.Client) *Resource[api.User] {
	return newResource(Descriptor[api.User]{
		Resource: "user",
		Title:    "Users",
		Columns: []ui.Column{
			{Title: "ID", Width: 6},
			{Title: "Name", Width: 0},
			{Title: "Email", Width: 26},
			{Title: "Phone", Width: 14},
			{Title: "City", Width: 12},
			{Title: "Registered", Width: 10},
		},
		Row: func(u api.User) []string {
			phone := u.Phone
			if phone == "" {
				phone = "-"
			}
			city := u.City
			if city == "" {
				city = "-"
			}
			return []string{
				fmt.Sprintf("%d", u.ID),
				u.Name,
				u.Email,
				phone,
				city,
				format.Date(u.CreatedAt),
			}
		},
		Detail: func(u api.User) ui.Detail {
			return ui.Detail{
				Title: u.Name,
				Fields: []ui.Field{
					{Label: "ID", Value: fmt.Sprintf("%d", u.ID)},
					{Label: "Email", Value: u.Email},
					{Label: "Phone", Value: orNotSet(u.Phone)},
					{Label: "City", Value: orNotSet(u.City)},
					{Label: "Premium", Value: yesNo(u.Premium)},
					{Label: "Created", Value: format.DateTime(u.CreatedAt)},
					{Label: "Updated", Value: format.DateTime(u.UpdatedAt)},
				},
			}
		},
		Fetch:     client.ListUsers,
		Delete:    client.DeleteUser,
		ID:        func(u api.User) int64 { return u.ID },
		Label:     func(u api.User) string { return u.Name },
		Empty:     "No users",
		LoadErr:   "Failed to load users",
		DeleteErr: "Failed to delete user",
	})
}

func chatEventTitle(c api.Chat) string {
	if c.Event != nil {
		return c.Event.Title
	}
	return fmt.Sprintf("Event ID: %d", c.EventID)
}

func newChatsScreen(client *api.Client, cfg *config.Config) *Resource[api.Chat] {
	shortID := func(c api.Chat) string {
		return format.ShortenID(c.ID, cfg.GetIDPrefixLength())
	}
	return newResource(Descriptor[api.Chat]{
		Resource: "chat",
		Title:    "Chats",
		Columns: []ui.Column{
			{Title: "ID", Width: 12},
			{Title: "Event", Width: 0},
			{Title: "Messages", Width: 8},
			{Title: "Created", Width: 10},
		},
		Row: func(c api.Chat) []string {
			return []string{
				shortID(c),
				chatEventTitle(c),
				fmt.Sprintf("%d", len(c.Messages)),
				format.Date(c.CreatedAt),
			}
		},
		Detail: func(c api.Chat) ui.Detail {
			fields := []ui.Field{
				{Label: "Event", Value: chatEventTitle(c)},
				{Label: "Messages", Value: fmt.Sprintf("%d", len(c.Messages))},
				{Label: "Created", Value: format.DateTime(c.CreatedAt)},
			}
			var body []string
			if len(c.Messages) > 0 {
				body = append(body, "Messages:")
				for _, m := range c.Messages {
					sender := fmt.Sprintf("ID: %d", m.UserID)
					if m.User != nil {
						sender = m.User.Name
					}
					body = append(body,
						"",
						ui.DetailLabelStyle.Render(sender)+"  "+format.DateTime(m.CreatedAt),
						m.Text,
					)
				}
			}
			return ui.Detail{Title: "Chat " + shortID(c), Fields: fields, Body: body}
		},
		Fetch:     client.ListChats,
		Delete:    client.DeleteChat,
		ID:        func(c api.Chat) int64 { return c.ID },
		Label:     shortID,
		Empty:     "No chats",
		LoadErr:   "Failed to load chats",
		DeleteErr: "Failed to delete chat",
	})
}
