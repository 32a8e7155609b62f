package api

// Entities returned by the admin API. All of them are backend-owned
// snapshots: the console never constructs or edits them, it only caches
// the latest fetch and splices on delete. Relation fields (author, event,
// user) are pointers because the backend may or may not expand them.

// User is a platform account.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Premium   bool   `json:"premium"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Event is a meetup created by a user.
type Event struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	City             string `json:"city"`
	ParticipantLimit int    `json:"participantLimit"`
	AuthorID         int64  `json:"authorId"`
	Author           *User  `json:"author,omitempty"`
	Participants     []User `json:"participants,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// Chat is the message thread attached to an event.
type Chat struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	Event     *Event    `json:"event,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// Message is a single chat message. Messages arrive in chronological
// order and the console preserves that order.
type Message struct {
	ID        int64  `json:"id"`
	ChatID    int64  `json:"chatId"`
	UserID    int64  `json:"userId"`
	User      *User  `json:"user,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// EventRequest is a user's application to join an event. Modeled for
// completeness; no screen renders these yet.
type EventRequest struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"eventId"`
	UserID    int64  `json:"userId"`
	User      *User  `json:"user,omitempty"`
	Event     *Event `json:"event,omitempty"`
	Status    string `json:"status"` // pending | approved | rejected
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// EventRequest status values.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// CityCount is a per-city aggregate.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// DateCount is a per-day aggregate.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AnalyticsTotals holds running totals for the analytics block.
type AnalyticsTotals struct {
	UserCreated   int `json:"userCreated"`
	EventCreated  int `json:"eventCreated"`
	EventRequests int `json:"eventRequests"`
}

// AnalyticsDay is one day's creation/request counts.
type AnalyticsDay struct {
	Date          string `json:"date"`
	UserCreated   int    `json:"userCreated"`
	EventCreated  int    `json:"eventCreated"`
	EventRequests int    `json:"eventRequests"`
}

// Analytics is the optional extended analytics block. Older backends omit
// it entirely; the console renders the section only when present.
type Analytics struct {
	Total AnalyticsTotals `json:"total"`
	Daily []AnalyticsDay  `json:"daily"`
}

// Statistics is a derived read projection with no identity or lifecycle.
// Each fetch replaces the previous snapshot wholesale.
type Statistics struct {
	TotalUsers      int         `json:"totalUsers"`
	TotalEvents     int         `json:"totalEvents"`
	TotalChats      int         `json:"totalChats"`
	TotalMessages   int         `json:"totalMessages"`
	ActiveEvents    int         `json:"activeEvents"`
	PendingRequests int         `json:"pendingRequests"`
	EventsByCity    []CityCount `json:"eventsByCity"`
	RecentUsers     []DateCount `json:"recentUsers"`
	Analytics       *Analytics  `json:"analytics,omitempty"`
}
