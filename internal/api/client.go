// Package api is the gateway client for the JoinMe admin REST API. It
// attaches the stored credential to every outbound call and collapses all
// HTTP failures into a uniform error shape the screens can read.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/joinme/admin-tui/internal/errors"
	"github.com/joinme/admin-tui/internal/logger"
)

const httpTimeout = 30 * time.Second

// TokenSource supplies the persisted admin credential for each request.
// *config.Config satisfies this.
type TokenSource interface {
	GetToken() string
}

// Error is the uniform error shape for server-reported failures. Message
// is empty when the server sent no message field; callers fall back to a
// resource-specific default in that case.
type Error struct {
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// IsUnauthorized reports whether err is a server 401, meaning the stored
// credential is no longer valid and the operator must log in again.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if stderrors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}
	return errors.Is(err, errors.KindAuth)
}

// ServerMessage extracts the server-supplied message from err, or ""
// when the failure carried none (transport errors, messageless bodies).
func ServerMessage(err error) string {
	var apiErr *Error
	if stderrors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// Client talks to the admin API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// New creates a client against the given base URL. The token source is
// consulted on every request, so login/logout take effect immediately.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: httpTimeout},
		baseURL:    baseURL,
		tokens:     tokens,
	}
}

// NewWithClient creates a client with a custom HTTP client (for testing).
func NewWithClient(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
	}
}

// loginRequest is the POST /admin/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the POST /admin/login result.
type loginResponse struct {
	Token string `json:"token"`
}

// errorBody is the uniform error payload the backend returns on failures.
type errorBody struct {
	Message string `json:"message"`
}

// Login exchanges operator credentials for a session token. The token is
// not stored here; the caller persists it through the config store.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListEvents fetches all events with author and participants expanded.
// Order is as the server returned it.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, http.MethodGet, "/admin/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteEvent deletes one event by id.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/events/%d", id), nil, nil)
}

// ListUsers fetches all users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser deletes one user by id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

// ListChats fetches all chats with event and message senders expanded.
func (c *Client) ListChats(ctx context.Context) ([]Chat, error) {
	var chats []Chat
	if err := c.do(ctx, http.MethodGet, "/admin/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// DeleteChat deletes one chat (and its messages) by id.
func (c *Client) DeleteChat(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/chats/%d", id), nil, nil)
}

// GetStatistics fetches the aggregate statistics snapshot.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	if err := c.do(ctx, http.MethodGet, "/admin/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// do performs one request. Every call carries the bearer credential (when
// present) and a fresh correlation id. Non-2xx responses are decoded into
// *Error with whatever message the server supplied.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.E(errors.Op("api.do"), errors.KindInvalid, "encoding request body", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.E(errors.Op("api.do"), errors.KindInvalid, "creating request", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.GetToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("API: %s %s request_id=%s", method, path, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("API: %s %s failed: %v request_id=%s", method, path, err, requestID)
		return errors.RequestFailed(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode, RequestID: requestID}
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil {
			apiErr.Message = eb.Message
		}
		logger.Warn("API: %s %s status=%d message=%q request_id=%s",
			method, path, resp.StatusCode, apiErr.Message, requestID)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.DecodeFailed(path, err)
		}
	}

	logger.Debug("API: %s %s status=%d request_id=%s", method, path, resp.StatusCode, requestID)
	return nil
}
