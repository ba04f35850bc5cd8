// Package backend implements the HTTP client for the validation backend.
//
// The backend's contract is small: it serves the email feed and echoes back
// validated calendar/reminder payloads, or a rejection reason. All writes to
// the local store happen only after a successful validation round-trip.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError represents a non-2xx HTTP response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// Client talks to one validation backend instance.
type Client struct {
	http *http.Client
	base string
}

func New(baseURL string) *Client {
	return &Client{
		http: &http.Client{Timeout: 15 * time.Second},
		base: strings.TrimSuffix(baseURL, "/"),
	}
}

// Emails fetches the live email feed.
func (c *Client) Emails(ctx context.Context) ([]Email, error) {
	var emails []Email
	if err := c.get(ctx, "/emails", &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

// TestEmails fetches the canned development feed.
func (c *Client) TestEmails(ctx context.Context) ([]Email, error) {
	var emails []Email
	if err := c.get(ctx, "/test-emails", &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

// ValidateEvent asks the backend to validate a calendar event. A reachable
// backend that rejects the event returns resp.Success=false with a reason,
// not an error.
func (c *Client) ValidateEvent(ctx context.Context, req EventRequest) (*EventResponse, error) {
	var resp EventResponse
	if err := c.post(ctx, "/calendar/event", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateReminder is the reminder mirror of ValidateEvent.
func (c *Client) ValidateReminder(ctx context.Context, req ReminderRequest) (*ReminderResponse, error) {
	var resp ReminderResponse
	if err := c.post(ctx, "/reminders/todo", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}
