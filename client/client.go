package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hotel-admin/models"
)

// Every backend endpoint answers with the same envelope: a success flag, a
// list of human-readable messages and the payload (one entity or a list).
type envelope struct {
	Success  bool            `json:"success"`
	Messages []string        `json:"messages"`
	Data     json.RawMessage `json:"data"`
}

// APIError is a failure reported by the backend itself (success=false or a
// non-2xx status carrying the envelope). Messages holds whatever detail the
// backend supplied.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return "the server reported an error without details"
	}
	return strings.Join(e.Messages, "; ")
}

// Client talks to the remote hotel backend. It owns no state beyond the
// transport; all persistence lives on the other side.
type Client struct {
	baseURL string
	http    *http.Client

	Customers    *Resource[models.Customer]
	Employees    *Resource[models.Employee]
	Rooms        *Resource[models.Room]
	Services     *Resource[models.Service]
	Reservations *ReservationResource
}

func New(baseURL string, timeout time.Duration) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	c.Customers = &Resource[models.Customer]{c: c, path: "/customers"}
	c.Employees = &Resource[models.Employee]{c: c, path: "/employees"}
	c.Rooms = &Resource[models.Room]{c: c, path: "/rooms"}
	c.Services = &Resource[models.Service]{c: c, path: "/services"}
	c.Reservations = &ReservationResource{Resource[models.Reservation]{c: c, path: "/reservations"}}
	return c
}

// do issues one request and unwraps the response envelope. A decoded
// envelope with success=false becomes an *APIError regardless of HTTP
// status; anything that is not an envelope is a transport-level failure.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%s %s: unexpected response (status %d)", method, path, resp.StatusCode)
	}
	if !env.Success {
		return nil, &APIError{Messages: env.Messages}
	}
	return env.Data, nil
}

func decodeAs[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, fmt.Errorf("empty response payload")
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response payload: %w", err)
	}
	return out, nil
}
