package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
)

// HTTPActor implements Actor over the booking service's REST API.
type HTTPActor struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewHTTPActor builds an actor for the service at baseURL. token is the
// caller's bearer token and may be empty for guest access.
func NewHTTPActor(baseURL, token string) *HTTPActor {
	return &HTTPActor{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Ping checks the service health endpoint. Used by the Connector to decide
// when the gate may open.
func (a *HTTPActor) Ping(ctx context.Context) error {
	return a.do(ctx, http.MethodGet, "/health", nil, nil, "")
}

func (a *HTTPActor) SubmitBooking(ctx context.Context, sub Submission) (bool, error) {
	var resp struct {
		Accepted bool `json:"accepted"`
	}
	err := a.do(ctx, http.MethodPost, "/api/v1/bookings", sub.Request, &resp, sub.IdempotencyKey)
	if err != nil {
		return false, err
	}
	return resp.Accepted, nil
}

func (a *HTTPActor) GetAllBookings(ctx context.Context) ([]booking.Booking, error) {
	var bookings []booking.Booking
	if err := a.do(ctx, http.MethodGet, "/api/v1/bookings", nil, &bookings, ""); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (a *HTTPActor) ConfirmBooking(ctx context.Context, index int) error {
	return a.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%d/confirm", index), nil, nil, "")
}

func (a *HTTPActor) RejectBooking(ctx context.Context, index int) error {
	return a.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%d/reject", index), nil, nil, "")
}

func (a *HTTPActor) DeleteBooking(ctx context.Context, index int) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", index), nil, nil, "")
}

func (a *HTTPActor) ClearAllBookings(ctx context.Context) error {
	return a.do(ctx, http.MethodDelete, "/api/v1/bookings", nil, nil, "")
}

func (a *HTTPActor) CallerRole(ctx context.Context) (string, error) {
	var resp struct {
		Role string `json:"role"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/v1/auth/role", nil, &resp, ""); err != nil {
		return "", err
	}
	return resp.Role, nil
}

func (a *HTTPActor) IsCallerAdmin(ctx context.Context) (bool, error) {
	role, err := a.CallerRole(ctx)
	if err != nil {
		return false, err
	}
	return role == "admin", nil
}

func (a *HTTPActor) do(ctx context.Context, method, path string, in, out any, idemKey string) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	if idemKey != "" {
		req.Header.Set("X-Idempotency-Key", idemKey)
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var msg struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&msg); decodeErr == nil && msg.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, msg.Message)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
