// Package client is the remote record-store backend: every operation is
// one HTTP round trip against the booking server, authenticated by a
// bearer token. There is no client-side cache; reads see whatever the
// server returned.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"booking-server/entities"
)

var (
	// ErrUnavailable marks connectivity failures; callers suggest the
	// local store path when they see it.
	ErrUnavailable  = errors.New("cannot connect to booking server")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Session is the caller's identity, passed around explicitly instead of
// living in package state.
type Session struct {
	Token string
	User  entities.User
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// UseSession attaches the bearer token used on subsequent calls.
func (c *Client) UseSession(s *Session) {
	c.token = s.Token
}

type authResponse struct {
	User        entities.User `json:"user"`
	AccessToken string        `json:"accessToken"`
}

func (c *Client) Signup(ctx context.Context, email, password, name string) (*Session, error) {
	var out authResponse
	body := map[string]string{"email": email, "password": password, "name": name}
	if err := c.do(ctx, http.MethodPost, "/signup", body, &out); err != nil {
		return nil, err
	}
	s := &Session{Token: out.AccessToken, User: out.User}
	c.UseSession(s)
	return s, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return nil, err
	}
	s := &Session{Token: out.AccessToken, User: out.User}
	c.UseSession(s)
	return s, nil
}

func (c *Client) Me(ctx context.Context) (*entities.User, error) {
	var out entities.User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name string) (*entities.User, error) {
	var out struct {
		User entities.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/user/profile", map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Bookings(ctx context.Context) ([]entities.Booking, error) {
	var out struct {
		Bookings []entities.Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, service, date, timeSlot string) (*entities.Booking, error) {
	body := map[string]string{"service": service, "date": date, "timeSlot": timeSlot}
	return c.bookingCall(ctx, http.MethodPost, "/bookings", body)
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) (*entities.Booking, error) {
	return c.bookingCall(ctx, http.MethodPatch, "/bookings/"+id+"/status", map[string]string{"status": status})
}

func (c *Client) RescheduleBooking(ctx context.Context, id, date, timeSlot string) (*entities.Booking, error) {
	return c.bookingCall(ctx, http.MethodPatch, "/bookings/"+id+"/schedule", map[string]string{"date": date, "timeSlot": timeSlot})
}

func (c *Client) ReviewBooking(ctx context.Context, id string, rating int, comment string) (*entities.Booking, error) {
	return c.bookingCall(ctx, http.MethodPost, "/bookings/"+id+"/review", map[string]any{"rating": rating, "comment": comment})
}

func (c *Client) Users(ctx context.Context) ([]entities.User, error) {
	var out struct {
		Users []entities.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) Services(ctx context.Context) ([]string, error) {
	var out struct {
		Services []string `json:"services"`
	}
	if err := c.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, err
	}
	return out.Services, nil
}

func (c *Client) TimeSlots(ctx context.Context) ([]string, error) {
	var out struct {
		TimeSlots []string `json:"timeSlots"`
	}
	if err := c.do(ctx, http.MethodGet, "/time-slots", nil, &out); err != nil {
		return nil, err
	}
	return out.TimeSlots, nil
}

func (c *Client) Notifications(ctx context.Context) ([]entities.Notification, int, error) {
	var out struct {
		Notifications []entities.Notification `json:"notifications"`
		Unread        int                     `json:"unread"`
	}
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Notifications, out.Unread, nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPatch, "/notifications/read-all", nil, nil)
}

func (c *Client) bookingCall(ctx context.Context, method, path string, body any) (*entities.Booking, error) {
	var out struct {
		Booking entities.Booking `json:"booking"`
	}
	if err := c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrForbidden, apiErr.Error)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error)
		default:
			return errors.New(apiErr.Error)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
