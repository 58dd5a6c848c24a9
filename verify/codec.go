// Package verify encodes a booking snapshot into a self-contained token so
// any device can display the booking without reaching the record store.
// The token is plain base64, not signed: it is a display convenience, never
// an access-control mechanism.
package verify

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"booking-server/entities"
)

var ErrInvalidToken = errors.New("invalid verification token")

// Snapshot is the flat booking+user view carried inside a token.
type Snapshot struct {
	BookingID string `json:"bookingId"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Status    string `json:"status"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	CreatedAt string `json:"createdAt"`
}

func NewSnapshot(booking *entities.Booking, user *entities.User) Snapshot {
	return Snapshot{
		BookingID: booking.ID,
		Service:   booking.Service,
		Date:      booking.Date,
		TimeSlot:  booking.TimeSlot,
		Status:    booking.Status,
		UserName:  user.Name,
		UserEmail: user.Email,
		CreatedAt: booking.CreatedAt,
	}
}

// Encode serializes the snapshot into a base64 text token. The token must
// be query-escaped before embedding in a URL; URL below does that.
func Encode(booking *entities.Booking, user *entities.User) (string, error) {
	raw, err := json.Marshal(NewSnapshot(booking, user))
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode reverses Encode. Wrong padding, truncated input and non-JSON
// payloads all come back as ErrInvalidToken; callers render those as
// "booking not found".
func Decode(token string) (*Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &snap, nil
}

// URL builds the human-navigable verification link: the booking id in the
// path and the token in the data query parameter.
func URL(baseURL string, booking *entities.Booking, user *entities.User) (string, error) {
	token, err := Encode(booking, user)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/verify/%s?data=%s", baseURL, booking.ID, url.QueryEscape(token)), nil
}
