package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	NotificationNewBooking       = "new_booking"
	NotificationBookingUpdate    = "booking_update"
	NotificationBookingCancelled = "booking_cancelled"
)

// Notification is an admin-facing record of a booking event. Booking
// details are denormalized so the panel can render without extra lookups.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

func NewNotification(kind string, booking *Booking, actor *User) *Notification {
	var message string
	switch kind {
	case NotificationNewBooking:
		message = fmt.Sprintf("New booking from %s for %s", actor.Name, booking.Service)
	case NotificationBookingCancelled:
		message = fmt.Sprintf("Booking for %s on %s was cancelled", booking.Service, booking.Date)
	default:
		message = fmt.Sprintf("Booking for %s updated to %s", booking.Service, booking.Status)
	}
	return &Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		BookingID: booking.ID,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Service:   booking.Service,
		Date:      booking.Date,
		TimeSlot:  booking.TimeSlot,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
