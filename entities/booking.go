package entities

import (
	"time"

	"github.com/google/uuid"
)

// DateOnly is the calendar-date layout used for booking dates and account
// creation dates. Time-of-day lives in the TimeSlot label, never here.
const DateOnly = "2006-01-02"

// Booking statuses. Pending is the initial state; Cancelled and Completed
// are terminal.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

type Review struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

type Booking struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Service   string  `json:"service"`
	Date      string  `json:"date"`
	TimeSlot  string  `json:"timeSlot"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	Review    *Review `json:"review,omitempty"`
}

func NewBooking(userID, service, date, timeSlot string) *Booking {
	return &Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		Service:   service,
		Date:      date,
		TimeSlot:  timeSlot,
		Status:    StatusPending,
		CreatedAt: time.Now().Format(DateOnly),
	}
}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Setting the current status again counts as allowed (no-op).
// Nothing leaves Cancelled or Completed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted
	}
	return false
}
