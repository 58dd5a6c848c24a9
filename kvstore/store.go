package kvstore

import "errors"

// Record kinds. Each kind is an independent namespace, mirroring the one
// key-per-entity-kind layout of the browser store this replaces.
const (
	KindUsers         = "users"
	KindBookings      = "bookings"
	KindServices      = "services"
	KindTimeSlots     = "time_slots"
	KindNotifications = "notifications"
)

var ErrNotFound = errors.New("record not found")

// Store is the key-value persistence contract shared by every entity kind.
// Values are JSON-encoded records; the store never inspects them.
type Store interface {
	// Get returns the value stored under (kind, id), or ErrNotFound.
	Get(kind, id string) ([]byte, error)
	// List returns all values of a kind in insertion order.
	List(kind string) ([][]byte, error)
	// Put creates or overwrites the value under (kind, id).
	Put(kind, id string, value []byte) error
	// Delete removes the value under (kind, id). Deleting an absent id
	// is a no-op.
	Delete(kind, id string) error
}
