package repositories

import "booking-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetAll() ([]entities.User, error)
	Update(user *entities.User) error
}

type BookingRepository interface {
	Create(booking *entities.Booking) error
	GetByID(id string) (*entities.Booking, error)
	GetAll() ([]entities.Booking, error)
	GetByUserID(userID string) ([]entities.Booking, error)
	Update(booking *entities.Booking) error
}

// CatalogRepository manages the two admin-editable allow-lists. Both are
// ordered sets of labels, unique by exact value.
type CatalogRepository interface {
	Services() ([]string, error)
	AddService(name string) error
	RemoveService(name string) error
	TimeSlots() ([]string, error)
	AddTimeSlot(label string) error
	RemoveTimeSlot(label string) error
}

type NotificationRepository interface {
	Create(n *entities.Notification) error
	GetByID(id string) (*entities.Notification, error)
	GetAll() ([]entities.Notification, error)
	Update(n *entities.Notification) error
	Delete(id string) error
}
