package usecases

import (
	"booking-server/entities"
	"booking-server/kvstore"
)

// In-memory repositories backing the use case tests. Slices keep the
// store's insertion-order behavior.

type fakeBookingRepo struct {
	bookings []entities.Booking
}

func (f *fakeBookingRepo) Create(b *entities.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*entities.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, kvstore.ErrNotFound
}

func (f *fakeBookingRepo) GetAll() ([]entities.Booking, error) {
	out := make([]entities.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

func (f *fakeBookingRepo) GetByUserID(userID string) ([]entities.Booking, error) {
	var out []entities.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(b *entities.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return kvstore.ErrNotFound
}

type fakeUserRepo struct {
	users []entities.User
}

func (f *fakeUserRepo) Create(u *entities.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, kvstore.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].EmailEquals(email) {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, kvstore.ErrNotFound
}

func (f *fakeUserRepo) GetAll() ([]entities.User, error) {
	out := make([]entities.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUserRepo) Update(u *entities.User) error {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
			return nil
		}
	}
	return kvstore.ErrNotFound
}

type fakeNotificationRepo struct {
	notifications []entities.Notification
}

func (f *fakeNotificationRepo) Create(n *entities.Notification) error {
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeNotificationRepo) GetByID(id string) (*entities.Notification, error) {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			n := f.notifications[i]
			return &n, nil
		}
	}
	return nil, kvstore.ErrNotFound
}

func (f *fakeNotificationRepo) GetAll() ([]entities.Notification, error) {
	out := make([]entities.Notification, len(f.notifications))
	copy(out, f.notifications)
	return out, nil
}

func (f *fakeNotificationRepo) Update(n *entities.Notification) error {
	for i := range f.notifications {
		if f.notifications[i].ID == n.ID {
			f.notifications[i] = *n
			return nil
		}
	}
	return kvstore.ErrNotFound
}

func (f *fakeNotificationRepo) Delete(id string) error {
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

// recorderNotifier captures booking events.
type recorderNotifier struct {
	created []string
	changed []string
}

func (r *recorderNotifier) BookingCreated(b *entities.Booking, actor *entities.User) {
	r.created = append(r.created, b.ID)
}

func (r *recorderNotifier) BookingStatusChanged(b *entities.Booking, actor *entities.User) {
	r.changed = append(r.changed, b.ID+":"+b.Status)
}

// recorderHub captures broadcast payloads.
type recorderHub struct {
	payloads [][]byte
}

func (r *recorderHub) Broadcast(payload []byte) {
	r.payloads = append(r.payloads, payload)
}
