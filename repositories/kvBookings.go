package repositories

import (
	"encoding/json"
	"fmt"

	"booking-server/entities"
	"booking-server/kvstore"
)

type bookingKvRepository struct {
	store kvstore.Store
}

func NewBookingKvRepository(store kvstore.Store) BookingRepository {
	return &bookingKvRepository{store: store}
}

func (r *bookingKvRepository) Create(booking *entities.Booking) error {
	return r.put(booking)
}

func (r *bookingKvRepository) GetByID(id string) (*entities.Booking, error) {
	raw, err := r.store.Get(kvstore.KindBookings, id)
	if err != nil {
		return nil, err
	}
	var b entities.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("failed to decode booking record: %w", err)
	}
	return &b, nil
}

func (r *bookingKvRepository) GetAll() ([]entities.Booking, error) {
	values, err := r.store.List(kvstore.KindBookings)
	if err != nil {
		return nil, err
	}
	bookings := make([]entities.Booking, 0, len(values))
	for _, raw := range values {
		var b entities.Booking
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("failed to decode booking record: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *bookingKvRepository) GetByUserID(userID string) ([]entities.Booking, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	bookings := make([]entities.Booking, 0)
	for _, b := range all {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *bookingKvRepository) Update(booking *entities.Booking) error {
	if _, err := r.store.Get(kvstore.KindBookings, booking.ID); err != nil {
		return err
	}
	return r.put(booking)
}

func (r *bookingKvRepository) put(booking *entities.Booking) error {
	raw, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to encode booking record: %w", err)
	}
	return r.store.Put(kvstore.KindBookings, booking.ID, raw)
}
