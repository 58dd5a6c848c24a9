package usecases

import (
	"errors"
	"time"

	"booking-server/entities"
	"booking-server/kvstore"
	"booking-server/repositories"
)

// BookingNotifier receives booking events after the record is persisted.
// Delivery is best effort; booking writes never fail on notification
// problems.
type BookingNotifier interface {
	BookingCreated(booking *entities.Booking, actor *entities.User)
	BookingStatusChanged(booking *entities.Booking, actor *entities.User)
}

type BookingUseCase struct {
	BookingRepo repositories.BookingRepository
	Notifier    BookingNotifier
}

func NewBookingUseCase(bookingRepo repositories.BookingRepository, notifier BookingNotifier) *BookingUseCase {
	return &BookingUseCase{
		BookingRepo: bookingRepo,
		Notifier:    notifier,
	}
}

// CreateBooking persists a new Pending booking for the acting user and
// emits a new_booking notification. The service and time slot are taken
// as given; the catalogs constrain the UI, not this layer.
func (uc *BookingUseCase) CreateBooking(actor *entities.User, service, date, timeSlot string) (*entities.Booking, error) {
	if service == "" {
		return nil, errors.New("service is required")
	}
	if date == "" {
		return nil, errors.New("date is required")
	}
	if timeSlot == "" {
		return nil, errors.New("time slot is required")
	}

	booking := entities.NewBooking(actor.ID, service, date, timeSlot)
	if err := uc.BookingRepo.Create(booking); err != nil {
		return nil, err
	}
	if uc.Notifier != nil {
		uc.Notifier.BookingCreated(booking, actor)
	}
	return booking, nil
}

// UpdateStatus moves a booking through the status state machine. Setting
// the current status again succeeds without a write; transitions out of
// Cancelled or Completed are rejected.
func (uc *BookingUseCase) UpdateStatus(actor *entities.User, bookingID, status string) (*entities.Booking, error) {
	if !entities.ValidStatus(status) {
		return nil, errors.New("unknown booking status")
	}

	booking, err := uc.getBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == status {
		return booking, nil
	}
	if !entities.CanTransition(booking.Status, status) {
		return nil, ErrInvalidTransition
	}

	booking.Status = status
	if err := uc.BookingRepo.Update(booking); err != nil {
		return nil, err
	}
	if uc.Notifier != nil {
		uc.Notifier.BookingStatusChanged(booking, actor)
	}
	return booking, nil
}

// Reschedule overwrites date and time slot in place. Status is unchanged
// and no conflict check is made against other bookings in the same slot.
func (uc *BookingUseCase) Reschedule(bookingID, newDate, newTimeSlot string) (*entities.Booking, error) {
	if newDate == "" {
		return nil, errors.New("date is required")
	}
	if newTimeSlot == "" {
		return nil, errors.New("time slot is required")
	}

	booking, err := uc.getBooking(bookingID)
	if err != nil {
		return nil, err
	}
	booking.Date = newDate
	booking.TimeSlot = newTimeSlot
	if err := uc.BookingRepo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// AttachReview sets the booking's review, overwriting any prior one. A
// repeat of an identical review leaves the stored record untouched.
func (uc *BookingUseCase) AttachReview(bookingID string, rating int, comment string) (*entities.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	booking, err := uc.getBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Review != nil && booking.Review.Rating == rating && booking.Review.Comment == comment {
		return booking, nil
	}
	booking.Review = &entities.Review{
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.BookingRepo.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (uc *BookingUseCase) GetBooking(bookingID string) (*entities.Booking, error) {
	return uc.getBooking(bookingID)
}

func (uc *BookingUseCase) ListAll() ([]entities.Booking, error) {
	return uc.BookingRepo.GetAll()
}

func (uc *BookingUseCase) ListByUser(userID string) ([]entities.Booking, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return uc.BookingRepo.GetByUserID(userID)
}

// ServiceRating averages review ratings across all reviewed bookings of a
// service.
func (uc *BookingUseCase) ServiceRating(service string) (average float64, count int, err error) {
	all, err := uc.BookingRepo.GetAll()
	if err != nil {
		return 0, 0, err
	}
	total := 0
	for _, b := range all {
		if b.Service == service && b.Review != nil {
			total += b.Review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(total) / float64(count), count, nil
}

func (uc *BookingUseCase) getBooking(id string) (*entities.Booking, error) {
	if id == "" {
		return nil, errors.New("booking id is required")
	}
	booking, err := uc.BookingRepo.GetByID(id)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}
