package usecases

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"booking-server/entities"
	"booking-server/kvstore"
	"booking-server/repositories"
)

// Broadcaster pushes a payload to every connected listener. There is one
// logical channel, no queueing and no delivery guarantee; the poll loop is
// the backstop for listeners that attach later.
type Broadcaster interface {
	Broadcast(payload []byte)
}

type NotificationUseCase struct {
	NotificationRepo repositories.NotificationRepository
	Hub              Broadcaster
}

func NewNotificationUseCase(repo repositories.NotificationRepository, hub Broadcaster) *NotificationUseCase {
	return &NotificationUseCase{NotificationRepo: repo, Hub: hub}
}

// NotifyNewBooking records and broadcasts a new_booking notification.
func (uc *NotificationUseCase) NotifyNewBooking(booking *entities.Booking, actor *entities.User) (*entities.Notification, error) {
	return uc.notify(entities.NotificationNewBooking, booking, actor)
}

func (uc *NotificationUseCase) notify(kind string, booking *entities.Booking, actor *entities.User) (*entities.Notification, error) {
	n := entities.NewNotification(kind, booking, actor)
	if err := uc.NotificationRepo.Create(n); err != nil {
		return nil, err
	}
	uc.broadcast(n)
	return n, nil
}

// BookingCreated and BookingStatusChanged satisfy BookingNotifier. Emit
// failures are logged, never propagated into the booking write path.
func (uc *NotificationUseCase) BookingCreated(booking *entities.Booking, actor *entities.User) {
	if _, err := uc.NotifyNewBooking(booking, actor); err != nil {
		log.Printf("failed to record new_booking notification: %v", err)
	}
}

func (uc *NotificationUseCase) BookingStatusChanged(booking *entities.Booking, actor *entities.User) {
	kind := entities.NotificationBookingUpdate
	if booking.Status == entities.StatusCancelled {
		kind = entities.NotificationBookingCancelled
	}
	if _, err := uc.notify(kind, booking, actor); err != nil {
		log.Printf("failed to record %s notification: %v", kind, err)
	}
}

func (uc *NotificationUseCase) GetAll() ([]entities.Notification, error) {
	return uc.NotificationRepo.GetAll()
}

func (uc *NotificationUseCase) UnreadCount() (int, error) {
	all, err := uc.NotificationRepo.GetAll()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flags one notification as read. Absent ids and already-read
// notifications are no-ops.
func (uc *NotificationUseCase) MarkRead(id string) error {
	n, err := uc.NotificationRepo.GetByID(id)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if n.Read {
		return nil
	}
	n.Read = true
	return uc.NotificationRepo.Update(n)
}

func (uc *NotificationUseCase) MarkAllRead() error {
	all, err := uc.NotificationRepo.GetAll()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Read {
			continue
		}
		all[i].Read = true
		if err := uc.NotificationRepo.Update(&all[i]); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a notification. Deleting an absent id is a no-op.
func (uc *NotificationUseCase) Delete(id string) error {
	return uc.NotificationRepo.Delete(id)
}

func (uc *NotificationUseCase) broadcast(n *entities.Notification) {
	if uc.Hub == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{"type": "notification", "data": n})
	if err != nil {
		log.Printf("failed to encode notification broadcast: %v", err)
		return
	}
	uc.Hub.Broadcast(payload)
}

// StartPoller re-reads the notification list on a fixed interval and
// re-broadcasts records it has not seen, so listeners that connected after
// the original broadcast still catch up. The returned func stops the loop.
func (uc *NotificationUseCase) StartPoller(interval time.Duration) func() {
	stop := make(chan struct{})
	go func() {
		// Records already stored at startup are history, not news.
		seen := make(map[string]bool)
		if existing, err := uc.NotificationRepo.GetAll(); err == nil {
			for i := range existing {
				seen[existing[i].ID] = true
			}
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				all, err := uc.NotificationRepo.GetAll()
				if err != nil {
					log.Printf("notification poll failed: %v", err)
					continue
				}
				for i := range all {
					if seen[all[i].ID] {
						continue
					}
					seen[all[i].ID] = true
					uc.broadcast(&all[i])
				}
			}
		}
	}()
	return func() { close(stop) }
}
