package repositories

import (
	"encoding/json"
	"fmt"

	"booking-server/entities"
	"booking-server/kvstore"
)

type notificationKvRepository struct {
	store kvstore.Store
}

func NewNotificationKvRepository(store kvstore.Store) NotificationRepository {
	return &notificationKvRepository{store: store}
}

func (r *notificationKvRepository) Create(n *entities.Notification) error {
	return r.put(n)
}

func (r *notificationKvRepository) GetByID(id string) (*entities.Notification, error) {
	raw, err := r.store.Get(kvstore.KindNotifications, id)
	if err != nil {
		return nil, err
	}
	var n entities.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("failed to decode notification record: %w", err)
	}
	return &n, nil
}

func (r *notificationKvRepository) GetAll() ([]entities.Notification, error) {
	values, err := r.store.List(kvstore.KindNotifications)
	if err != nil {
		return nil, err
	}
	notifications := make([]entities.Notification, 0, len(values))
	for _, raw := range values {
		var n entities.Notification
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("failed to decode notification record: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *notificationKvRepository) Update(n *entities.Notification) error {
	if _, err := r.store.Get(kvstore.KindNotifications, n.ID); err != nil {
		return err
	}
	return r.put(n)
}

func (r *notificationKvRepository) Delete(id string) error {
	return r.store.Delete(kvstore.KindNotifications, id)
}

func (r *notificationKvRepository) put(n *entities.Notification) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification record: %w", err)
	}
	return r.store.Put(kvstore.KindNotifications, n.ID, raw)
}
