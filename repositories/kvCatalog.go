package repositories

import (
	"encoding/json"
	"fmt"

	"booking-server/kvstore"
)

// catalogKvRepository stores each label as its own record keyed by value,
// so ordering falls out of the store's insertion order and duplicates are
// impossible.
type catalogKvRepository struct {
	store kvstore.Store
}

func NewCatalogKvRepository(store kvstore.Store) CatalogRepository {
	return &catalogKvRepository{store: store}
}

func (r *catalogKvRepository) Services() ([]string, error) {
	return r.list(kvstore.KindServices)
}

func (r *catalogKvRepository) AddService(name string) error {
	return r.add(kvstore.KindServices, name)
}

func (r *catalogKvRepository) RemoveService(name string) error {
	return r.store.Delete(kvstore.KindServices, name)
}

func (r *catalogKvRepository) TimeSlots() ([]string, error) {
	return r.list(kvstore.KindTimeSlots)
}

func (r *catalogKvRepository) AddTimeSlot(label string) error {
	return r.add(kvstore.KindTimeSlots, label)
}

func (r *catalogKvRepository) RemoveTimeSlot(label string) error {
	return r.store.Delete(kvstore.KindTimeSlots, label)
}

func (r *catalogKvRepository) list(kind string) ([]string, error) {
	values, err := r.store.List(kind)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(values))
	for _, raw := range values {
		var label string
		if err := json.Unmarshal(raw, &label); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", kind, err)
		}
		labels = append(labels, label)
	}
	return labels, nil
}

func (r *catalogKvRepository) add(kind, label string) error {
	// Adding an existing label keeps its position.
	if _, err := r.store.Get(kind, label); err == nil {
		return nil
	}
	raw, err := json.Marshal(label)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", kind, err)
	}
	return r.store.Put(kind, label, raw)
}
