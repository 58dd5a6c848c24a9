package repositories

import (
	"errors"
	"testing"

	"booking-server/entities"
	"booking-server/kvstore"
)

// memStore is an insertion-ordered in-memory kvstore.Store.
type memStore struct {
	order map[string][]string
	data  map[string]map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		order: make(map[string][]string),
		data:  make(map[string]map[string][]byte),
	}
}

func (m *memStore) Get(kind, id string) ([]byte, error) {
	if v, ok := m.data[kind][id]; ok {
		return v, nil
	}
	return nil, kvstore.ErrNotFound
}

func (m *memStore) List(kind string) ([][]byte, error) {
	var out [][]byte
	for _, id := range m.order[kind] {
		out = append(out, m.data[kind][id])
	}
	return out, nil
}

func (m *memStore) Put(kind, id string, value []byte) error {
	if m.data[kind] == nil {
		m.data[kind] = make(map[string][]byte)
	}
	if _, exists := m.data[kind][id]; !exists {
		m.order[kind] = append(m.order[kind], id)
	}
	m.data[kind][id] = value
	return nil
}

func (m *memStore) Delete(kind, id string) error {
	if _, exists := m.data[kind][id]; !exists {
		return nil
	}
	delete(m.data[kind], id)
	ids := m.order[kind]
	for i, v := range ids {
		if v == id {
			m.order[kind] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewUserKvRepository(newMemStore())
	user := &entities.User{
		ID:           "u1",
		Email:        "demo@user.com",
		Name:         "Demo User",
		Role:         entities.RoleUser,
		PasswordHash: "hash-value",
		CreatedAt:    "2025-11-01",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID("u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PasswordHash != "hash-value" {
		t.Error("credential must survive the stored round trip")
	}
	if got.Email != "demo@user.com" || got.Name != "Demo User" {
		t.Errorf("user mismatch: %+v", got)
	}
}

func TestUserRepositoryEmailLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserKvRepository(newMemStore())
	if err := repo.Create(&entities.User{ID: "u1", Email: "Demo@User.com", Name: "Demo"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail("demo@user.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("wrong user: %+v", got)
	}

	if _, err := repo.GetByEmail("nobody@x.com"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBookingRepositoryFiltersAndUpdates(t *testing.T) {
	t.Parallel()

	repo := NewBookingKvRepository(newMemStore())
	b1 := &entities.Booking{ID: "b1", UserID: "u1", Service: "Consultation", Status: entities.StatusPending}
	b2 := &entities.Booking{ID: "b2", UserID: "u2", Service: "Design Review", Status: entities.StatusPending}
	for _, b := range []*entities.Booking{b1, b2} {
		if err := repo.Create(b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	mine, err := repo.GetByUserID("u1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "b1" {
		t.Errorf("unexpected filter result: %+v", mine)
	}

	b1.Status = entities.StatusConfirmed
	if err := repo.Update(b1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID("b1")
	if got.Status != entities.StatusConfirmed {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := repo.Update(&entities.Booking{ID: "missing"}); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogRepositoryOrderAndDedupe(t *testing.T) {
	t.Parallel()

	repo := NewCatalogKvRepository(newMemStore())
	for _, name := range []string{"Consultation", "Design Review", "Consultation"} {
		if err := repo.AddService(name); err != nil {
			t.Fatalf("AddService: %v", err)
		}
	}

	services, err := repo.Services()
	if err != nil {
		t.Fatalf("Services: %v", err)
	}
	if len(services) != 2 || services[0] != "Consultation" || services[1] != "Design Review" {
		t.Errorf("unexpected services: %v", services)
	}

	if err := repo.RemoveService("Consultation"); err != nil {
		t.Fatalf("RemoveService: %v", err)
	}
	services, _ = repo.Services()
	if len(services) != 1 || services[0] != "Design Review" {
		t.Errorf("remove failed: %v", services)
	}

	// Labels with spaces and colons are fine as keys.
	if err := repo.AddTimeSlot("10:00 AM"); err != nil {
		t.Fatalf("AddTimeSlot: %v", err)
	}
	slots, _ := repo.TimeSlots()
	if len(slots) != 1 || slots[0] != "10:00 AM" {
		t.Errorf("unexpected slots: %v", slots)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	users := NewUserKvRepository(store)
	bookings := NewBookingKvRepository(store)
	catalog := NewCatalogKvRepository(store)

	for i := 0; i < 2; i++ {
		if err := Seed(users, bookings, catalog); err != nil {
			t.Fatalf("Seed run %d: %v", i+1, err)
		}
	}

	allUsers, _ := users.GetAll()
	if len(allUsers) != 4 {
		t.Errorf("expected 4 demo accounts, got %d", len(allUsers))
	}
	demo, err := users.GetByEmail("demo@user.com")
	if err != nil {
		t.Fatalf("demo account missing: %v", err)
	}
	if demo.Role != entities.RoleUser {
		t.Errorf("demo account should be a user, got %q", demo.Role)
	}
	admins := 0
	for _, u := range allUsers {
		if u.IsAdmin() {
			admins++
		}
	}
	if admins != 3 {
		t.Errorf("expected 3 demo admins, got %d", admins)
	}

	allBookings, _ := bookings.GetAll()
	if len(allBookings) != 3 {
		t.Errorf("expected 3 demo bookings, got %d", len(allBookings))
	}

	services, _ := catalog.Services()
	if len(services) != len(DefaultServices) {
		t.Errorf("expected %d services, got %d", len(DefaultServices), len(services))
	}
	slots, _ := catalog.TimeSlots()
	if len(slots) != len(DefaultTimeSlots) {
		t.Errorf("expected %d time slots, got %d", len(DefaultTimeSlots), len(slots))
	}
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	users := NewUserKvRepository(store)
	bookings := NewBookingKvRepository(store)
	catalog := NewCatalogKvRepository(store)

	existing := &entities.User{ID: "x1", Email: "real@user.com", Name: "Real"}
	if err := users.Create(existing); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := Seed(users, bookings, catalog); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	allUsers, _ := users.GetAll()
	if len(allUsers) != 1 || allUsers[0].ID != "x1" {
		t.Errorf("seed touched a non-empty users namespace: %+v", allUsers)
	}
}
