package kvstore

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	// A named shared-cache database keeps every pooled connection on the
	// same in-memory store while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("NewGormStore: %v", err)
	}
	return store
}

func TestGormStorePutGet(t *testing.T) {
	store := newTestStore(t)

	if err := store.Put(KindUsers, "u1", []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(KindUsers, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"id":"u1"}` {
		t.Errorf("value mismatch: %s", got)
	}

	if _, err := store.Get(KindUsers, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// Same id under a different kind is a different record.
	if _, err := store.Get(KindBookings, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("kinds must not share records, got %v", err)
	}
}

func TestGormStoreListKeepsInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("b%d", i)
		if err := store.Put(KindBookings, id, []byte(id)); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}

	values, err := store.List(KindBookings)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(values) != 5 {
		t.Fatalf("expected 5 records, got %d", len(values))
	}
	for i, v := range values {
		if want := fmt.Sprintf("b%d", i); string(v) != want {
			t.Errorf("position %d: got %s, want %s", i, v, want)
		}
	}
}

func TestGormStoreOverwriteKeepsPosition(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Put(KindServices, id, []byte(id)); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}
	// Rewriting the first record must not move it to the back.
	if err := store.Put(KindServices, "a", []byte("a2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	values, err := store.List(KindServices)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("overwrite must not add a record, got %d", len(values))
	}
	if string(values[0]) != "a2" {
		t.Errorf("first record: got %s, want a2", values[0])
	}
	if string(values[1]) != "b" || string(values[2]) != "c" {
		t.Errorf("order disturbed: %s %s", values[1], values[2])
	}
}

func TestGormStoreDelete(t *testing.T) {
	store := newTestStore(t)

	if err := store.Put(KindNotifications, "n1", []byte("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(KindNotifications, "n1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(KindNotifications, "n1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again is fine.
	if err := store.Delete(KindNotifications, "n1"); err != nil {
		t.Errorf("repeat delete: %v", err)
	}
}

func TestGormStoreListEmptyKind(t *testing.T) {
	store := newTestStore(t)

	values, err := store.List(KindTimeSlots)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected empty list, got %d records", len(values))
	}
}
