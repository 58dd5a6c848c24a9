package repositories

import (
	"fmt"
	"log"

	"booking-server/auth"
	"booking-server/entities"
)

// DefaultServices and DefaultTimeSlots are the stock catalogs installed on
// first use. Admins manage both lists afterwards.
var DefaultServices = []string{
	"Consultation",
	"Design Review",
	"Strategy Session",
	"Technical Support",
	"Training Session",
	"Project Planning",
}

var DefaultTimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

type demoAccount struct {
	id, email, password, name, role, createdAt string
}

var demoAccounts = []demoAccount{
	{"1", "demo@user.com", "demo123", "Demo User", entities.RoleUser, "2025-11-01"},
	{"2", "roger@gmail.com", "gerger1", "Roger", entities.RoleAdmin, "2025-10-15"},
	{"3", "val@gmail.com", "gerger1", "Val", entities.RoleAdmin, "2025-10-16"},
	{"4", "marian@gmail.com", "gerger1", "Marian", entities.RoleAdmin, "2025-10-17"},
}

var demoBookings = []entities.Booking{
	{ID: "1", UserID: "1", Service: "Consultation", Date: "2025-11-28", TimeSlot: "10:00 AM", Status: entities.StatusConfirmed, CreatedAt: "2025-11-20"},
	{ID: "2", UserID: "1", Service: "Design Review", Date: "2025-12-02", TimeSlot: "2:00 PM", Status: entities.StatusPending, CreatedAt: "2025-11-22"},
	{ID: "3", UserID: "2", Service: "Strategy Session", Date: "2025-11-25", TimeSlot: "11:00 AM", Status: entities.StatusConfirmed, CreatedAt: "2025-11-19"},
}

// Seed installs demo accounts, demo bookings and the default catalogs into
// a fresh local store. Each namespace is seeded only when it is empty, so
// an existing store is never touched.
func Seed(users UserRepository, bookings BookingRepository, catalog CatalogRepository) error {
	existing, err := users.GetAll()
	if err != nil {
		return fmt.Errorf("failed to inspect users: %w", err)
	}
	if len(existing) == 0 {
		for _, acct := range demoAccounts {
			hash, err := auth.HashPassword(acct.password)
			if err != nil {
				return fmt.Errorf("failed to hash demo password: %w", err)
			}
			u := entities.User{
				ID:           acct.id,
				Email:        acct.email,
				Name:         acct.name,
				Role:         acct.role,
				PasswordHash: hash,
				CreatedAt:    acct.createdAt,
			}
			if err := users.Create(&u); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", acct.email, err)
			}
		}
		log.Printf("Seeded %d demo accounts", len(demoAccounts))
	}

	existingBookings, err := bookings.GetAll()
	if err != nil {
		return fmt.Errorf("failed to inspect bookings: %w", err)
	}
	if len(existingBookings) == 0 {
		for i := range demoBookings {
			b := demoBookings[i]
			if err := bookings.Create(&b); err != nil {
				return fmt.Errorf("failed to seed booking %s: %w", b.ID, err)
			}
		}
		log.Printf("Seeded %d demo bookings", len(demoBookings))
	}

	services, err := catalog.Services()
	if err != nil {
		return fmt.Errorf("failed to inspect services: %w", err)
	}
	if len(services) == 0 {
		for _, name := range DefaultServices {
			if err := catalog.AddService(name); err != nil {
				return fmt.Errorf("failed to seed service %q: %w", name, err)
			}
		}
	}

	slots, err := catalog.TimeSlots()
	if err != nil {
		return fmt.Errorf("failed to inspect time slots: %w", err)
	}
	if len(slots) == 0 {
		for _, label := range DefaultTimeSlots {
			if err := catalog.AddTimeSlot(label); err != nil {
				return fmt.Errorf("failed to seed time slot %q: %w", label, err)
			}
		}
	}

	return nil
}
