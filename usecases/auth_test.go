package usecases

import (
	"errors"
	"testing"

	"booking-server/auth"
	"booking-server/entities"
)

func TestSignupCreatesUserRole(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	uc := NewAuthUseCase(repo)

	user, err := uc.Signup("new@user.com", "secret123", "New User")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Role != entities.RoleUser {
		t.Errorf("expected default role user, got %q", user.Role)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if !auth.CheckPassword(user.PasswordHash, "secret123") {
		t.Error("stored hash does not verify the password")
	}
}

func TestSignupDuplicateEmailLeavesExistingRecord(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	uc := NewAuthUseCase(repo)

	original, err := uc.Signup("demo@user.com", "demo123", "Demo User")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// Same email, different case.
	if _, err := uc.Signup("Demo@User.com", "other", "Impostor"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	users, _ := repo.GetAll()
	if len(users) != 1 {
		t.Fatalf("duplicate signup must not add a record, have %d", len(users))
	}
	if users[0].Name != original.Name || users[0].PasswordHash != original.PasswordHash {
		t.Error("duplicate signup altered the existing record")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	uc := NewAuthUseCase(&fakeUserRepo{})
	if _, err := uc.Login("nonexistent@x.com", "any"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	uc := NewAuthUseCase(repo)
	if _, err := uc.Signup("demo@user.com", "demo123", "Demo User"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := uc.Login("demo@user.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	user, err := uc.Login("DEMO@USER.COM", "demo123")
	if err != nil {
		t.Fatalf("case-insensitive login failed: %v", err)
	}
	if user.Name != "Demo User" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestUpdateProfileChangesOnlyName(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepo{}
	uc := NewAuthUseCase(repo)
	created, _ := uc.Signup("demo@user.com", "demo123", "Demo User")

	updated, err := uc.UpdateProfile(created.ID, "Renamed")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("expected new name, got %q", updated.Name)
	}
	if updated.Email != created.Email || updated.Role != created.Role {
		t.Error("profile update touched immutable fields")
	}

	if _, err := uc.UpdateProfile("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
