package usecases

import (
	"errors"

	"booking-server/auth"
	"booking-server/entities"
	"booking-server/kvstore"
	"booking-server/repositories"
)

type AuthUseCase struct {
	UserRepo repositories.UserRepository
}

func NewAuthUseCase(userRepo repositories.UserRepository) *AuthUseCase {
	return &AuthUseCase{UserRepo: userRepo}
}

// Signup creates an account with the default user role. A registered email
// (matched case-insensitively) is rejected and the existing record is left
// untouched.
func (uc *AuthUseCase) Signup(email, password, name string) (*entities.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, errors.New("email, password and name are required")
	}

	_, err := uc.UserRepo.GetByEmail(email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := entities.NewUser(email, name, hash)
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credential. Unknown emails and bad passwords are
// indistinguishable to the caller.
func (uc *AuthUseCase) Login(email, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (uc *AuthUseCase) GetUser(id string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// UpdateProfile changes the display name, the only mutable profile field.
func (uc *AuthUseCase) UpdateProfile(userID, name string) (*entities.User, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := uc.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) ListUsers() ([]entities.User, error) {
	return uc.UserRepo.GetAll()
}
