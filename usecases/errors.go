package usecases

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
)
