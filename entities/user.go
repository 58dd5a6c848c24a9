package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account in the booking system. PasswordHash is only populated
// by the local backend; the JSON tag keeps it out of every response and
// out of verification tokens.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"createdAt"`
}

func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		Role:         RoleUser,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Format(DateOnly),
	}
}

// EmailEquals compares addresses case-insensitively.
func (u *User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, email)
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
