package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/dfcarvalho/grana/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserUnauthorized is returned when credentials do not check out.
	ErrUserUnauthorized = errors.New("user unauthorized")
	// ErrUsernameTaken is returned on registration when the username is
	// already in use. Only the user store rejects duplicates; profile saves
	// upsert instead.
	ErrUsernameTaken = errors.New("username already taken")
)

// User represents an account holder. Users are never deleted; the password
// is the only mutable attribute.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// New creates a User with a bcrypt-hashed password and current timestamps.
func New(username, password string) (*User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// NewFromData hydrates a User from stored data.
func NewFromData(id uuid.UUID, username, hashedPassword string, created, updated time.Time) *User {
	return &User{
		ID:             id,
		Username:       username,
		HashedPassword: hashedPassword,
		CreatedAt:      created,
		UpdatedAt:      updated,
	}
}
