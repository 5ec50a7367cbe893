// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUsernameAlreadyExists indicates that the user with the given username already exists.
	ErrUsernameAlreadyExists = errors.New("username already taken")
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates a failed login attempt.
	// Unknown usernames and wrong passwords are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User holds a user's identity and balance record.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	Balance        string    `json:"balance"` // decimal string, never negative
	CreatedAt      time.Time `json:"created_at"`
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
	Balance        string `json:"balance"`
}

// UserWithoutPassword is User data excluding password data.
type UserWithoutPassword struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
