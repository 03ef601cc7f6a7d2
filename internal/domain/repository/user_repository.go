// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"teamed/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert violates the unique index on
// users.email. The constraint lives in the store so that concurrent
// registrations cannot both succeed; callers must not pre-check and insert.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// Create persists a new user and fills in the assigned ID.
	// Returns ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by email address.
	// Returns ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListAll returns every stored user in storage order.
	ListAll(ctx context.Context) ([]entity.User, error)
}
