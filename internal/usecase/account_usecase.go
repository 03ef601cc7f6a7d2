// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"teamed/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType entity.UserType
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's public information.
type RegisterOutput struct {
	User entity.PublicUser
}

// LoginOutput returns the authenticated user's public information. Login
// confirms credentials for this single exchange; no token is issued.
type LoginOutput struct {
	User entity.PublicUser
}

// AccountUsecase defines the contract the delivery layer depends on for
// account operations. Business failures surface as domain errors
// (ErrUserAlreadyExists, ErrInvalidCredentials, ErrUserNotFound), never as
// transport concerns.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetByEmail(ctx context.Context, email string) (*entity.PublicUser, error)
	ListUsers(ctx context.Context) ([]entity.PublicUser, error)
}
