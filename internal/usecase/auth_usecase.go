// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Email arrives already normalized (lower-cased) by the delivery layer.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the user and a freshly issued bearer token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and issues a token for it.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and
	// wrong password fail identically.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Refresh re-resolves the authenticated user and issues a fresh token
	// with the same claims.
	Refresh(ctx context.Context, userID int64) (string, error)
}
