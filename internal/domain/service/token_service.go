package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed, time-limited token for the given subject.
	Issue(userID int64, email string) (string, error)

	// Verify checks the validity of a token string. Malformed, tampered and
	// expired tokens all fail with domainerrors.ErrInvalidToken.
	Verify(tokenString string) (*Claims, error)
}
