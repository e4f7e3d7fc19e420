// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"taskboard/config"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Shared secret for HMAC signing.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Token.Secret == config.DefaultTokenSecret {
		logger.Warn("Token secret is the insecure default; override token.secret in production")
	}

	return &jwtService{
		secret: []byte(cfg.Token.Secret),
		ttl:    cfg.Token.ExpiresIn,
	}, nil
}

// Issue creates a signed token carrying the subject's id and email.
func (s *jwtService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a token string. Expiry is checked by the
// jwt library as part of claim validation; any failure collapses into
// the single ErrInvalidToken condition callers map to 401.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	return claims, nil
}
