package middleware

import (
	"strings"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the "Authorization: Bearer <token>" header and
// attaches the verified caller identity to the request context. A missing
// header and a header without the Bearer prefix fail the same way.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return domainerrors.ErrMissingCredential
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		identity := &entity.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
		}

		// Expose the identity both on echo.Context for handlers and on
		// context.Context for anything below the delivery layer.
		deliverycontext.SetIdentity(c, identity)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
