package middleware

import (
	"strings"

	deliverycontext "fileshare/internal/delivery/context"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer credentials to users.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate rejects requests without a valid bearer credential and stores the user for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "authorization header is missing")
		}
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "authorization header is not a bearer token")
		}

		user, err := m.sessions.Authenticate(c.Request().Context(), strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				// A credential for a removed user is as good as no credential.
				return errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
			}

			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}
