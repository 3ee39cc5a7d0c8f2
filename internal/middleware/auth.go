package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/weallth/weallth-backend/internal/domain"
)

const (
	// UserKey is the echo context key for the authenticated user
	UserKey = "current_user"
	// TokenKey is the echo context key for the session token
	TokenKey = "session_token"
)

// SessionResolver resolves the user a session token identifies
type SessionResolver interface {
	CurrentUser(token string) (*domain.User, error)
}

// AuthMiddleware validates opaque session tokens issued by the session
// service and puts the resolved user on the request context
type AuthMiddleware struct {
	sessions SessionResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate returns an Echo middleware that requires a valid session
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return unauthorizedError(c, "Missing session token")
			}

			user, err := m.sessions.CurrentUser(token)
			if err != nil {
				log.Debug().Err(err).Msg("Session token rejected")
				return unauthorizedError(c, "Invalid or expired session")
			}

			c.Set(UserKey, user)
			c.Set(TokenKey, token)
			return next(c)
		}
	}
}

// OptionalAuthenticate resolves the session when a token is presented but
// lets anonymous requests through
func (m *AuthMiddleware) OptionalAuthenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token != "" {
				if user, err := m.sessions.CurrentUser(token); err == nil {
					c.Set(UserKey, user)
					c.Set(TokenKey, token)
				}
			}
			return next(c)
		}
	}
}

// GetCurrentUser returns the authenticated user from the context, or nil
func GetCurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserKey).(*domain.User)
	return user
}

// GetOwnerID returns the authenticated user's id, or "" when anonymous
func GetOwnerID(c echo.Context) string {
	if user := GetCurrentUser(c); user != nil {
		return user.ID
	}
	return ""
}

// GetSessionToken returns the session token from the context, or ""
func GetSessionToken(c echo.Context) string {
	token, _ := c.Get(TokenKey).(string)
	return token
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
