package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/middleware"
	"github.com/weallth/weallth-backend/internal/service"
)

// AuthHandler handles registration, login, and session introspection
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the register request body
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse represents an opened session in API responses
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	session, err := h.authService.Register(req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "email", Message: "Email is required"}})
		case errors.Is(err, service.ErrUsernameRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "username", Message: "Username is required"}})
		case errors.Is(err, service.ErrPasswordTooShort):
			return NewValidationError(c, "Validation failed", []ValidationError{{Field: "password", Message: "Password must be at least 6 characters"}})
		case errors.Is(err, domain.ErrEmailTaken):
			return NewConflictError(c, "An account with this email already exists")
		}
		log.Error().Err(err).Msg("Failed to register user")
		return NewInternalError(c, "Failed to register")
	}

	log.Info().Str("user_id", session.User.ID).Msg("User registered")
	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	session, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			return NewUnauthorizedError(c, "Invalid email or password")
		}
		log.Error().Err(err).Msg("Failed to log in user")
		return NewInternalError(c, "Failed to log in")
	}

	log.Info().Str("user_id", session.User.ID).Msg("User logged in")
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(); err != nil {
		log.Error().Err(err).Msg("Failed to clear session")
		return NewInternalError(c, "Failed to log out")
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return NewUnauthorizedError(c, "Session required")
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

func toSessionResponse(session *domain.Session) SessionResponse {
	return SessionResponse{
		Token: session.Token,
		User:  toUserResponse(session.User),
	}
}
