package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weallth/weallth-backend/internal/domain"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// AuthService is the session/identity collaborator: it registers users,
// issues opaque session tokens, and resolves the current user for a token.
// The password scheme is deliberately a plain digest, mirroring the
// original client-side store; it is not a security boundary.
type AuthService struct {
	userRepo domain.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a user and opens a session for it
func (s *AuthService) Register(email, username, password string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.openSession(user)
}

// Login verifies credentials and opens a session
func (s *AuthService) Login(email, password string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}
	if user.PasswordHash != hashPassword(password) {
		return nil, domain.ErrBadCredentials
	}
	return s.openSession(user)
}

// Logout clears the stored session
func (s *AuthService) Logout() error {
	return s.userRepo.ClearSession()
}

// CurrentUser resolves the user a token identifies. Returns
// domain.ErrNotAuthenticated for an unknown or stale token.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	session, err := s.userRepo.CurrentSession()
	if err != nil {
		return nil, err
	}
	if session.Token != token {
		return nil, domain.ErrNotAuthenticated
	}
	return session.User, nil
}

func (s *AuthService) openSession(user *domain.User) (*domain.Session, error) {
	// The session user is stored without the password digest
	sanitized := *user
	sanitized.PasswordHash = ""

	session := &domain.Session{
		Token: uuid.New().String(),
		User:  &sanitized,
	}
	if err := s.userRepo.SaveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
