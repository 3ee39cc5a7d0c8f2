package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/weallth/weallth-backend/internal/domain"
)

type stubSessionResolver struct {
	token string
	user  *domain.User
}

func (s *stubSessionResolver) CurrentUser(token string) (*domain.User, error) {
	if s.user != nil && token == s.token {
		return s.user, nil
	}
	return nil, domain.ErrNotAuthenticated
}

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate(t *testing.T) {
	resolver := &stubSessionResolver{
		token: "tok-1",
		user:  &domain.User{ID: "u-1", Email: "asha@example.com"},
	}
	mw := NewAuthMiddleware(resolver).Authenticate()

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return nil
	})

	c, _ := newAuthContext("Bearer tok-1")
	if err := handler(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !called {
		t.Fatal("expected next handler to run")
	}
	if GetOwnerID(c) != "u-1" {
		t.Errorf("expected owner u-1, got %q", GetOwnerID(c))
	}
	if GetSessionToken(c) != "tok-1" {
		t.Errorf("expected token tok-1, got %q", GetSessionToken(c))
	}
}

func TestAuthenticateRejects(t *testing.T) {
	resolver := &stubSessionResolver{
		token: "tok-1",
		user:  &domain.User{ID: "u-1"},
	}
	mw := NewAuthMiddleware(resolver).Authenticate()

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic tok-1"},
		{"stale token", "Bearer tok-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := mw(func(c echo.Context) error {
				called = true
				return nil
			})

			c, rec := newAuthContext(tt.authorization)
			if err := handler(c); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if called {
				t.Error("expected next handler not to run")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	resolver := &stubSessionResolver{
		token: "tok-1",
		user:  &domain.User{ID: "u-1"},
	}
	mw := NewAuthMiddleware(resolver).OptionalAuthenticate()

	handler := mw(func(c echo.Context) error { return nil })

	// Anonymous requests pass through with no user
	c, _ := newAuthContext("")
	if err := handler(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if GetCurrentUser(c) != nil {
		t.Error("expected no user for an anonymous request")
	}

	// A stale token is ignored rather than rejected
	c, rec := newAuthContext("Bearer tok-2")
	if err := handler(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code == http.StatusUnauthorized {
		t.Error("expected stale token to pass through anonymously")
	}
	if GetCurrentUser(c) != nil {
		t.Error("expected no user for a stale token")
	}

	// A valid token attaches the user
	c, _ = newAuthContext("Bearer tok-1")
	if err := handler(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if GetOwnerID(c) != "u-1" {
		t.Errorf("expected owner u-1, got %q", GetOwnerID(c))
	}
}
