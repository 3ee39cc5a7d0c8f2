package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/weallth/weallth-backend/internal/service"
	"github.com/weallth/weallth-backend/internal/testutil"
)

func newAuthHandler() (*AuthHandler, *testutil.MockUserRepository) {
	repo := testutil.NewMockUserRepository()
	return NewAuthHandler(service.NewAuthService(repo)), repo
}

func TestRegisterEndpoint(t *testing.T) {
	h, _ := newAuthHandler()

	body := `{"email":"asha@example.com","username":"asha","password":"secret1"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.User.Email != "asha@example.com" {
		t.Errorf("expected asha@example.com, got %s", resp.User.Email)
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	h, _ := newAuthHandler()

	body := `{"email":"asha@example.com","username":"asha","password":"123"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "password" {
		t.Errorf("expected a password field error, got %+v", problem.Errors)
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	h, _ := newAuthHandler()

	body := `{"email":"asha@example.com","username":"asha","password":"secret1"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/auth/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	h, _ := newAuthHandler()

	register := `{"email":"asha@example.com","username":"asha","password":"secret1"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/auth/register", register)
	if err := h.Register(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	login := `{"email":"asha@example.com","password":"secret1"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/login", login)
	if err := h.Login(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	h, _ := newAuthHandler()

	login := `{"email":"asha@example.com","password":"wrong"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/login", login)
	if err := h.Login(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	h, repo := newAuthHandler()

	register := `{"email":"asha@example.com","username":"asha","password":"secret1"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/auth/register", register)
	if err := h.Register(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	c, rec := newTestContext(http.MethodPost, "/api/v1/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if repo.Session != nil {
		t.Error("expected stored session cleared")
	}
}

func TestMeEndpoint(t *testing.T) {
	h, _ := newAuthHandler()

	c, rec := newTestContext(http.MethodGet, "/api/v1/auth/me", "")
	asUser(c, "user-1")
	if err := h.Me(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.ID != "user-1" {
		t.Errorf("expected user-1, got %s", resp.ID)
	}

	c, rec = newTestContext(http.MethodGet, "/api/v1/auth/me", "")
	if err := h.Me(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a session, got %d", rec.Code)
	}
}
