package handler

import (
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/weallth/weallth-backend/internal/domain"
	"github.com/weallth/weallth-backend/internal/middleware"
)

// newTestContext builds an echo context around an httptest recorder
func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser puts an authenticated user on the context, the way the session
// middleware would
func asUser(c echo.Context, id string) *domain.User {
	user := &domain.User{ID: id, Email: id + "@example.com", Username: id}
	c.Set(middleware.UserKey, user)
	c.Set(middleware.TokenKey, "token-"+id)
	return user
}
