package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkstate/cms/internal/core/domain"
)

type stubAuthService struct {
	loginErr   error
	verifyUser *domain.User
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "token", &domain.User{Email: email}, nil
}

func (s *stubAuthService) Verify(_ context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	if s.verifyUser == nil {
		return nil, domain.ErrInvalidToken
	}
	return s.verifyUser, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}
	return nil
}

func doLogin(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestLoginFailureBodiesAreIdentical(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	unknownEmail := doLogin(t, handler, `{"email":"nobody@example.com","password":"pw"}`)
	wrongPassword := doLogin(t, handler, `{"email":"alice@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

	// Byte-for-byte the same so the response cannot leak which emails exist.
	assert.Equal(t, unknownEmail.Body.Bytes(), wrongPassword.Body.Bytes())
	assert.JSONEq(t, `{"success":false,"message":"Invalid email or password"}`, unknownEmail.Body.String())
}

func TestVerifyWithoutHeader(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	handler.Verify(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"No token provided"}`, rec.Body.String())
}

func TestLogoutWithUnknownTokenSucceeds(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer long-gone")
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Logout successful"}`, rec.Body.String())
}

func TestRequireSessionEnforced(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	user := &domain.User{Email: "alice@example.com"}
	mw := RequireSession(&stubAuthService{verifyUser: user}, true)(next)

	// No header
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/homepage/content", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token passes through and exposes the user to the handler
	var seen *domain.User
	inspect := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	mw = RequireSession(&stubAuthService{verifyUser: user}, true)(inspect)

	req := httptest.NewRequest(http.MethodPut, "/api/homepage/content", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice@example.com", seen.Email)
}

func TestRequireSessionDisabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "ok")
	})
	mw := RequireSession(&stubAuthService{}, false)(next)

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/homepage/content", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
