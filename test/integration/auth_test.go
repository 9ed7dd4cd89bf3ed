package integration

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")

	// Login
	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful", envelope["message"])

	token, _ := envelope["token"].(string)
	require.Len(t, token, 64)

	user, _ := envelope["user"].(map[string]any)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user["email"])
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash, "password hash must never be returned")

	// Verify
	resp, envelope = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Token is valid", envelope["message"])

	// A second login rotates the session and kills the first token.
	second := login(t, app, "alice@example.com", "s3cret!")
	require.NotEqual(t, token, second)

	resp, envelope = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/auth/verify", token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", envelope["message"])

	resp, _ = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/auth/verify", second, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout, twice. The second call is a no-op but still succeeds.
	for range 2 {
		resp, envelope = doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/auth/logout", second, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Logout successful", envelope["message"])
	}

	resp, _ = doJSON(t, app.Client, http.MethodGet, app.Server.URL+"/api/auth/verify", second, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejections(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	createAdmin(t, app.DB, "Alice", "alice@example.com", "s3cret!")

	readBody := func(body string) string {
		resp, err := app.Client.Post(app.Server.URL+"/api/auth/login", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(raw)
	}

	unknownEmail := readBody(`{"email":"nobody@example.com","password":"s3cret!"}`)
	wrongPassword := readBody(`{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, unknownEmail, wrongPassword, "failure bodies must be identical")

	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/auth/login", "", map[string]string{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email and password are required", envelope["message"])
}

func TestLogoutWithoutHeader(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/auth/logout", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token provided", envelope["message"])
}
