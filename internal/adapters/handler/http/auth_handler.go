package http

import (
	"net/http"

	"github.com/darkstate/cms/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Authenticates an administrator
// @Description  Verifies email and password, revokes any previous session and returns a fresh bearer token.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400
// @Failure      401
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Verify godoc
// @Summary      Resolves a bearer token
// @Description  Returns the public profile of the session owner.
// @Tags         auth
// @Success      200
// @Failure      401
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Verify(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Token is valid",
		User:    user,
	})
}

// Logout revokes the presented token. A token that is already gone still
// reports success; only a missing header is an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), bearerToken(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Logout successful",
	})
}
