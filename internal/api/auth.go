package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/auth"
	"github.com/erazemk/zavetisce/internal/model"
)

// AuthHandler handles registration, login, logout and the caller's own
// account.
type AuthHandler struct {
	handler
	Issuer *auth.Issuer
}

type loginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.User
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("user registered", zap.String("user", user.ID), zap.String("remote", r.RemoteAddr))
	jsonResponse(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Role == "" {
		jsonError(w, http.StatusBadRequest, "email and role required")
		return
	}

	user, err := h.svc.Authenticate(r.Context(), req.Email, req.Role)
	if errors.Is(err, model.ErrNotFound) {
		h.log.Warn("login failed", zap.String("email", req.Email), zap.String("remote", r.RemoteAddr))
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	token, _, err := h.Issuer.Issue(user)
	if err != nil {
		h.log.Error("failed to issue token", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	h.log.Info("user logged in", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.svc.RevokeToken(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("user logged out", zap.String("user", claims.UserID))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.svc.GetUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, user)
}
