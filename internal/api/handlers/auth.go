package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adufour/goddit/internal/api/middleware"
	"github.com/adufour/goddit/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.authService.CreateSession(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, UserResponse{ID: userID.String(), Username: req.Username})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID, err := h.authService.VerifyCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.authService.CreateSession(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, UserResponse{ID: userID.String(), Username: req.Username})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{ID: user.ID.String(), Username: user.Username})
}

// Logout destroys every session the user holds, then clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.authService.DestroySession(r.Context(), user.ID); err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
