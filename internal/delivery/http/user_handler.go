package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/duongle/go-shop-backend/internal/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	_, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		slog.Error("Failed to register user", "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondJSON(w, http.StatusCreated, map[string]string{"message": "user registered successfully"})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case err != nil:
		slog.Error("Failed to log in user", "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	default:
		respondJSON(w, http.StatusOK, map[string]string{
			"message": "login successful",
			"token":   token,
		})
	}
}
