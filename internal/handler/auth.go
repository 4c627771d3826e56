package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/recipefinder/recipefinder-go/internal/middleware"
	"github.com/recipefinder/recipefinder-go/internal/model"
	"github.com/recipefinder/recipefinder-go/internal/service"
)

// AuthHandler handles HTTP requests for registration, login, and the user
// profile.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	_, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case writeValidationError(w, err):
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, errorResponse("User with this email already exists"))
		default:
			slog.Error("registration failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to register user"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case writeValidationError(w, err):
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid email or password"))
		default:
			slog.Error("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to login"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleProfile handles GET /api/user/profile requests.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized: No token provided"))
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("User not found"))
			return
		}
		slog.Error("profile fetch failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to fetch profile"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdatePreferences handles PATCH /api/user/preferences requests.
func (h *AuthHandler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == 0 {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized: No token provided"))
		return
	}

	var req model.UpdatePreferencesRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.UpdatePreferences(r.Context(), userID, req)
	if err != nil {
		switch {
		case writeValidationError(w, err):
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("User not found"))
		default:
			slog.Error("preferences update failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to update preferences"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
