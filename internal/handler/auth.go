package handler

import (
	"errors"
	"net/http"

	"github.com/planora/planora-go/internal/middleware"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication and profiles.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/v1/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		var ve *model.ValidationError
		switch {
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		case errors.Is(err, service.ErrDuplicateIdentity):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			serverError(w, "register", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		serverError(w, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/v1/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		serverError(w, "me", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdateMe handles PATCH /api/v1/auth/me requests. Only profile
// fields are writable; the password hash cannot be changed here.
func (h *AuthHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.UpdateProfileRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		var ve *model.ValidationError
		switch {
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrDuplicateIdentity):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			serverError(w, "update profile", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
