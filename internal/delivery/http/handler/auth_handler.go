package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumedental/clinic-api/internal/delivery/dto"
	"github.com/lumedental/clinic-api/internal/delivery/http/middleware"
	"github.com/lumedental/clinic-api/internal/usecase"
	"github.com/lumedental/clinic-api/pkg/response"
	"github.com/lumedental/clinic-api/pkg/session"
	"github.com/lumedental/clinic-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	sessions    *session.Manager
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		sessions:    sessions,
	}
}

// Register creates a doctor/staff account and logs the caller in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUsernameExists:
			response.Conflict(w, "Username already exists")
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	cookie, err := h.sessions.Issue(r, user.ID, user.Username)
	if err != nil {
		response.InternalServerError(w, "Failed to establish session")
		return
	}
	http.SetCookie(w, cookie)

	response.Success(w, http.StatusCreated, "User registered successfully", user)
}

// Login authenticates and establishes a session cookie. Unknown users and
// wrong passwords get the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid username or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	cookie, err := h.sessions.Issue(r, user.ID, user.Username)
	if err != nil {
		response.InternalServerError(w, "Failed to establish session")
		return
	}
	http.SetCookie(w, cookie)

	response.Success(w, http.StatusOK, "Login successful", user)
}

// Logout revokes the server-side session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	if err := h.sessions.Revoke(r, claims); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}
	http.SetCookie(w, h.sessions.ClearCookie())

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

// CurrentUser returns the authenticated user's public projection.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	user, err := h.authUsecase.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.Unauthorized(w, "Not authenticated")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
