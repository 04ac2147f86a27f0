package handler

import (
	"errors"
	"net/http"

	"github.com/ahmadqo/school-management-system/internal/middleware"
	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/response"
	"github.com/ahmadqo/school-management-system/internal/service"
	"github.com/ahmadqo/school-management-system/internal/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and issues a session token pair
// @Summary      Login
// @Description  Authenticate with role, username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      service.LoginRequest  true  "Login request"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	req.Username = utils.SanitizeString(req.Username)
	req.Role = utils.SanitizeString(req.Role)

	if req.Username == "" {
		errs["username"] = "Username is required"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	}
	if req.Role != "" && req.Role != string(model.RoleAdmin) && req.Role != string(model.RoleStudent) {
		errs["role"] = "Role must be admin or student"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(w, err.Error())
		case errors.Is(err, service.ErrStudentRecordNotFound):
			// Credential matched but no student row resolved.
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Server error")
		}
		return
	}

	response.Success(w, "Login successful", result)
}

// RefreshToken exchanges a refresh token for a new pair
// @Summary      Refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      service.RefreshTokenRequest  true  "Refresh request"
// @Success      200      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req service.RefreshTokenRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	if req.RefreshToken == "" {
		response.BadRequest(w, "Refresh token is required", nil)
		return
	}

	tokenPair, err := h.authService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	response.Success(w, "Token refreshed", tokenPair)
}

// Me returns the session identity carried by the token
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	response.Success(w, "Session retrieved", session)
}

// ChangePassword updates the caller's password
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChangePasswordRequest  true  "Change password request"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req model.ChangePasswordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	if req.CurrentPassword == "" {
		errs["current_password"] = "Current password is required"
	}
	if req.NewPassword == "" {
		errs["new_password"] = "New password is required"
	}
	if req.ConfirmPassword == "" {
		errs["confirm_password"] = "Password confirmation is required"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validation failed", errs)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), session.Username, req); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordConfirm),
			errors.Is(err, service.ErrPasswordIncorrect):
			response.BadRequest(w, err.Error(), nil)
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to change password")
		}
		return
	}

	response.Success(w, "Password changed successfully", nil)
}
