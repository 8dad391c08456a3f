package handler

import (
	"encoding/json"
	"net/http"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/delivery/http/middleware"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
	"edoc-portal/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register handles user registration
// @Summary Register a new account
// @Description Register a patient, doctor or lab account from the signup form
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Account created successfully! Please sign in.", user)
}

// Login handles user login
// @Summary Login user
// @Description Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid email or password", nil)
		case usecase.ErrAccountLocked:
			response.Error(w, http.StatusTooManyRequests, "Too many failed login attempts. Please try again later.", nil)
		case usecase.ErrAccountInactive:
			response.Forbidden(w, "Account is inactive")
		case usecase.ErrEmailNotVerified:
			response.Forbidden(w, "Please verify your email before signing in")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// Logout handles user logout
// @Summary Logout user
// @Description Revoke the access token and, when given, the refresh token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// The body is optional.
	var req dto.LogoutRequest
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID, req.RefreshToken); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Error(w, http.StatusUnauthorized, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// ValidateToken reports whether the bearer token is still valid. The auth
// middleware has already rejected invalid tokens when this runs.
// @Summary Check auth status
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/validate [get]
func (h *AuthHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	email, _ := middleware.GetUserEmailFromContext(r.Context())
	role, _ := middleware.GetRoleFromContext(r.Context())

	response.Success(w, http.StatusOK, "Token is valid", dto.TokenStatusResponse{
		Valid:  true,
		UserID: userID,
		Email:  email,
		Role:   role,
	})
}

// LogoutAll handles signing out of every session
// @Summary Logout from all devices
// @Description Revoke every access and refresh token of the user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.LogoutAll(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logged out from all sessions", nil)
}

// RequestPasswordReset handles the forgot password form
// @Summary Request a password reset
// @Description Email a reset link. The answer is the same whether or not the account exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Password Reset Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dto.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	if err := h.authUsecase.RequestPasswordReset(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to send password reset email.")
		return
	}

	response.Success(w, http.StatusOK, "Password reset instructions sent to your email.", nil)
}

// ConfirmPasswordReset handles the reset password form
// @Summary Reset password
// @Description Set a new password with the emailed token. Every session is signed out.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetConfirmRequest true "Password Reset Confirm Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dto.PasswordResetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	if err := h.authUsecase.ConfirmPasswordReset(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrInvalidToken:
			response.Error(w, http.StatusBadRequest, "Invalid or expired reset link", nil)
		default:
			response.InternalServerError(w, "Failed to reset password.")
		}
		return
	}

	response.Success(w, http.StatusOK, "Password reset successful! You can now login with your new password.", nil)
}

// VerifyEmail handles the emailed verification link
// @Summary Verify email address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyEmailRequest true "Verify Email Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	user, err := h.authUsecase.VerifyEmail(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken:
			response.Error(w, http.StatusBadRequest, "Invalid or expired verification link", nil)
		default:
			response.InternalServerError(w, "Failed to verify email.")
		}
		return
	}

	response.Success(w, http.StatusOK, "Email verified successfully! You can now login.", user)
}

// ResendVerification handles requests for a new verification email
// @Summary Resend verification email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResendVerificationRequest true "Resend Verification Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req dto.ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	if err := h.authUsecase.ResendVerification(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to send verification email.")
		return
	}

	response.Success(w, http.StatusOK, "Verification email sent! Please check your inbox.", nil)
}
