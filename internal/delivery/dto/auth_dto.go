package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// SignupRequest mirrors the signup form. Field order is the order errors
// are reported in.
type SignupRequest struct {
	FirstName       string `json:"firstName" validate:"notblank,min=2"`
	LastName        string `json:"lastName" validate:"notblank,min=2"`
	Email           string `json:"email" validate:"notblank,email_simple"`
	Password        string `json:"password" validate:"notblank,min=8,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"notblank,eqfield=Password"`
	Role            string `json:"role" validate:"notblank,oneof=patient doctor lab"`
	Phone           string `json:"phone" validate:"notblank,phone"`
	DateOfBirth     string `json:"dateOfBirth" validate:"notblank,dob"`
	Specialization  string `json:"specialization" validate:"required_if=Role doctor"`
	LicenseNumber   string `json:"licenseNumber" validate:"required_if=Role doctor"`
	Organization    string `json:"organization" validate:"required_if=Role lab"`
	TermsAccepted   bool   `json:"termsAccepted" validate:"eq=true"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"notblank,email_simple"`
	Password   string `json:"password" validate:"notblank,min=6"`
	RememberMe bool   `json:"rememberMe"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"notblank,email_simple"`
}

type PasswordResetConfirmRequest struct {
	Token           string `json:"token" validate:"notblank"`
	NewPassword     string `json:"newPassword" validate:"notblank,min=8,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"notblank,eqfield=NewPassword"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"notblank"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"notblank,email_simple"`
}

// Response DTOs

type TokenResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn"`
	User         *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone,omitempty"`
	DateOfBirth    string    `json:"dateOfBirth,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	LicenseNumber  string    `json:"licenseNumber,omitempty"`
	Organization   string    `json:"organization,omitempty"`
	EmailVerified  bool      `json:"emailVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TokenStatusResponse answers the pages' auth status check.
type TokenStatusResponse struct {
	Valid  bool      `json:"valid"`
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}
