package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// formMessages holds the portal wording for a field/tag pair. {param} is
// replaced with the rule parameter.
var formMessages = map[string]string{
	"firstName.notblank":          "First name is required",
	"firstName.min":               "First name must be at least {param} characters long",
	"lastName.notblank":           "Last name is required",
	"lastName.min":                "Last name must be at least {param} characters long",
	"email.notblank":              "Email is required",
	"email.email_simple":          "Please enter a valid email address",
	"password.notblank":           "Password is required",
	"password.min":                "Password must be at least {param} characters long",
	"password.strong_password":    "Password is too weak. Please choose a stronger password.",
	"confirmPassword.notblank":    "Please confirm your password",
	"confirmPassword.eqfield":     "Passwords do not match",
	"role.notblank":               "Please select a role",
	"role.oneof":                  "Please select a role",
	"phone.notblank":              "Phone number is required",
	"phone.phone":                 "Please enter a valid phone number",
	"dateOfBirth.notblank":        "Date of birth is required",
	"dateOfBirth.dob":             "Please enter a valid date of birth",
	"specialization.required_if":  "Specialization is required for doctors",
	"licenseNumber.required_if":   "Medical license number is required for doctors",
	"organization.required_if":    "Organization name is required for lab technicians",
	"termsAccepted.eq":            "Please accept the terms and conditions to continue.",
	"patientName.notblank":        "Patient name is required",
	"reportType.notblank":         "Report type is required",
	"comment.notblank":            "Please enter a comment",
	"reason.notblank":             "Please provide a reason for rejection",
	"message.notblank":            "Message is required",
	"name.notblank":               "Name is required",
	"token.notblank":              "Token is required",
	"newPassword.notblank":        "New password is required",
	"newPassword.min":             "Password must be at least {param} characters long",
	"newPassword.strong_password": "Password is too weak. Please choose a stronger password.",
}

// inlineMessages override formMessages for single-field checks.
var inlineMessages = map[string]string{
	"password.strong_password": "Password is too weak",
}

func message(e validator.FieldError) string {
	if msg, ok := formMessages[e.Field()+"."+e.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", e.Param())
	}
	return genericMessage(e)
}

func fieldMessage(e validator.FieldError) string {
	if msg, ok := inlineMessages[e.Field()+"."+e.Tag()]; ok {
		return msg
	}
	return message(e)
}

func genericMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required", "notblank", "required_if":
		return field + " is required"
	case "email", "email_simple":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + e.Param() + " characters"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "lte":
		return field + " must be less than or equal to " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	case "phone":
		return field + " must be a valid phone number"
	case "iso_date", "dob":
		return field + " must be a valid date (YYYY-MM-DD)"
	default:
		return field + " is invalid"
	}
}
