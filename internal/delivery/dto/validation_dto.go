package dto

// Form names accepted by the validation endpoints.
const (
	FormSignup  = "signup"
	FormLogin   = "login"
	FormContact = "contact"
)

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,email_simple"`
	Message string `json:"message" validate:"notblank"`
}

type FieldValidationRequest struct {
	Form   string            `json:"form"`
	Field  string            `json:"field" validate:"required"`
	Fields map[string]string `json:"fields"`
}

type FieldValidationResponse struct {
	Field    string `json:"field"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
	Strength string `json:"strength,omitempty"`
}
