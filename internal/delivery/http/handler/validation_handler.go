package handler

import (
	"encoding/json"
	"net/http"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/pkg/response"
	"edoc-portal/pkg/validator"

	"github.com/gorilla/mux"
)

// ValidationHandler lets the pages validate forms with the same rules the
// API enforces.
type ValidationHandler struct {
	validator *validator.CustomValidator
}

func NewValidationHandler(validator *validator.CustomValidator) *ValidationHandler {
	return &ValidationHandler{validator: validator}
}

func newForm(name string) (interface{}, bool) {
	switch name {
	case dto.FormSignup:
		return &dto.SignupRequest{}, true
	case dto.FormLogin:
		return &dto.LoginRequest{}, true
	case dto.FormContact:
		return &dto.ContactRequest{}, true
	}
	return nil, false
}

// ValidateForm checks a whole form and lists every violated rule.
// @Summary Validate a form
// @Tags Validation
// @Accept json
// @Produce json
// @Param form path string true "signup, login or contact"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /validate/{form} [post]
func (h *ValidationHandler) ValidateForm(w http.ResponseWriter, r *http.Request) {
	form, ok := newForm(mux.Vars(r)["form"])
	if !ok {
		response.NotFound(w, "Unknown form")
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.validator.ValidateForm(fields, form)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form values", nil)
		return
	}

	response.Success(w, http.StatusOK, "Form validated", result)
}

// ValidateField checks one field the way the pages do on blur. Password
// checks also report the strength meter value.
// @Summary Validate a single field
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.FieldValidationRequest true "Field Validation Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /validate/field [post]
func (h *ValidationHandler) ValidateField(w http.ResponseWriter, r *http.Request) {
	var req dto.FieldValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	formName := req.Form
	if formName == "" {
		formName = dto.FormSignup
	}
	form, ok := newForm(formName)
	if !ok {
		response.NotFound(w, "Unknown form")
		return
	}

	msg, err := h.validator.ValidateField(req.Fields, form, req.Field)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form values", nil)
		return
	}

	result := dto.FieldValidationResponse{
		Field:   req.Field,
		Valid:   msg == "",
		Message: msg,
	}
	if req.Field == "password" {
		result.Strength = validator.PasswordStrength(req.Fields["password"])
	}

	response.Success(w, http.StatusOK, "Field validated", result)
}
