package handler

import (
	"encoding/json"
	"net/http"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
	"edoc-portal/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetAllPatients handles listing patients
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param status query string false "Active, Inactive or all"
// @Param q query string false "Search text"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context(), listQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients, &response.Meta{Total: len(patients)})
}

// GetPatient handles getting a patient by ID
// @Summary Get patient by ID
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// CreatePatient handles adding a patient
// @Summary Add a patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to add patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient added successfully!", patient)
}

// UpdatePatient handles patching a patient
// @Summary Update a patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully!", patient)
}

// DeletePatient handles deleting a patient
// @Summary Delete a patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to delete patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully!", nil)
}

// GetPatientStats handles the patient counters
// @Summary Patient statistics
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients/stats [get]
func (h *PatientHandler) GetPatientStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.patientUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patient statistics")
		return
	}

	response.Success(w, http.StatusOK, "Patient statistics retrieved successfully", stats)
}

// ExportPatients handles downloading all patients as JSON
// @Summary Export patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.PatientExport
// @Router /patients/export [get]
func (h *PatientHandler) ExportPatients(w http.ResponseWriter, r *http.Request) {
	export, err := h.patientUsecase.Export(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to export data")
		return
	}

	writeExport(w, "patients", export)
}

// ImportPatients handles replacing the patient list from an export file
// @Summary Import patients
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PatientImportRequest true "Patient export file"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients/import [post]
func (h *PatientHandler) ImportPatients(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Error importing data", nil)
		return
	}

	count, err := h.patientUsecase.Import(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidImport:
			response.Error(w, http.StatusBadRequest, "Invalid file format", nil)
		default:
			response.InternalServerError(w, "Error importing data")
		}
		return
	}

	response.Success(w, http.StatusOK, "Data imported successfully!", map[string]int{"imported": count})
}
