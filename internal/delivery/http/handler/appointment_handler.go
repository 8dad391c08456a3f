package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/response"
	"edoc-portal/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetAllAppointments handles listing appointments
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param status query string false "all, upcoming, pending, confirmed, completed or cancelled"
// @Param q query string false "Search text"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.List(r.Context(), listQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, &response.Meta{Total: len(appointments)})
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// CreateAppointment handles booking an appointment
// @Summary Create an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully!", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Messages(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully!", appointment)
}

// ConfirmAppointment handles confirming a pending appointment
// @Summary Confirm an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/confirm [post]
func (h *AppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.appointmentUsecase.Confirm, "Appointment confirmed!")
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.appointmentUsecase.Cancel, "Appointment cancelled")
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.appointmentUsecase.Complete, "Appointment marked as completed")
}

type statusChange = func(ctx context.Context, id int64) (*dto.AppointmentResponse, error)

func (h *AppointmentHandler) changeStatus(w http.ResponseWriter, r *http.Request, change statusChange, message string) {
	id, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := change(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, message, appointment)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrAppointmentNotPending, usecase.ErrAppointmentCancelled, usecase.ErrInvalidStatusTransition:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *AppointmentHandler) GetAppointmentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.appointmentUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment statistics")
		return
	}

	response.Success(w, http.StatusOK, "Appointment statistics retrieved successfully", stats)
}

// GetCalendar handles the month view
// @Summary Appointment calendar
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments/calendar [get]
func (h *AppointmentHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.appointmentUsecase.Calendar(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidMonth:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get calendar")
		}
		return
	}

	response.Success(w, http.StatusOK, "Calendar retrieved successfully", calendar)
}

func (h *AppointmentHandler) ExportAppointments(w http.ResponseWriter, r *http.Request) {
	export, err := h.appointmentUsecase.Export(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to export appointments")
		return
	}

	writeExport(w, "appointments", export)
}
