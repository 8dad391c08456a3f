package converter

import (
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          a.ID,
		PatientName: a.PatientName,
		PatientID:   a.PatientID,
		Doctor:      a.Doctor,
		Specialty:   a.Specialty,
		Date:        a.Date,
		Time:        a.Time,
		Duration:    a.Duration,
		Type:        a.Type,
		Status:      a.Status,
		Notes:       a.Notes,
	}
}

func AppointmentsToResponse(appointments []entity.Appointment) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, *AppointmentToResponse(&appointments[i]))
	}
	return out
}

func CreateAppointmentRequestToEntity(req *dto.CreateAppointmentRequest) *entity.Appointment {
	return &entity.Appointment{
		PatientName: req.PatientName,
		PatientID:   req.PatientID,
		Doctor:      req.Doctor,
		Specialty:   req.Specialty,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Type:        req.Type,
		Status:      entity.AppointmentStatusPending,
		Notes:       req.Notes,
	}
}

// ApplyAppointmentUpdate patches everything except the status, which only
// changes through confirm, cancel and complete.
func ApplyAppointmentUpdate(a *entity.Appointment, req *dto.UpdateAppointmentRequest) {
	setString(&a.PatientName, req.PatientName)
	setString(&a.PatientID, req.PatientID)
	setString(&a.Doctor, req.Doctor)
	setString(&a.Specialty, req.Specialty)
	setString(&a.Date, req.Date)
	setString(&a.Time, req.Time)
	if req.Duration != nil {
		a.Duration = *req.Duration
	}
	setString(&a.Type, req.Type)
	setString(&a.Notes, req.Notes)
}
