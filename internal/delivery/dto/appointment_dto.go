package dto

import (
	"time"

	"edoc-portal/internal/domain/entity"
)

type CreateAppointmentRequest struct {
	PatientName string `json:"patientName" validate:"notblank"`
	PatientID   string `json:"patientId" validate:"notblank"`
	Doctor      string `json:"doctor" validate:"notblank"`
	Specialty   string `json:"specialty"`
	Date        string `json:"date" validate:"notblank,iso_date"`
	Time        string `json:"time" validate:"notblank,datetime=15:04"`
	Duration    int    `json:"duration" validate:"gte=0,lte=480"`
	Type        string `json:"type" validate:"notblank"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientName *string `json:"patientName" validate:"omitnil,notblank"`
	PatientID   *string `json:"patientId" validate:"omitnil,notblank"`
	Doctor      *string `json:"doctor" validate:"omitnil,notblank"`
	Specialty   *string `json:"specialty"`
	Date        *string `json:"date" validate:"omitnil,iso_date"`
	Time        *string `json:"time" validate:"omitnil,datetime=15:04"`
	Duration    *int    `json:"duration" validate:"omitempty,gte=0,lte=480"`
	Type        *string `json:"type" validate:"omitnil,notblank"`
	Notes       *string `json:"notes"`
}

type AppointmentResponse struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patientName"`
	PatientID   string `json:"patientId"`
	Doctor      string `json:"doctor"`
	Specialty   string `json:"specialty,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type AppointmentStatsResponse struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

type CalendarResponse struct {
	Month  string                            `json:"month"`
	Events map[string][]entity.CalendarEvent `json:"events"`
}

type AppointmentExport struct {
	ExportDate   time.Time             `json:"exportDate"`
	Appointments []AppointmentResponse `json:"appointments"`
}
