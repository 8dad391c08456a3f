package dto

import "time"

type CreatePatientRequest struct {
	Name           string `json:"name" validate:"notblank,min=2"`
	PatientID      string `json:"patientId" validate:"notblank"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Gender         string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone          string `json:"phone" validate:"omitempty,phone"`
	Email          string `json:"email" validate:"omitempty,email_simple"`
	BloodType      string `json:"bloodType"`
	LastVisit      string `json:"lastVisit" validate:"omitempty,iso_date"`
	Status         string `json:"status" validate:"notblank,oneof=Active Inactive"`
	Diagnosis      string `json:"diagnosis"`
	AssignedDoctor string `json:"assignedDoctor"`
}

// UpdatePatientRequest is a partial patch; nil fields are left unchanged.
type UpdatePatientRequest struct {
	Name           *string `json:"name" validate:"omitnil,notblank,min=2"`
	PatientID      *string `json:"patientId" validate:"omitnil,notblank"`
	Age            *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone          *string `json:"phone" validate:"omitempty,phone"`
	Email          *string `json:"email" validate:"omitempty,email_simple"`
	BloodType      *string `json:"bloodType"`
	LastVisit      *string `json:"lastVisit" validate:"omitempty,iso_date"`
	Status         *string `json:"status" validate:"omitnil,oneof=Active Inactive"`
	Diagnosis      *string `json:"diagnosis"`
	AssignedDoctor *string `json:"assignedDoctor"`
}

type PatientResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PatientID      string `json:"patientId"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BloodType      string `json:"bloodType"`
	LastVisit      string `json:"lastVisit"`
	Status         string `json:"status"`
	Diagnosis      string `json:"diagnosis"`
	AssignedDoctor string `json:"assignedDoctor"`
}

type PatientStatsResponse struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Inactive     int `json:"inactive"`
	NewThisMonth int `json:"newThisMonth"`
}

type PatientExport struct {
	ExportDate time.Time         `json:"exportDate"`
	Patients   []PatientResponse `json:"patients"`
}

// PatientImportRequest must carry a patients array; a missing key is
// rejected rather than treated as an empty list.
type PatientImportRequest struct {
	Patients *[]PatientResponse `json:"patients"`
}
