package dto

import "time"

// ReportFilter is read from the list query string.
type ReportFilter struct {
	Status    string `json:"status"`
	DateRange string `json:"dateRange"`
	Doctor    string `json:"doctor"`
	Query     string `json:"q"`
}

type GenerateReportRequest struct {
	PatientName string `json:"patientName" validate:"notblank"`
	PatientID   string `json:"patientId"`
	ReportType  string `json:"reportType" validate:"notblank"`
	AIModel     string `json:"aiModel"`
	Priority    string `json:"priority" validate:"omitempty,oneof=high medium low normal urgent"`
	Department  string `json:"department"`
	Notes       string `json:"notes"`
}

type AnnotateReportRequest struct {
	Comment string `json:"comment" validate:"notblank"`
	Type    string `json:"type" validate:"omitempty,oneof=review correction additional approval"`
}

type RejectReportRequest struct {
	Reason string `json:"reason" validate:"notblank"`
}

type AnnotationResponse struct {
	ID      int    `json:"id"`
	Doctor  string `json:"doctor"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
	Type    string `json:"type"`
}

type ReportResponse struct {
	ID              string               `json:"id"`
	PatientName     string               `json:"patientName"`
	PatientID       string               `json:"patientId"`
	DoctorName      string               `json:"doctorName,omitempty"`
	Department      string               `json:"department,omitempty"`
	ReportType      string               `json:"reportType"`
	Date            string               `json:"date"`
	Status          string               `json:"status"`
	Priority        string               `json:"priority,omitempty"`
	Summary         string               `json:"summary,omitempty"`
	Findings        string               `json:"findings,omitempty"`
	Recommendations string               `json:"recommendations,omitempty"`
	Annotations     []AnnotationResponse `json:"annotations"`
	AIModel         string               `json:"aiModel,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	Content         string               `json:"content,omitempty"`
	Timestamp       string               `json:"timestamp,omitempty"`
	GeneratedBy     string               `json:"generatedBy,omitempty"`
}

type ReportExport struct {
	ExportDate time.Time        `json:"exportDate"`
	Filters    ReportFilter     `json:"filters"`
	Reports    []ReportResponse `json:"reports"`
}

// ReportDownload is the plain-text rendering of a report.
type ReportDownload struct {
	Filename string
	Body     string
}
