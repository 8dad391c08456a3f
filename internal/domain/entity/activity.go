package entity

import "time"

// Activity is an entry of the dashboard's recent activity feed.
type Activity struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Message    string    `json:"message"`
	EntityName string    `json:"entity"`
	EntityID   string    `json:"entityId,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Activity actions
const (
	ActivityUserRegister      = "user.register"
	ActivityUserLogin         = "user.login"
	ActivityPasswordReset     = "user.password_reset"
	ActivityEmailVerified     = "user.email_verified"
	ActivityPatientCreate     = "patient.create"
	ActivityPatientUpdate     = "patient.update"
	ActivityPatientDelete     = "patient.delete"
	ActivityPatientImport     = "patient.import"
	ActivityAppointmentCreate = "appointment.create"
	ActivityAppointmentUpdate = "appointment.update"
	ActivityAppointmentStatus = "appointment.status"
	ActivityTeamCreate        = "team.create"
	ActivityTeamUpdate        = "team.update"
	ActivityTeamDelete        = "team.delete"
	ActivityTeamImport        = "team.import"
	ActivityReportGenerate    = "report.generate"
	ActivityReportDraft       = "report.draft"
	ActivityReportAnnotate    = "report.annotate"
	ActivityReportApprove     = "report.approve"
	ActivityReportReject      = "report.reject"
	ActivityUpload            = "upload.create"
)
