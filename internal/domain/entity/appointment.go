package entity

const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusConfirmed = "Confirmed"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

type Appointment struct {
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

func (a Appointment) SearchFields() []string {
	return []string{a.PatientName, a.PatientID, a.Doctor, a.Specialty, a.Type}
}

// CalendarEvent is an appointment as shown on the month calendar.
type CalendarEvent struct {
	Date  string `json:"date"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Time  string `json:"time"`
}
