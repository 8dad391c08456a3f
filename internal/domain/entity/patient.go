package entity

const (
	PatientStatusActive   = "Active"
	PatientStatusInactive = "Inactive"
)

type Patient struct {
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

// SearchFields are the values matched by free-text search.
func (p Patient) SearchFields() []string {
	return []string{p.Name, p.PatientID, p.Email, p.Phone, p.Diagnosis, p.AssignedDoctor}
}
