package entity

const (
	TeamStatusActive   = "Active"
	TeamStatusInactive = "Inactive"
	TeamStatusOnLeave  = "On Leave"
)

type TeamMember struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Specialty    string  `json:"specialty"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Avatar       string  `json:"avatar"`
	Status       string  `json:"status"`
	Experience   string  `json:"experience"`
	Patients     int     `json:"patients"`
	Rating       float64 `json:"rating"`
	Availability string  `json:"availability"`
	Department   string  `json:"department"`
}

func (m TeamMember) SearchFields() []string {
	return []string{m.Name, m.Role, m.Specialty, m.Department, m.Email}
}
