package entity

// Role names carried in tokens and stored on users.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleLab     = "lab"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RolePatient, RoleLab:
		return true
	}
	return false
}
