package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTeamMemberRequest struct {
	Name         string   `json:"name" validate:"notblank,min=2"`
	Role         string   `json:"role" validate:"notblank"`
	Specialty    string   `json:"specialty"`
	Email        string   `json:"email" validate:"notblank,email_simple"`
	Phone        string   `json:"phone" validate:"omitempty,phone"`
	Status       string   `json:"status"`
	Experience   string   `json:"experience"`
	Patients     *int     `json:"patients" validate:"omitempty,gte=0"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Availability string   `json:"availability"`
	Department   string   `json:"department" validate:"notblank"`
}

type UpdateTeamMemberRequest struct {
	Name         *string  `json:"name" validate:"omitnil,notblank,min=2"`
	Role         *string  `json:"role" validate:"omitnil,notblank"`
	Specialty    *string  `json:"specialty"`
	Email        *string  `json:"email" validate:"omitempty,email_simple"`
	Phone        *string  `json:"phone" validate:"omitempty,phone"`
	Status       *string  `json:"status"`
	Experience   *string  `json:"experience"`
	Patients     *int     `json:"patients" validate:"omitempty,gte=0"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Availability *string  `json:"availability"`
	Department   *string  `json:"department" validate:"omitnil,notblank"`
}

type TeamMemberResponse struct {
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

// TeamStatsResponse carries ratings as one-decimal strings ("4.8").
type TeamStatsResponse struct {
	TotalMembers  int             `json:"totalMembers"`
	ActiveMembers int             `json:"activeMembers"`
	TotalPatients int             `json:"totalPatients"`
	AverageRating decimal.Decimal `json:"averageRating"`
}

type DepartmentPerformance struct {
	Department    string          `json:"department"`
	Members       int             `json:"members"`
	TotalPatients int             `json:"totalPatients"`
	AverageRating decimal.Decimal `json:"averageRating"`
}

type TeamExport struct {
	ExportDate  time.Time            `json:"exportDate"`
	TeamMembers []TeamMemberResponse `json:"teamMembers"`
}

type TeamImportRequest struct {
	TeamMembers *[]TeamMemberResponse `json:"teamMembers"`
}
