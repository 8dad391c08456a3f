package converter

import (
	"strings"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

const defaultRating = 5.0

func TeamMemberToResponse(m *entity.TeamMember) *dto.TeamMemberResponse {
	if m == nil {
		return nil
	}
	return &dto.TeamMemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		Specialty:    m.Specialty,
		Email:        m.Email,
		Phone:        m.Phone,
		Avatar:       m.Avatar,
		Status:       m.Status,
		Experience:   m.Experience,
		Patients:     m.Patients,
		Rating:       m.Rating,
		Availability: m.Availability,
		Department:   m.Department,
	}
}

func TeamMembersToResponse(members []entity.TeamMember) []dto.TeamMemberResponse {
	out := make([]dto.TeamMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *TeamMemberToResponse(&members[i]))
	}
	return out
}

func CreateTeamMemberRequestToEntity(req *dto.CreateTeamMemberRequest) *entity.TeamMember {
	m := &entity.TeamMember{
		Name:         req.Name,
		Role:         req.Role,
		Specialty:    req.Specialty,
		Email:        req.Email,
		Phone:        req.Phone,
		Avatar:       Initials(req.Name),
		Status:       req.Status,
		Experience:   req.Experience,
		Rating:       defaultRating,
		Availability: req.Availability,
		Department:   req.Department,
	}
	if m.Status == "" {
		m.Status = entity.TeamStatusActive
	}
	if req.Patients != nil {
		m.Patients = *req.Patients
	}
	if req.Rating != nil {
		m.Rating = *req.Rating
	}
	return m
}

func ApplyTeamMemberUpdate(m *entity.TeamMember, req *dto.UpdateTeamMemberRequest) {
	if req.Name != nil {
		m.Name = *req.Name
		m.Avatar = Initials(*req.Name)
	}
	setString(&m.Role, req.Role)
	setString(&m.Specialty, req.Specialty)
	setString(&m.Email, req.Email)
	setString(&m.Phone, req.Phone)
	setString(&m.Status, req.Status)
	setString(&m.Experience, req.Experience)
	if req.Patients != nil {
		m.Patients = *req.Patients
	}
	if req.Rating != nil {
		m.Rating = *req.Rating
	}
	setString(&m.Availability, req.Availability)
	setString(&m.Department, req.Department)
}

func TeamMemberResponsesToEntities(in []dto.TeamMemberResponse) []entity.TeamMember {
	out := make([]entity.TeamMember, 0, len(in))
	for _, m := range in {
		out = append(out, entity.TeamMember{
			ID:           m.ID,
			Name:         m.Name,
			Role:         m.Role,
			Specialty:    m.Specialty,
			Email:        m.Email,
			Phone:        m.Phone,
			Avatar:       m.Avatar,
			Status:       m.Status,
			Experience:   m.Experience,
			Patients:     m.Patients,
			Rating:       m.Rating,
			Availability: m.Availability,
			Department:   m.Department,
		})
	}
	return out
}

// Initials returns the uppercased first letter of every word of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return b.String()
}
