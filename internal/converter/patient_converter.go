package converter

import (
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:             p.ID,
		Name:           p.Name,
		PatientID:      p.PatientID,
		Age:            p.Age,
		Gender:         p.Gender,
		Phone:          p.Phone,
		Email:          p.Email,
		BloodType:      p.BloodType,
		LastVisit:      p.LastVisit,
		Status:         p.Status,
		Diagnosis:      p.Diagnosis,
		AssignedDoctor: p.AssignedDoctor,
	}
}

func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	out := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, *PatientToResponse(&patients[i]))
	}
	return out
}

// CreatePatientRequestToEntity builds a patient; the caller assigns the ID.
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	return &entity.Patient{
		Name:           req.Name,
		PatientID:      req.PatientID,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
		BloodType:      req.BloodType,
		LastVisit:      req.LastVisit,
		Status:         req.Status,
		Diagnosis:      req.Diagnosis,
		AssignedDoctor: req.AssignedDoctor,
	}
}

// ApplyPatientUpdate copies the non-nil fields of req onto p.
func ApplyPatientUpdate(p *entity.Patient, req *dto.UpdatePatientRequest) {
	setString(&p.Name, req.Name)
	setString(&p.PatientID, req.PatientID)
	if req.Age != nil {
		p.Age = *req.Age
	}
	setString(&p.Gender, req.Gender)
	setString(&p.Phone, req.Phone)
	setString(&p.Email, req.Email)
	setString(&p.BloodType, req.BloodType)
	setString(&p.LastVisit, req.LastVisit)
	setString(&p.Status, req.Status)
	setString(&p.Diagnosis, req.Diagnosis)
	setString(&p.AssignedDoctor, req.AssignedDoctor)
}

func PatientResponsesToEntities(in []dto.PatientResponse) []entity.Patient {
	out := make([]entity.Patient, 0, len(in))
	for _, p := range in {
		out = append(out, entity.Patient{
			ID:             p.ID,
			Name:           p.Name,
			PatientID:      p.PatientID,
			Age:            p.Age,
			Gender:         p.Gender,
			Phone:          p.Phone,
			Email:          p.Email,
			BloodType:      p.BloodType,
			LastVisit:      p.LastVisit,
			Status:         p.Status,
			Diagnosis:      p.Diagnosis,
			AssignedDoctor: p.AssignedDoctor,
		})
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
