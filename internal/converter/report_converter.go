package converter

import (
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

func ReportToResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	annotations := make([]dto.AnnotationResponse, 0, len(r.Annotations))
	for _, a := range r.Annotations {
		annotations = append(annotations, dto.AnnotationResponse{
			ID:      a.ID,
			Doctor:  a.Doctor,
			Date:    a.Date,
			Comment: a.Comment,
			Type:    a.Type,
		})
	}
	return &dto.ReportResponse{
		ID:              r.ID,
		PatientName:     r.PatientName,
		PatientID:       r.PatientID,
		DoctorName:      r.DoctorName,
		Department:      r.Department,
		ReportType:      r.ReportType,
		Date:            r.Date,
		Status:          r.Status,
		Priority:        r.Priority,
		Summary:         r.Summary,
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
		Annotations:     annotations,
		AIModel:         r.AIModel,
		Notes:           r.Notes,
		Content:         r.Content,
		Timestamp:       r.Timestamp,
		GeneratedBy:     r.GeneratedBy,
	}
}

func ReportsToResponse(reports []entity.Report) []dto.ReportResponse {
	out := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, *ReportToResponse(&reports[i]))
	}
	return out
}
