package converter

import (
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

func ActivitiesToResponse(activities []entity.Activity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ActivityResponse{
			ID:        a.ID,
			Type:      a.Action,
			Message:   a.Message,
			Entity:    a.EntityName,
			EntityID:  a.EntityID,
			Actor:     a.Actor,
			Timestamp: a.Timestamp,
		})
	}
	return out
}
