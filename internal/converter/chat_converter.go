package converter

import (
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

func ChatEntriesToResponse(entries []entity.ChatEntry) []dto.ChatEntryResponse {
	out := make([]dto.ChatEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ChatEntryResponse{
			SessionID:   e.SessionID,
			Timestamp:   e.Timestamp,
			UserMessage: e.UserMessage,
			AIResponse:  e.AIResponse,
		})
	}
	return out
}
