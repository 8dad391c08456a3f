package converter

import (
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
)

func StoredFilesToResponse(kind string, files []entity.StoredFile) *dto.UploadResponse {
	out := make([]dto.StoredFileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, dto.StoredFileResponse{
			ID:          f.ID,
			Name:        f.Name,
			ContentType: f.ContentType,
			Size:        f.Size,
			ObjectKey:   f.ObjectKey,
			PreviewKey:  f.PreviewKey,
			Status:      f.Status,
			UploadedAt:  f.UploadedAt,
		})
	}
	return &dto.UploadResponse{Kind: kind, Count: len(out), Files: out}
}
