package dto

import "time"

type StoredFileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	ObjectKey   string    `json:"objectKey"`
	PreviewKey  string    `json:"previewKey,omitempty"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type UploadResponse struct {
	Kind  string               `json:"kind"`
	Count int                  `json:"count"`
	Files []StoredFileResponse `json:"files"`
}
