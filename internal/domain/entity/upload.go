package entity

import "time"

const (
	UploadKindImage = "image"
	UploadKindLab   = "lab"
)

// StoredFile describes an uploaded file kept in object storage.
type StoredFile struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	ObjectKey   string    `json:"objectKey"`
	PreviewKey  string    `json:"previewKey,omitempty"`
	Status      string    `json:"status"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
