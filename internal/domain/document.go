package domain

import "time"

// Document is a stored supporting document such as an invoice photo.
type Document struct {
	Key         string    `json:"key"`
	OwnerID     int32     `json:"owner_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
