package models

import "time"

// BlobRef points at one stored blob on the remote store.
type BlobRef struct {
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadResponse is the remote store's answer to a successful upload.
type UploadResponse struct {
	URL string `json:"url"`
}
