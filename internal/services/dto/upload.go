package dto

import "placement_backend/internal/models"

type UploadResponse struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

func ToUploadResponse(u *models.Upload) *UploadResponse {
	return &UploadResponse{
		ID:           u.ID,
		Kind:         u.Kind,
		OriginalName: u.OriginalName,
		MimeType:     u.MimeType,
		Size:         u.Size,
		URL:          u.URL,
	}
}
