package types

import "github.com/killallgit/annotator-api/internal/models"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes one offending field of a rejected body
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse acknowledges a deletion
type MessageResponse struct {
	Message string `json:"message"`
}

// VideoWithAnnotations is a list entry of GET /videos; annotations is always an array
type VideoWithAnnotations struct {
	models.Video
	Annotations []models.Annotation `json:"annotations"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}

// VersionResponse for the root endpoint
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
