package annotations

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/schema"
)

// Repository defines the interface for annotation data access
type Repository interface {
	// Create operations
	CreateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Read operations
	GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error)
	GetAnnotationsByVideoID(ctx context.Context, videoID uint) ([]models.Annotation, error)

	// Update operations
	UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Delete operations
	DeleteAnnotation(ctx context.Context, id uint) error
}

// VideoLookup resolves the video an annotation is bounded by.
// GetVideo may be served from a cache; VideoExists always reads the store.
type VideoLookup interface {
	GetVideo(ctx context.Context, id uint) (*models.Video, error)
	VideoExists(ctx context.Context, id uint) error
}

// Service defines the interface for annotation business logic.
// Create and list fail with videos.ErrVideoNotFound when the video is missing.
type Service interface {
	CreateAnnotation(ctx context.Context, videoID uint, input schema.AnnotationInput) (*models.Annotation, error)
	ListAnnotations(ctx context.Context, videoID uint) ([]models.Annotation, error)
	UpdateAnnotation(ctx context.Context, videoID, annotationID uint, input schema.AnnotationInput) (*models.Annotation, error)
	DeleteAnnotation(ctx context.Context, videoID, annotationID uint) error
}
