package videos

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/schema"
)

// Repository defines the interface for video data access
type Repository interface {
	CreateVideo(ctx context.Context, video *models.Video) error
	GetVideoByID(ctx context.Context, id uint) (*models.Video, error)
	ListVideos(ctx context.Context, withAnnotations bool) ([]models.Video, error)

	// DeleteVideo removes the video and its annotations
	DeleteVideo(ctx context.Context, id uint) error
}

// Service defines the interface for video business logic
type Service interface {
	CreateVideo(ctx context.Context, input schema.VideoInput) (*models.Video, error)
	GetVideo(ctx context.Context, id uint) (*models.Video, error)
	VideoExists(ctx context.Context, id uint) error
	ListVideos(ctx context.Context, withAnnotations bool) ([]models.Video, error)
	DeleteVideo(ctx context.Context, id uint) error
}
