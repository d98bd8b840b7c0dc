package videos

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/annotator-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new video repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateVideo inserts the video and fills in its generated id
func (r *RepositoryImpl) CreateVideo(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

// GetVideoByID retrieves a video without its annotations
func (r *RepositoryImpl) GetVideoByID(ctx context.Context, id uint) (*models.Video, error) {
	if !models.IDInRange(id) {
		return nil, ErrVideoNotFound
	}

	var video models.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("getting video %d: %w", id, err)
	}
	return &video, nil
}

// ListVideos returns every video ordered by id
func (r *RepositoryImpl) ListVideos(ctx context.Context, withAnnotations bool) ([]models.Video, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if withAnnotations {
		query = query.Preload("Annotations", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time_in_sec ASC, id ASC")
		})
	}

	var videos []models.Video
	if err := query.Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}
	return videos, nil
}

// DeleteVideo deletes the video and its annotations in one transaction
func (r *RepositoryImpl) DeleteVideo(ctx context.Context, id uint) error {
	if !models.IDInRange(id) {
		return ErrVideoNotFound
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&models.Annotation{}).Error; err != nil {
			return fmt.Errorf("deleting annotations of video %d: %w", id, err)
		}

		result := tx.Delete(&models.Video{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting video %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrVideoNotFound
		}
		return nil
	})
}
