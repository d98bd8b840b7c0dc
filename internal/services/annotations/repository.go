package annotations

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/services/videos"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateAnnotation creates a new annotation in the database
func (r *RepositoryImpl) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	if err := r.db.WithContext(ctx).Create(annotation).Error; err != nil {
		// The video was deleted after the caller checked it
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return videos.ErrVideoNotFound
		}
		return fmt.Errorf("creating annotation: %w", err)
	}
	return nil
}

// GetAnnotationByID retrieves an annotation by its ID
func (r *RepositoryImpl) GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error) {
	if !models.IDInRange(id) {
		return nil, ErrAnnotationNotFound
	}

	var annotation models.Annotation
	if err := r.db.WithContext(ctx).First(&annotation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnotationNotFound
		}
		return nil, fmt.Errorf("getting annotation: %w", err)
	}
	return &annotation, nil
}

// GetAnnotationsByVideoID retrieves all annotations of a video ordered by start time
func (r *RepositoryImpl) GetAnnotationsByVideoID(ctx context.Context, videoID uint) ([]models.Annotation, error) {
	annotations := []models.Annotation{}
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("start_time_in_sec ASC, id ASC").
		Find(&annotations).Error; err != nil {
		return nil, fmt.Errorf("getting annotations for video: %w", err)
	}
	return annotations, nil
}

// UpdateAnnotation writes every field of an existing annotation
func (r *RepositoryImpl) UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	result := r.db.WithContext(ctx).
		Model(annotation).
		Select("video_id", "start_time_in_sec", "end_time_in_sec", "type", "notes", "updated_at").
		Updates(annotation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return videos.ErrVideoNotFound
		}
		return fmt.Errorf("updating annotation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAnnotationNotFound
	}
	return nil
}

// DeleteAnnotation deletes an annotation by its ID
func (r *RepositoryImpl) DeleteAnnotation(ctx context.Context, id uint) error {
	if !models.IDInRange(id) {
		return ErrAnnotationNotFound
	}
	result := r.db.WithContext(ctx).Delete(&models.Annotation{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting annotation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAnnotationNotFound
	}
	return nil
}
