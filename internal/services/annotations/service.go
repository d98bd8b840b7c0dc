package annotations

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/schema"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	videos     VideoLookup
}

// NewService creates a new annotation service
func NewService(repository Repository, videos VideoLookup) Service {
	return &ServiceImpl{
		repository: repository,
		videos:     videos,
	}
}

// CreateAnnotation attaches a new annotation to an existing video
func (s *ServiceImpl) CreateAnnotation(ctx context.Context, videoID uint, input schema.AnnotationInput) (*models.Annotation, error) {
	video, err := s.videos.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := CheckBounds(input.StartTimeInSec, input.EndTimeInSec, video.DurationInSec); err != nil {
		return nil, err
	}

	annotation := &models.Annotation{
		VideoID:        videoID,
		StartTimeInSec: input.StartTimeInSec,
		EndTimeInSec:   input.EndTimeInSec,
		Type:           input.Type,
		Notes:          input.Notes,
	}
	if err := s.repository.CreateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

// ListAnnotations returns every annotation of an existing video
func (s *ServiceImpl) ListAnnotations(ctx context.Context, videoID uint) ([]models.Annotation, error) {
	if err := s.videos.VideoExists(ctx, videoID); err != nil {
		return nil, err
	}
	return s.repository.GetAnnotationsByVideoID(ctx, videoID)
}

// UpdateAnnotation replaces every client-supplied field of an annotation
func (s *ServiceImpl) UpdateAnnotation(ctx context.Context, videoID, annotationID uint, input schema.AnnotationInput) (*models.Annotation, error) {
	annotation, err := s.owned(ctx, videoID, annotationID)
	if err != nil {
		return nil, err
	}

	// An owned annotation always has a video, its duration bounds the new range
	video, err := s.videos.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := CheckBounds(input.StartTimeInSec, input.EndTimeInSec, video.DurationInSec); err != nil {
		return nil, err
	}

	annotation.VideoID = videoID
	annotation.StartTimeInSec = input.StartTimeInSec
	annotation.EndTimeInSec = input.EndTimeInSec
	annotation.Type = input.Type
	annotation.Notes = input.Notes

	if err := s.repository.UpdateAnnotation(ctx, annotation); err != nil {
		return nil, err
	}
	return annotation, nil
}

// DeleteAnnotation removes an annotation after checking it belongs to videoID
func (s *ServiceImpl) DeleteAnnotation(ctx context.Context, videoID, annotationID uint) error {
	if _, err := s.owned(ctx, videoID, annotationID); err != nil {
		return err
	}
	return s.repository.DeleteAnnotation(ctx, annotationID)
}

// owned loads the annotation and checks it belongs to videoID
func (s *ServiceImpl) owned(ctx context.Context, videoID, annotationID uint) (*models.Annotation, error) {
	annotation, err := s.repository.GetAnnotationByID(ctx, annotationID)
	if err != nil {
		return nil, err
	}
	if annotation.VideoID != videoID {
		return nil, ErrVideoMismatch
	}
	return annotation, nil
}

// CheckBounds returns an error wrapping ErrOutOfBounds unless 0 <= start <= end <= duration
func CheckBounds(start, end, duration int) error {
	if start < 0 || end < 0 || start > duration || end > duration || start > end {
		return fmt.Errorf("%w: range [%d, %d] outside [0, %d]", ErrOutOfBounds, start, end, duration)
	}
	return nil
}

// IsNotFound reports whether err means the annotation does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAnnotationNotFound)
}
