package annotations

import (
	"context"
	"errors"
	"testing"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/schema"
	"github.com/killallgit/annotator-api/internal/services/videos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	args := m.Called(ctx, annotation)
	return args.Error(0)
}

func (m *MockRepository) GetAnnotationByID(ctx context.Context, id uint) (*models.Annotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Annotation), args.Error(1)
}

func (m *MockRepository) GetAnnotationsByVideoID(ctx context.Context, videoID uint) ([]models.Annotation, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Annotation), args.Error(1)
}

func (m *MockRepository) UpdateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	args := m.Called(ctx, annotation)
	return args.Error(0)
}

func (m *MockRepository) DeleteAnnotation(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVideos is a mock implementation of the VideoLookup interface
type MockVideos struct {
	mock.Mock
}

func (m *MockVideos) GetVideo(ctx context.Context, id uint) (*models.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideos) VideoExists(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantErr    bool
	}{
		{name: "inside", start: 10, end: 20},
		{name: "whole video", start: 0, end: 100},
		{name: "zero length", start: 50, end: 50},
		{name: "negative start", start: -1, end: 20, wantErr: true},
		{name: "negative end", start: 0, end: -1, wantErr: true},
		{name: "start past duration", start: 101, end: 101, wantErr: true},
		{name: "end past duration", start: 90, end: 101, wantErr: true},
		{name: "start after end", start: 30, end: 20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBounds(tt.start, tt.end, 100)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutOfBounds)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServiceImpl_CreateAnnotation(t *testing.T) {
	ctx := context.Background()
	video := &models.Video{ID: 1, DurationInSec: 100}

	t.Run("creates annotation for the video", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		notes := "intro"
		mockVideos.On("GetVideo", ctx, uint(1)).Return(video, nil)
		mockRepo.On("CreateAnnotation", ctx, mock.AnythingOfType("*models.Annotation")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Annotation).ID = 11
			}).
			Return(nil)

		annotation, err := service.CreateAnnotation(ctx, 1, schema.AnnotationInput{
			StartTimeInSec: 5, EndTimeInSec: 15, Type: "scene", Notes: &notes,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(11), annotation.ID)
		assert.Equal(t, uint(1), annotation.VideoID)
		assert.Equal(t, "scene", annotation.Type)
		assert.Equal(t, &notes, annotation.Notes)

		mockRepo.AssertExpectations(t)
		mockVideos.AssertExpectations(t)
	})

	t.Run("missing video", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		mockVideos.On("GetVideo", ctx, uint(2)).Return(nil, videos.ErrVideoNotFound)

		_, err := service.CreateAnnotation(ctx, 2, schema.AnnotationInput{EndTimeInSec: 1})
		assert.ErrorIs(t, err, videos.ErrVideoNotFound)
		mockRepo.AssertNotCalled(t, "CreateAnnotation")
	})

	t.Run("out of bounds", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		mockVideos.On("GetVideo", ctx, uint(1)).Return(video, nil)

		_, err := service.CreateAnnotation(ctx, 1, schema.AnnotationInput{StartTimeInSec: 90, EndTimeInSec: 120})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		mockRepo.AssertNotCalled(t, "CreateAnnotation")
	})

	t.Run("handles repository error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		expectedErr := errors.New("database error")
		mockVideos.On("GetVideo", ctx, uint(1)).Return(video, nil)
		mockRepo.On("CreateAnnotation", ctx, mock.AnythingOfType("*models.Annotation")).Return(expectedErr)

		_, err := service.CreateAnnotation(ctx, 1, schema.AnnotationInput{EndTimeInSec: 1})
		assert.Equal(t, expectedErr, err)
	})
}

func TestServiceImpl_ListAnnotations(t *testing.T) {
	ctx := context.Background()

	t.Run("lists annotations of an existing video", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		mockVideos.On("VideoExists", ctx, uint(1)).Return(nil)
		mockRepo.On("GetAnnotationsByVideoID", ctx, uint(1)).Return([]models.Annotation{{ID: 1}, {ID: 2}}, nil)

		got, err := service.ListAnnotations(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("missing video", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		mockVideos.On("VideoExists", ctx, uint(3)).Return(videos.ErrVideoNotFound)

		_, err := service.ListAnnotations(ctx, 3)
		assert.ErrorIs(t, err, videos.ErrVideoNotFound)
		mockRepo.AssertNotCalled(t, "GetAnnotationsByVideoID")
		mockVideos.AssertNotCalled(t, "GetVideo", mock.Anything, mock.Anything)
	})
}

func TestServiceImpl_UpdateAnnotation(t *testing.T) {
	ctx := context.Background()
	input := schema.AnnotationInput{StartTimeInSec: 20, EndTimeInSec: 30, Type: "updated"}

	t.Run("replaces every field", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		oldNotes := "old"
		existing := &models.Annotation{ID: 5, VideoID: 1, StartTimeInSec: 1, EndTimeInSec: 2, Type: "old", Notes: &oldNotes}
		mockRepo.On("GetAnnotationByID", ctx, uint(5)).Return(existing, nil)
		mockVideos.On("GetVideo", ctx, uint(1)).Return(&models.Video{ID: 1, DurationInSec: 60}, nil)
		mockRepo.On("UpdateAnnotation", ctx, existing).Return(nil)

		updated, err := service.UpdateAnnotation(ctx, 1, 5, input)
		require.NoError(t, err)
		assert.Equal(t, 20, updated.StartTimeInSec)
		assert.Equal(t, 30, updated.EndTimeInSec)
		assert.Equal(t, "updated", updated.Type)
		assert.Nil(t, updated.Notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("annotation not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		mockRepo.On("GetAnnotationByID", ctx, uint(5)).Return(nil, ErrAnnotationNotFound)

		_, err := service.UpdateAnnotation(ctx, 1, 5, input)
		assert.True(t, IsNotFound(err))
		mockVideos.AssertNotCalled(t, "GetVideo")
	})

	t.Run("annotation of another video", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		mockRepo.On("GetAnnotationByID", ctx, uint(5)).Return(&models.Annotation{ID: 5, VideoID: 2}, nil)

		_, err := service.UpdateAnnotation(ctx, 1, 5, input)
		assert.ErrorIs(t, err, ErrVideoMismatch)
		mockRepo.AssertNotCalled(t, "UpdateAnnotation")
	})

	t.Run("out of bounds", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockVideos := new(MockVideos)
		service := NewService(mockRepo, mockVideos)

		mockRepo.On("GetAnnotationByID", ctx, uint(5)).Return(&models.Annotation{ID: 5, VideoID: 1}, nil)
		mockVideos.On("GetVideo", ctx, uint(1)).Return(&models.Video{ID: 1, DurationInSec: 25}, nil)

		_, err := service.UpdateAnnotation(ctx, 1, 5, input)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		mockRepo.AssertNotCalled(t, "UpdateAnnotation")
	})
}

func TestServiceImpl_DeleteAnnotation(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes owned annotation", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockVideos))

		mockRepo.On("GetAnnotationByID", ctx, uint(5)).Return(&models.Annotation{ID: 5, VideoID: 1}, nil)
		mockRepo.On("DeleteAnnotation", ctx, uint(5)).Return(nil)

		require.NoError(t, service.DeleteAnnotation(ctx, 1, 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("annotation of another video", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockVideos))

		mockRepo.On("GetAnnotationByID", ctx, uint(5)).Return(&models.Annotation{ID: 5, VideoID: 2}, nil)

		assert.ErrorIs(t, service.DeleteAnnotation(ctx, 1, 5), ErrVideoMismatch)
		mockRepo.AssertNotCalled(t, "DeleteAnnotation")
	})

	t.Run("annotation not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, new(MockVideos))

		mockRepo.On("GetAnnotationByID", ctx, uint(5)).Return(nil, ErrAnnotationNotFound)

		assert.True(t, IsNotFound(service.DeleteAnnotation(ctx, 1, 5)))
	})
}
