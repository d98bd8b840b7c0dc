package videos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/killallgit/annotator-api/internal/logger"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/schema"
	"github.com/killallgit/annotator-api/internal/services/cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// loadTimeout bounds a shared lookup once it no longer follows its first caller's context
const loadTimeout = 10 * time.Second

// ServiceImpl implements the Service interface.
// Videos never change after creation, so single-video lookups may be served
// from a cache that is invalidated on delete. The memory backend is local to
// one process; run several instances against Redis or with the cache off.
type ServiceImpl struct {
	repository Repository
	cache      cache.Cache
	cacheTTL   time.Duration
	log        logrus.FieldLogger
	group      singleflight.Group

	// deletes counts DeleteVideo calls; a load that saw it change does not write back
	deletes atomic.Uint64
}

// Option configures the service
type Option func(*ServiceImpl)

// WithCache enables read-through caching of single-video lookups
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *ServiceImpl) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithLogger sets the logger used for cache failures
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *ServiceImpl) {
		s.log = log
	}
}

// NewService creates a new video service
func NewService(repository Repository, opts ...Option) *ServiceImpl {
	s := &ServiceImpl{
		repository: repository,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheKey returns the cache key of a video
func CacheKey(id uint) string {
	return fmt.Sprintf("video:%d", id)
}

// CreateVideo persists a validated video
func (s *ServiceImpl) CreateVideo(ctx context.Context, input schema.VideoInput) (*models.Video, error) {
	video := &models.Video{
		Title:         input.Title,
		Link:          input.Link,
		DurationInSec: input.DurationInSec,
		Description:   input.Description,
	}

	if err := s.repository.CreateVideo(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// GetVideo returns the video or ErrVideoNotFound
func (s *ServiceImpl) GetVideo(ctx context.Context, id uint) (*models.Video, error) {
	key := CacheKey(id)

	if video, ok := s.fromCache(ctx, key); ok {
		return video, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Callers joining this load must not fail because the first one went away
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		generation := s.deletes.Load()
		video, err := s.repository.GetVideoByID(loadCtx, id)
		if err != nil {
			return nil, err
		}
		s.toCache(loadCtx, key, video, generation)
		return video, nil
	})
	if err != nil {
		return nil, err
	}

	// Each caller gets its own copy of the shared result
	video := *result.(*models.Video)
	return &video, nil
}

// VideoExists reads the store directly and returns ErrVideoNotFound when the video is gone
func (s *ServiceImpl) VideoExists(ctx context.Context, id uint) error {
	_, err := s.repository.GetVideoByID(ctx, id)
	return err
}

// ListVideos returns every video, optionally with annotations attached
func (s *ServiceImpl) ListVideos(ctx context.Context, withAnnotations bool) ([]models.Video, error) {
	return s.repository.ListVideos(ctx, withAnnotations)
}

// DeleteVideo deletes the video and its annotations
func (s *ServiceImpl) DeleteVideo(ctx context.Context, id uint) error {
	if err := s.repository.DeleteVideo(ctx, id); err != nil {
		return err
	}

	key := CacheKey(id)
	s.deletes.Add(1)
	s.group.Forget(key)

	if s.cache != nil {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.WithError(err).WithField("video_id", id).Warn("failed to invalidate cached video")
		}
	}
	return nil
}

func (s *ServiceImpl) fromCache(ctx context.Context, key string) (*models.Video, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("video cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var video models.Video
	if err := json.Unmarshal(data, &video); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("discarding undecodable cached video")
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	return &video, true
}

// toCache stores video unless a delete happened since generation was read.
// The second check covers a delete that lands between the first check and Set.
func (s *ServiceImpl) toCache(ctx context.Context, key string, video *models.Video, generation uint64) {
	if s.cache == nil || s.deletes.Load() != generation {
		return
	}

	data, err := json.Marshal(video)
	if err == nil {
		err = s.cache.Set(ctx, key, data, s.cacheTTL)
	}
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("video cache write failed")
		return
	}

	if s.deletes.Load() != generation {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("failed to drop video cached during delete")
		}
	}
}

// IsNotFound reports whether err means the video does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVideoNotFound)
}
