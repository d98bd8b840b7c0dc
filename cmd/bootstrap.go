package cmd

import (
	"context"
	"fmt"

	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/cache"
	"github.com/killallgit/annotator-api/internal/services/videos"
	"github.com/killallgit/annotator-api/pkg/config"
	"github.com/sirupsen/logrus"
)

// services bundles what the API and the seeder need
type services struct {
	videos      videos.Service
	annotations annotations.Service
	cache       cache.Cache
}

func (s *services) Close() error {
	if s.cache != nil {
		return s.cache.Close()
	}
	return nil
}

// openDatabase connects and brings the schema up to date
func openDatabase(cfg config.DatabaseConfig, migrate bool) (*database.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := db.AutoMigrate(); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// newCache builds the configured video cache, or nil when caching is off
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Driver {
	case "", "memory":
		return cache.NewMemoryCache(cfg.MaxSizeMB), nil
	case "redis":
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   "annotator:",
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver: %q", cfg.Driver)
	}
}

// buildServices wires repositories, cache and services together
func buildServices(ctx context.Context, cfg *config.Config, db *database.DB, log logrus.FieldLogger) (*services, error) {
	c, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}

	opts := []videos.Option{videos.WithLogger(log)}
	if c != nil {
		ttl := cfg.Cache.TTL
		if ttl <= 0 {
			ttl = cache.DefaultTTL
		}
		opts = append(opts, videos.WithCache(c, ttl))
	}

	videoSvc := videos.NewService(videos.NewRepository(db.DB), opts...)
	return &services{
		videos:      videoSvc,
		annotations: annotations.NewService(annotations.NewRepository(db.DB), videoSvc),
		cache:       c,
	}, nil
}
