package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/annotator-api/api/annotations"
	"github.com/killallgit/annotator-api/api/health"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/api/version"
	"github.com/killallgit/annotator-api/api/videos"
	_ "github.com/killallgit/annotator-api/docs/swagger"
	"github.com/killallgit/annotator-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if deps == nil || deps.VideoService == nil || deps.AnnotationService == nil {
		return fmt.Errorf("video and annotation services are required")
	}

	// Register public routes (no key, no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Every /videos route is behind the key gate, which runs before any validation
	header := cfg.Auth.Header
	if header == "" {
		header = "x-api-key"
	}
	videosGroup := engine.Group("/videos")
	videosGroup.Use(APIKeyAuth(header, cfg.Auth.APIKey))
	if cfg.RateLimiting.Enabled {
		rps, burst := cfg.RateLimiting.RPS, cfg.RateLimiting.Burst
		if rps <= 0 || burst <= 0 {
			rps, burst = 10, 20
		}
		videosGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}

	videos.RegisterRoutes(videosGroup, deps)
	annotations.RegisterRoutes(videosGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "The requested endpoint was not found",
			"path":  c.Request.URL.Path,
		})
	}
}
