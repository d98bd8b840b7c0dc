package types

import (
	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/logger"
	"github.com/killallgit/annotator-api/internal/services/annotations"
	"github.com/killallgit/annotator-api/internal/services/videos"
	"github.com/sirupsen/logrus"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	VideoService      videos.Service
	AnnotationService annotations.Service
	Logger            logrus.FieldLogger
	Version           string
}

// Log returns the configured logger or one that discards everything
func (d *Dependencies) Log() logrus.FieldLogger {
	if d == nil || d.Logger == nil {
		return logger.Discard()
	}
	return d.Logger
}
