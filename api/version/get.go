package version

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// Name is reported by the root endpoint
const Name = "Video Annotation API"

// Get handles version requests
// @Summary      Service version
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       / [get]
func Get(version string) gin.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	return func(c *gin.Context) {
		types.SendSuccess(c, types.VersionResponse{Name: Name, Version: version})
	}
}
