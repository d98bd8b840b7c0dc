package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers video routes on the /videos group.
// Collection routes answer with and without a trailing slash.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	for _, path := range []string{"", "/"} {
		router.GET(path, ListVideos(deps))
		router.POST(path, CreateVideo(deps))
	}
	router.DELETE("/:videoId", DeleteVideo(deps))
}
