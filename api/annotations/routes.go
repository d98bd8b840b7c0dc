package annotations

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers annotation routes nested under the /videos group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	annotationsGroup := router.Group("/:videoId/annotations")
	{
		for _, path := range []string{"", "/"} {
			annotationsGroup.GET(path, GetAnnotations(deps))
			annotationsGroup.POST(path, CreateAnnotation(deps))
		}
		annotationsGroup.PUT("/:annotationId", UpdateAnnotation(deps))
		annotationsGroup.DELETE("/:annotationId", DeleteAnnotation(deps))
	}
}
