package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service status and database connectivity
// @Tags         system
// @Produce      json
// @Success      200 {object} object{status=string,timestamp=string,database=object{status=string}} "Service healthy"
// @Failure      503 {object} object{status=string,timestamp=string,database=object{status=string,error=string}} "Database unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		database := getDatabaseStatus(deps)
		response["database"] = database
		if database["status"] == "unhealthy" {
			status = http.StatusServiceUnavailable
			response["status"] = "degraded"
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
