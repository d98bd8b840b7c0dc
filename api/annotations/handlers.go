package annotations

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/schema"
	annotationsService "github.com/killallgit/annotator-api/internal/services/annotations"
	videosService "github.com/killallgit/annotator-api/internal/services/videos"
)

// GetAnnotations retrieves all annotations for a video
// @Summary      Get annotations for video
// @Description  Retrieve all annotations of a video, ordered by start time
// @Tags         annotations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        videoId path int true "Video ID"
// @Success      200 {array} models.Annotation "List of annotations"
// @Failure      400 {object} types.ErrorResponse "Invalid video ID"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /videos/{videoId}/annotations [get]
func GetAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := types.ParseUintParam(c, "videoId", "Video Id")
		if !ok {
			return // Error response already sent by utility
		}

		annotations, err := deps.AnnotationService.ListAnnotations(c.Request.Context(), videoID)
		if err != nil {
			sendError(c, deps, err, "Failed to fetch annotations")
			return
		}

		types.SendSuccess(c, annotations)
	}
}

// CreateAnnotation creates a new annotation for a video
// @Summary      Create annotation for video
// @Description  Attach a typed annotation to a time range that lies within the video's duration
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        videoId path int true "Video ID"
// @Param        annotation body schema.AnnotationInput true "Annotation data"
// @Success      201 {object} models.Annotation "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid ID, malformed JSON or out of bounds"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      422 {object} types.ErrorResponse "Validation failed"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /videos/{videoId}/annotations [post]
func CreateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := types.ParseUintParam(c, "videoId", "Video Id")
		if !ok {
			return
		}

		var input schema.AnnotationInput
		if !types.BindSchema(c, &input) {
			return
		}

		annotation, err := deps.AnnotationService.CreateAnnotation(c.Request.Context(), videoID, input)
		if err != nil {
			sendError(c, deps, err, "Failed to create annotation")
			return
		}

		types.SendCreated(c, annotation)
	}
}

// UpdateAnnotation replaces an existing annotation
// @Summary      Update annotation
// @Description  Replace the time range, type and notes of an annotation that belongs to the video
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        videoId path int true "Video ID"
// @Param        annotationId path int true "Annotation ID"
// @Param        annotation body schema.AnnotationInput true "Updated annotation data"
// @Success      200 {object} models.Annotation "Updated annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid ID, malformed JSON, out of bounds or wrong video"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      422 {object} types.ErrorResponse "Validation failed"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /videos/{videoId}/annotations/{annotationId} [put]
func UpdateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, annotationID, ok := parseIDs(c)
		if !ok {
			return
		}

		var input schema.AnnotationInput
		if !types.BindSchema(c, &input) {
			return
		}

		annotation, err := deps.AnnotationService.UpdateAnnotation(c.Request.Context(), videoID, annotationID, input)
		if err != nil {
			sendError(c, deps, err, "Failed to update annotation")
			return
		}

		types.SendSuccess(c, annotation)
	}
}

// DeleteAnnotation deletes an annotation
// @Summary      Delete annotation
// @Description  Delete an annotation that belongs to the video
// @Tags         annotations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        videoId path int true "Video ID"
// @Param        annotationId path int true "Annotation ID"
// @Success      200 {object} types.MessageResponse "Annotation deleted successfully"
// @Failure      400 {object} types.ErrorResponse "Invalid ID or wrong video"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} types.ErrorResponse "Annotation not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /videos/{videoId}/annotations/{annotationId} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, annotationID, ok := parseIDs(c)
		if !ok {
			return
		}

		if err := deps.AnnotationService.DeleteAnnotation(c.Request.Context(), videoID, annotationID); err != nil {
			sendError(c, deps, err, "Failed to delete annotation")
			return
		}

		types.SendMessage(c, "Annotation deleted successfully")
	}
}

func parseIDs(c *gin.Context) (uint, uint, bool) {
	videoID, ok := types.ParseUintParam(c, "videoId", "Video Id")
	if !ok {
		return 0, 0, false
	}
	annotationID, ok := types.ParseUintParam(c, "annotationId", "Annotation Id")
	if !ok {
		return 0, 0, false
	}
	return videoID, annotationID, true
}

// sendError maps service errors to responses; anything unknown is logged and hidden behind fallback
func sendError(c *gin.Context, deps *types.Dependencies, err error, fallback string) {
	switch {
	case videosService.IsNotFound(err):
		types.SendNotFound(c, "Video not found")
	case annotationsService.IsNotFound(err):
		types.SendNotFound(c, "Annotation not found")
	case errors.Is(err, annotationsService.ErrOutOfBounds):
		types.SendBadRequest(c, "Annotation is out of bounds of video duration")
	case errors.Is(err, annotationsService.ErrVideoMismatch):
		types.SendBadRequest(c, "Annotation does not belong to the specified video")
	default:
		deps.Log().WithError(err).WithField("path", c.Request.URL.Path).Error(fallback)
		types.SendInternalError(c, fallback)
	}
}
