package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/schema"
	videosService "github.com/killallgit/annotator-api/internal/services/videos"
)

// ListVideos returns every video with its annotations
// @Summary      List videos
// @Description  List every video ordered by id. Annotations are attached unless annotations=false.
// @Tags         videos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        annotations query bool false "Attach annotations (default true)"
// @Success      200 {array} types.VideoWithAnnotations "Videos"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid API key"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /videos [get]
func ListVideos(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		withAnnotations := c.DefaultQuery("annotations", "true") != "false"

		list, err := deps.VideoService.ListVideos(c.Request.Context(), withAnnotations)
		if err != nil {
			deps.Log().WithError(err).Error("failed to list videos")
			types.SendInternalError(c, "Failed to fetch videos")
			return
		}

		if !withAnnotations {
			types.SendSuccess(c, list)
			return
		}

		response := make([]types.VideoWithAnnotations, 0, len(list))
		for _, video := range list {
			annotations := video.Annotations
			if annotations == nil {
				annotations = []models.Annotation{}
			}
			video.Annotations = nil
			response = append(response, types.VideoWithAnnotations{Video: video, Annotations: annotations})
		}
		types.SendSuccess(c, response)
	}
}

// CreateVideo creates a new video
// @Summary      Create video
// @Description  Create a video. Annotations attached to it must fit within durationInSec.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        video body schema.VideoInput true "Video data"
// @Success      201 {object} models.Video "Created video"
// @Failure      400 {object} types.ErrorResponse "Malformed JSON"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid API key"
// @Failure      422 {object} types.ErrorResponse "Validation failed"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /videos [post]
func CreateVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input schema.VideoInput
		if !types.BindSchema(c, &input) {
			return // Error response already sent by utility
		}

		video, err := deps.VideoService.CreateVideo(c.Request.Context(), input)
		if err != nil {
			deps.Log().WithError(err).Error("failed to create video")
			types.SendInternalError(c, "Failed to create video")
			return
		}

		types.SendCreated(c, video)
	}
}

// DeleteVideo deletes a video and its annotations
// @Summary      Delete video
// @Description  Delete a video together with all of its annotations
// @Tags         videos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        videoId path int true "Video ID"
// @Success      200 {object} types.MessageResponse "Video deleted successfully"
// @Failure      400 {object} types.ErrorResponse "Invalid video ID"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /videos/{videoId} [delete]
func DeleteVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := types.ParseUintParam(c, "videoId", "Video Id")
		if !ok {
			return
		}

		if err := deps.VideoService.DeleteVideo(c.Request.Context(), videoID); err != nil {
			if videosService.IsNotFound(err) {
				types.SendNotFound(c, "Video not found")
				return
			}
			deps.Log().WithError(err).WithField("video_id", videoID).Error("failed to delete video")
			types.SendInternalError(c, "Failed to delete video")
			return
		}

		types.SendMessage(c, "Video deleted successfully")
	}
}
