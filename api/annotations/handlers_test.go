package annotations_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api/annotations"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/models"
	annotationsService "github.com/killallgit/annotator-api/internal/services/annotations"
	videosService "github.com/killallgit/annotator-api/internal/services/videos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AnnotationTestSuite struct {
	t      *testing.T
	db     *database.DB
	router *gin.Engine
}

func setupAnnotationTestSuite(t *testing.T) *AnnotationTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(), "Failed to migrate test database")
	t.Cleanup(func() { db.Close() })

	videoSvc := videosService.NewService(videosService.NewRepository(db.DB))
	deps := &types.Dependencies{
		DB:                db,
		VideoService:      videoSvc,
		AnnotationService: annotationsService.NewService(annotationsService.NewRepository(db.DB), videoSvc),
	}

	router := gin.New()
	annotations.RegisterRoutes(router.Group("/videos"), deps)

	return &AnnotationTestSuite{t: t, db: db, router: router}
}

func (suite *AnnotationTestSuite) createTestVideo(duration int) uint {
	video := models.Video{Title: "Test Video", Link: "https://example.com/v.mp4", DurationInSec: duration}
	require.NoError(suite.t, suite.db.Create(&video).Error, "Failed to create test video")
	return video.ID
}

func (suite *AnnotationTestSuite) createTestAnnotation(videoID uint, start, end int) uint {
	annotation := models.Annotation{VideoID: videoID, StartTimeInSec: start, EndTimeInSec: end, Type: "seed"}
	require.NoError(suite.t, suite.db.Create(&annotation).Error, "Failed to create test annotation")
	return annotation.ID
}

func (suite *AnnotationTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func errorBody(message string) string {
	return fmt.Sprintf(`{"error":%q}`, message)
}

func TestGetAnnotations(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	videoID := suite.createTestVideo(100)
	suite.createTestAnnotation(videoID, 40, 50)
	suite.createTestAnnotation(videoID, 10, 20)
	emptyVideoID := suite.createTestVideo(10)

	t.Run("ordered by start time", func(t *testing.T) {
		w := suite.do(http.MethodGet, fmt.Sprintf("/videos/%d/annotations", videoID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []models.Annotation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, 10, got[0].StartTimeInSec)
		assert.Equal(t, 40, got[1].StartTimeInSec)
	})

	t.Run("video without annotations", func(t *testing.T) {
		w := suite.do(http.MethodGet, fmt.Sprintf("/videos/%d/annotations", emptyVideoID), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("unknown video", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/videos/999/annotations", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, errorBody("Video not found"), w.Body.String())
	})

	t.Run("invalid video id", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/videos/abc/annotations", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, errorBody("Video Id must be a number"), w.Body.String())
	})
}

func TestCreateAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	videoID := suite.createTestVideo(100)
	path := fmt.Sprintf("/videos/%d/annotations", videoID)

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		validateFunc   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "successful creation",
			path:           path,
			body:           `{"startTimeInSec":0,"endTimeInSec":30,"type":"intro","notes":"opening"}`,
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var annotation models.Annotation
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &annotation))
				assert.NotZero(t, annotation.ID)
				assert.Equal(t, videoID, annotation.VideoID)
				assert.Equal(t, "intro", annotation.Type)
				require.NotNil(t, annotation.Notes)
				assert.Equal(t, "opening", *annotation.Notes)
			},
		},
		{
			name:           "body videoId is ignored",
			path:           path,
			body:           `{"videoId":999,"startTimeInSec":1,"endTimeInSec":2,"type":"x"}`,
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var annotation models.Annotation
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &annotation))
				assert.Equal(t, videoID, annotation.VideoID)
			},
		},
		{
			name:           "end past duration",
			path:           path,
			body:           `{"startTimeInSec":90,"endTimeInSec":120,"type":"x"}`,
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, errorBody("Annotation is out of bounds of video duration"), w.Body.String())
			},
		},
		{
			name:           "negative start",
			path:           path,
			body:           `{"startTimeInSec":-5,"endTimeInSec":10,"type":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "start after end",
			path:           path,
			body:           `{"startTimeInSec":50,"endTimeInSec":40,"type":"x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation failure",
			path:           path,
			body:           `{"startTimeInSec":"zero","endTimeInSec":10}`,
			expectedStatus: http.StatusUnprocessableEntity,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp types.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Validation failed", resp.Error)
				require.Len(t, resp.Details, 2)
				assert.Equal(t, "startTimeInSec", resp.Details[0].Field)
				assert.Equal(t, "type", resp.Details[1].Field)
			},
		},
		{
			name:           "malformed json",
			path:           path,
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown video",
			path:           "/videos/999/annotations",
			body:           `{"startTimeInSec":0,"endTimeInSec":1,"type":"x"}`,
			expectedStatus: http.StatusNotFound,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, errorBody("Video not found"), w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.validateFunc != nil {
				tt.validateFunc(t, w)
			}
		})
	}
}

func TestUpdateAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	videoID := suite.createTestVideo(100)
	otherVideoID := suite.createTestVideo(100)
	annotationID := suite.createTestAnnotation(videoID, 10, 20)
	otherAnnotationID := suite.createTestAnnotation(otherVideoID, 10, 20)

	tests := []struct {
		name           string
		path           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid annotation id",
			path:           fmt.Sprintf("/videos/%d/annotations/abc", videoID),
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("Annotation Id must be a number"),
		},
		{
			name:           "annotation not found",
			path:           fmt.Sprintf("/videos/%d/annotations/999", videoID),
			body:           `{"startTimeInSec":1,"endTimeInSec":2,"type":"x"}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   errorBody("Annotation not found"),
		},
		{
			name:           "annotation of another video",
			path:           fmt.Sprintf("/videos/%d/annotations/%d", videoID, otherAnnotationID),
			body:           `{"startTimeInSec":1,"endTimeInSec":2,"type":"x"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("Annotation does not belong to the specified video"),
		},
		{
			name:           "out of bounds",
			path:           fmt.Sprintf("/videos/%d/annotations/%d", videoID, annotationID),
			body:           `{"startTimeInSec":1,"endTimeInSec":200,"type":"x"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("Annotation is out of bounds of video duration"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.do(http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}

	t.Run("successful update", func(t *testing.T) {
		w := suite.do(http.MethodPut,
			fmt.Sprintf("/videos/%d/annotations/%d", videoID, annotationID),
			`{"startTimeInSec":30,"endTimeInSec":60,"type":"chapter","notes":null}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var annotation models.Annotation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &annotation))
		assert.Equal(t, annotationID, annotation.ID)
		assert.Equal(t, videoID, annotation.VideoID)
		assert.Equal(t, 30, annotation.StartTimeInSec)
		assert.Equal(t, "chapter", annotation.Type)

		var stored models.Annotation
		require.NoError(t, suite.db.First(&stored, annotationID).Error)
		assert.Equal(t, 60, stored.EndTimeInSec)
		assert.Equal(t, "chapter", stored.Type)
	})
}

func TestDeleteAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	videoID := suite.createTestVideo(100)
	otherVideoID := suite.createTestVideo(100)
	annotationID := suite.createTestAnnotation(videoID, 10, 20)
	otherAnnotationID := suite.createTestAnnotation(otherVideoID, 10, 20)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid video id",
			path:           "/videos/abc/annotations/1",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("Video Id must be a number"),
		},
		{
			name:           "annotation of another video",
			path:           fmt.Sprintf("/videos/%d/annotations/%d", videoID, otherAnnotationID),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("Annotation does not belong to the specified video"),
		},
		{
			name:           "successful deletion",
			path:           fmt.Sprintf("/videos/%d/annotations/%d", videoID, annotationID),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Annotation deleted successfully"}`,
		},
		{
			name:           "already deleted",
			path:           fmt.Sprintf("/videos/%d/annotations/%d", videoID, annotationID),
			expectedStatus: http.StatusNotFound,
			expectedBody:   errorBody("Annotation not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.do(http.MethodDelete, tt.path, "")
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}

	var remaining int64
	require.NoError(t, suite.db.Model(&models.Annotation{}).Where("video_id = ?", otherVideoID).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}
