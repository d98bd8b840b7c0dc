package types

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/internal/schema"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint.
// label names the parameter in the error message, e.g. "Video Id must be a number".
func ParseUintParam(c *gin.Context, paramName, label string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(paramName), 10, 64)
	if err != nil {
		SendBadRequest(c, label+" must be a number")
		return 0, false
	}
	return uint(value), true
}

// BindSchema reads the request body into one of the schema input shapes.
// Returns false and sends 400 for malformed JSON or 422 for validation failures.
func BindSchema(c *gin.Context, target interface{}) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
			return false
		}
		SendBadRequest(c, "Invalid request body")
		return false
	}

	if err := schema.Decode(body, target); err != nil {
		if verr, ok := schema.IsValidationError(err); ok {
			SendValidationFailed(c, verr)
			return false
		}
		SendBadRequest(c, "Invalid JSON body")
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// SendUnauthorized aborts the request with a 401 response
func SendUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// SendValidationFailed sends a 422 listing every offending field
func SendValidationFailed(c *gin.Context, verr *schema.ValidationError) {
	details := make([]FieldError, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		details = append(details, FieldError{Field: issue.Field, Message: issue.Message})
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "Validation failed",
		Details: details,
	})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SendMessage sends a 200 acknowledgement
func SendMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
