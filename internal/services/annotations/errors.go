package annotations

import "errors"

var (
	// ErrAnnotationNotFound is returned when no annotation has the requested id
	ErrAnnotationNotFound = errors.New("annotation not found")

	// ErrOutOfBounds is returned when an annotation's time range does not fit its video
	ErrOutOfBounds = errors.New("annotation is out of bounds of video duration")

	// ErrVideoMismatch is returned when an annotation is addressed through a video it does not belong to
	ErrVideoMismatch = errors.New("annotation does not belong to the specified video")
)
