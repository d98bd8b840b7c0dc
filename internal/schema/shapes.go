package schema

// VideoInput is the shape accepted when creating a video. The id is
// assigned by the store and ignored if sent.
type VideoInput struct {
	Title         string  `json:"title"`
	Link          string  `json:"link"`
	DurationInSec int     `json:"durationInSec" validate:"min=0"`
	Description   *string `json:"description"`
}

// AnnotationInput is the shape accepted when creating or updating an
// annotation. The video comes from the request path, never the body.
type AnnotationInput struct {
	StartTimeInSec int     `json:"startTimeInSec"`
	EndTimeInSec   int     `json:"endTimeInSec"`
	Type           string  `json:"type"`
	Notes          *string `json:"notes"`
}
