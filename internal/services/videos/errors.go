package videos

import "errors"

// ErrVideoNotFound is returned when no video has the requested id
var ErrVideoNotFound = errors.New("video not found")
