package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Catalog errors
	ErrInvalidCatalog = fmt.Errorf("invalid catalog")
	ErrCourseNotFound = fmt.Errorf("course not found")
	ErrUnknownFormat  = fmt.Errorf("unknown catalog format")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Playback errors
	ErrPlayerUnavailable = fmt.Errorf("media player unavailable")
	ErrOutOfRange        = fmt.Errorf("index out of range")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
