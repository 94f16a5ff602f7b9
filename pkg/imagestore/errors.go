package imagestore

import "errors"

var (
	// ErrNotFound is returned when no object exists at the path
	ErrNotFound = errors.New("image not found")

	// ErrInvalidPath is returned for empty paths or paths escaping the storage root
	ErrInvalidPath = errors.New("invalid image path")

	// ErrInvalidConfig is returned when a backend is misconfigured
	ErrInvalidConfig = errors.New("invalid storage configuration")

	// ErrFailedToLoadConfig is returned when the AWS configuration cannot be loaded
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	// ErrAccessDenied is returned when the backend refuses access to an object
	ErrAccessDenied = errors.New("access denied")

	// ErrStorage wraps any other backend failure
	ErrStorage = errors.New("storage operation failed")
)
