package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidTag is returned when a tag is not one of the known effort tags.
	ErrInvalidTag = errors.New("invalid task tag")
)
