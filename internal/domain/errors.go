package domain

import "errors"

var (
	// ErrInvalidRange reports a date range whose end precedes its start.
	ErrInvalidRange = errors.New("end date before start date")

	// ErrInvalidZoomLevel reports an unrecognized zoom level. This is a
	// programming error, not a user input condition.
	ErrInvalidZoomLevel = errors.New("invalid zoom level")

	ErrMissingID       = errors.New("item id is required")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")

	// ErrDependencyCycle reports a cycle in the dependency graph, detected
	// at data-entry time before items are persisted.
	ErrDependencyCycle = errors.New("dependency cycle")
)
