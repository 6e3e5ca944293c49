package models

import "errors"

var (
	// ErrInvalidCoordinateFormat is returned when a latitude or longitude is not a finite number
	ErrInvalidCoordinateFormat = errors.New("invalid coordinate format")
	// ErrOutOfBounds is returned when a coordinate is outside the valid earth range
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidRole is returned for roles other than driver or rider
	ErrInvalidRole = errors.New("invalid role")

	ErrStoreUnavailable = errors.New("store unavailable")
	ErrActorNotFound    = errors.New("actor not found")
	ErrEpisodeNotFound  = errors.New("emergency episode not found")
	ErrDeliveryFailed   = errors.New("delivery failed")
)

// IsValidationError reports whether err was caused by bad fix input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCoordinateFormat) || errors.Is(err, ErrOutOfBounds)
}
