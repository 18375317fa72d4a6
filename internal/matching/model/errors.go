package model

import "errors"

var (
	// ErrInvalidAvailability indicates an unknown availability status value.
	ErrInvalidAvailability = errors.New("availability_status must be available, limited or unavailable")
)
