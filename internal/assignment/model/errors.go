package model

import "errors"

var (
	// ErrAssignmentNotFound indicates that the assignment does not exist.
	ErrAssignmentNotFound = errors.New("reviewer assignment not found")
	// ErrNotAssignmentOwner indicates the actor is not the assigned reviewer.
	ErrNotAssignmentOwner = errors.New("actor is not the assigned reviewer")
	// ErrInvalidResponse indicates an unknown invitation response value.
	ErrInvalidResponse = errors.New("response must be accepted or declined")
	// ErrMissingReviewer indicates an assign call without a reviewer id.
	ErrMissingReviewer = errors.New("reviewer_id is required")
)
