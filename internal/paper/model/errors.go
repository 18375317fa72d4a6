package model

import "errors"

var (
	// ErrPaperNotFound indicates that the requested paper does not exist.
	ErrPaperNotFound = errors.New("paper not found")
	// ErrInvalidTransition indicates a status change the lifecycle forbids.
	ErrInvalidTransition = errors.New("invalid paper status transition")
	// ErrMissingTitle indicates a paper submitted without a title.
	ErrMissingTitle = errors.New("title is required")
	// ErrAdminOnly indicates the operation requires the admin role.
	ErrAdminOnly = errors.New("operation requires admin role")
)
