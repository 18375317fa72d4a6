package model

import "errors"

var (
	// ErrThreadNotFound indicates that the requested thread does not exist.
	ErrThreadNotFound = errors.New("review thread not found")
	// ErrInvalidSenderRole indicates a sender role outside author/reviewer.
	ErrInvalidSenderRole = errors.New("sender role must be author or reviewer")
	// ErrMissingContent indicates a message without content.
	ErrMissingContent = errors.New("message content is required")
)
