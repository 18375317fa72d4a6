package model

import "errors"

var (
	// ErrReviewNotFound indicates that the requested review does not exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrNotAssigned indicates the reviewer has no assignment on the paper.
	ErrNotAssigned = errors.New("reviewer is not assigned to this paper")
	// ErrMissingContent indicates a review without content.
	ErrMissingContent = errors.New("review content is required")
	// ErrInvalidRecommendation indicates an unknown recommendation value.
	ErrInvalidRecommendation = errors.New("recommendation must be accept, minor_revisions, major_revisions or reject")
	// ErrInvalidConfidence indicates an unknown confidence level.
	ErrInvalidConfidence = errors.New("confidence_level must be low, medium or high")
)
