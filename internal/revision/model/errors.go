package model

import "errors"

var (
	// ErrRevisionNotFound indicates that the requested revision does not exist.
	ErrRevisionNotFound = errors.New("revision not found")
	// ErrNotPaperAuthor indicates the actor does not own the paper.
	ErrNotPaperAuthor = errors.New("actor is not the paper author")
	// ErrReviewerOnly indicates the operation requires the reviewer role.
	ErrReviewerOnly = errors.New("operation requires reviewer role")
	// ErrReviewerNotAssigned indicates the reviewer has no assignment on
	// the revision's paper.
	ErrReviewerNotAssigned = errors.New("reviewer is not assigned to this paper")
	// ErrMissingFileURL indicates a revision without a manuscript file.
	ErrMissingFileURL = errors.New("file_url is required")
	// ErrInvalidStatus indicates an unknown revision status value.
	ErrInvalidStatus = errors.New("invalid revision status")
	// ErrTerminalStatus indicates the revision is approved or rejected and
	// can no longer change.
	ErrTerminalStatus = errors.New("revision is in a terminal status")
)
