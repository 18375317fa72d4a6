package model

import "errors"

var (
	// ErrProposalNotFound indicates that the requested proposal does not exist.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrNotProposalOwner indicates the actor is not the proposal's author.
	ErrNotProposalOwner = errors.New("actor is not the proposal author")
	// ErrAlreadySubmitted indicates the proposal has already left draft.
	ErrAlreadySubmitted = errors.New("proposal already submitted")
	// ErrInvalidDecision indicates an unknown admin decision value.
	ErrInvalidDecision = errors.New("decision must be accepted, rejected or revision_requested")
	// ErrStillDraft indicates a decision was attempted on an unsubmitted proposal.
	ErrStillDraft = errors.New("proposal has not been submitted")
	// ErrInvalidStatus indicates an unknown proposal status value.
	ErrInvalidStatus = errors.New("unknown proposal status")
	// ErrAdminOnly indicates the operation requires the admin role.
	ErrAdminOnly = errors.New("operation requires admin role")
	// ErrMissingTitle indicates a proposal without a title.
	ErrMissingTitle = errors.New("title is required")
	// ErrMissingAuthor indicates a proposal without an author id.
	ErrMissingAuthor = errors.New("author_id is required")
)
