// Package model provides data transfer objects and domain models for the
// assignment module.
package model

// AssignReviewerRequest represents the request to assign a reviewer to the
// paper behind a proposal.
type AssignReviewerRequest struct {
	ProposalID   string `json:"proposal_id" binding:"required"`
	ReviewerID   string `json:"reviewer_id" binding:"required"`
	IsLeadEditor bool   `json:"is_lead_editor"`
}

// AssignReviewerResponse reports the outcome of an assignment.
// CommunicationWarning is set when the review thread could not be opened;
// the assignment itself is authoritative and still succeeded.
type AssignReviewerResponse struct {
	PaperID              string              `json:"paper_id"`
	Assignment           *ReviewerAssignment `json:"assignment"`
	ThreadID             string              `json:"thread_id,omitempty"`
	CommunicationWarning string              `json:"communication_warning,omitempty"`
}

// RespondToInvitationRequest represents a reviewer accepting or declining
// their assignment.
type RespondToInvitationRequest struct {
	ActorID  string `json:"actor_id" binding:"required"`
	Response string `json:"response" binding:"required"`
}
