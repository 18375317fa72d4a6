// Package model provides data transfer objects and domain models for the
// revision module.
package model

// SubmitRevisionRequest represents an author submitting a new manuscript
// version for a paper.
type SubmitRevisionRequest struct {
	ActorID     string `json:"actor_id"   binding:"required"`
	ActorRole   string `json:"actor_role" binding:"required"`
	FileURL     string `json:"file_url"   binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

// UpdateRevisionRequest represents a reviewer adjudicating a revision.
// Only the supplied fields are written.
type UpdateRevisionRequest struct {
	ActorID          string  `json:"actor_id"   binding:"required"`
	ActorRole        string  `json:"actor_role" binding:"required"`
	Status           *string `json:"status"`
	ReviewerFeedback *string `json:"reviewer_feedback"`
}
