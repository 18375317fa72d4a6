// Package model provides data transfer objects and domain models for the
// paper module.
package model

// SubmitPaperRequest represents a direct author submission without a
// preceding proposal.
type SubmitPaperRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Title   string `json:"title"    binding:"required"`
}

// UpdatePaperStatusRequest represents an admin-driven status change.
type UpdatePaperStatusRequest struct {
	ActorID   string `json:"actor_id"   binding:"required"`
	ActorRole string `json:"actor_role" binding:"required"`
	Status    string `json:"status"     binding:"required"`
}
