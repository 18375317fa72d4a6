// Package model provides data transfer objects and domain models for the
// review module.
package model

// SubmitReviewRequest represents a reviewer submitting (or resubmitting)
// their review of a paper.
type SubmitReviewRequest struct {
	ActorID         string `json:"actor_id"         binding:"required"`
	Content         string `json:"content"          binding:"required"`
	Recommendation  string `json:"recommendation"   binding:"required"`
	ConfidenceLevel string `json:"confidence_level" binding:"required"`
	IsAnonymous     bool   `json:"is_anonymous"`
}
