// Package model provides data transfer objects and domain models for the
// proposal module.
package model

import "time"

// CreateProposalRequest represents the request to create a draft proposal.
type CreateProposalRequest struct {
	AuthorID      string   `json:"author_id"     binding:"required"`
	Title         string   `json:"title"         binding:"required"`
	Abstract      string   `json:"abstract"`
	ResearchArea  string   `json:"research_area"`
	Keywords      []string `json:"keywords"`
	FundingAmount *float64 `json:"funding_amount"`
}

// SubmitProposalRequest represents the request to submit a draft proposal.
type SubmitProposalRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

// DecideProposalRequest represents an admin decision on a submitted proposal.
type DecideProposalRequest struct {
	ActorID    string `json:"actor_id"   binding:"required"`
	ActorRole  string `json:"actor_role" binding:"required"`
	Decision   string `json:"decision"   binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

// ProposalResponse represents a proposal in API responses.
type ProposalResponse struct {
	ID            string   `json:"id"`
	AuthorID      string   `json:"author_id"`
	Title         string   `json:"title"`
	Abstract      string   `json:"abstract,omitempty"`
	ResearchArea  string   `json:"research_area,omitempty"`
	Keywords      []string `json:"keywords"`
	Status        string   `json:"status"`
	FundingAmount *float64 `json:"funding_amount,omitempty"`
	AdminNotes    string   `json:"admin_notes,omitempty"`
	SubmittedAt   string   `json:"submitted_at,omitempty"`
	ReviewedAt    string   `json:"reviewed_at,omitempty"`
}

// NewProposalResponse converts a Proposal into its API representation.
func NewProposalResponse(p *Proposal) *ProposalResponse {
	resp := &ProposalResponse{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		Title:         p.Title,
		Abstract:      p.Abstract,
		ResearchArea:  p.ResearchArea,
		Keywords:      p.KeywordList(),
		Status:        p.Status,
		FundingAmount: p.FundingAmount,
		AdminNotes:    p.AdminNotes,
	}
	if p.SubmittedAt != nil {
		resp.SubmittedAt = p.SubmittedAt.UTC().Format(time.RFC3339)
	}
	if p.ReviewedAt != nil {
		resp.ReviewedAt = p.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
