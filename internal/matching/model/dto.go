package model

// UpsertProfileRequest represents the request to create or replace a
// reviewer expertise profile.
type UpsertProfileRequest struct {
	ResearchAreas        []string `json:"research_areas"`
	Keywords             []string `json:"keywords"`
	HIndex               *int     `json:"h_index"`
	YearsExperience      *int     `json:"years_experience"`
	AvailabilityStatus   string   `json:"availability_status"`
	CurrentReviewsCount  int      `json:"current_reviews_count"`
	MaxConcurrentReviews int      `json:"max_concurrent_reviews"`
}

// RankedCandidateResponse is one entry of the ranked candidate list.
type RankedCandidateResponse struct {
	UserID      string   `json:"user_id"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons"`
	HasCapacity bool     `json:"has_capacity"`
}

// RankResponse is the full ranked candidate list for a proposal.
type RankResponse struct {
	ProposalID string                    `json:"proposal_id"`
	Candidates []RankedCandidateResponse `json:"candidates"`
	Total      int                       `json:"total"`
}
