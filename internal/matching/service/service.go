// Package service provides business logic layer for the matching module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/openscholar/review-service/internal/matching/engine"
	matchingModel "github.com/openscholar/review-service/internal/matching/model"
	"github.com/openscholar/review-service/internal/matching/repository"
	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
	proposalRepository "github.com/openscholar/review-service/internal/proposal/repository"
)

// Service defines the interface for matching business logic operations.
type Service interface {
	// RankForProposal ranks every reviewer profile against the proposal.
	RankForProposal(ctx context.Context, proposalID string) (*matchingModel.RankResponse, error)

	// UpsertProfile creates or replaces a reviewer's expertise profile.
	UpsertProfile(ctx context.Context, userID string, req *matchingModel.UpsertProfileRequest) (*matchingModel.ReviewerExpertiseProfile, error)
}

type service struct {
	repo         repository.Repository
	proposalRepo proposalRepository.Repository
	logger       *zap.SugaredLogger
}

// New creates a new matching service instance.
func New(
	repo repository.Repository,
	proposalRepo proposalRepository.Repository,
	logger *zap.SugaredLogger,
) Service {
	return &service{repo: repo, proposalRepo: proposalRepo, logger: logger}
}

// RankForProposal ranks every reviewer profile against the proposal.
func (s *service) RankForProposal(
	ctx context.Context,
	proposalID string,
) (*matchingModel.RankResponse, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		s.logger.Errorw("listing reviewer profiles failed", "error", err)
		return nil, err
	}

	pool := make([]engine.Candidate, 0, len(profiles))
	for i := range profiles {
		pool = append(pool, toCandidate(&profiles[i]))
	}

	ranked := engine.Rank(proposal.ResearchArea, proposal.KeywordList(), pool)

	candidates := make([]matchingModel.RankedCandidateResponse, 0, len(ranked))
	for _, rc := range ranked {
		candidates = append(candidates, matchingModel.RankedCandidateResponse{
			UserID:      rc.Candidate.UserID,
			Score:       rc.Score,
			Reasons:     rc.Reasons,
			HasCapacity: rc.HasCapacity,
		})
	}

	s.logger.Debugw("ranked candidates",
		"proposal_id", proposalID, "pool_size", len(pool))
	return &matchingModel.RankResponse{
		ProposalID: proposalID,
		Candidates: candidates,
		Total:      len(candidates),
	}, nil
}

// UpsertProfile creates or replaces a reviewer's expertise profile.
func (s *service) UpsertProfile(
	ctx context.Context,
	userID string,
	req *matchingModel.UpsertProfileRequest,
) (*matchingModel.ReviewerExpertiseProfile, error) {
	availability := req.AvailabilityStatus
	if availability == "" {
		availability = matchingModel.AvailabilityAvailable
	}
	switch availability {
	case matchingModel.AvailabilityAvailable,
		matchingModel.AvailabilityLimited,
		matchingModel.AvailabilityUnavailable:
	default:
		return nil, matchingModel.ErrInvalidAvailability
	}

	profile := &matchingModel.ReviewerExpertiseProfile{
		UserID:               userID,
		ResearchAreas:        proposalModel.JoinKeywords(req.ResearchAreas),
		Keywords:             proposalModel.JoinKeywords(req.Keywords),
		HIndex:               req.HIndex,
		YearsExperience:      req.YearsExperience,
		AvailabilityStatus:   availability,
		CurrentReviewsCount:  req.CurrentReviewsCount,
		MaxConcurrentReviews: req.MaxConcurrentReviews,
	}

	saved, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		s.logger.Errorw("profile upsert failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("reviewer profile upserted", "user_id", userID)
	return saved, nil
}

// toCandidate converts a stored profile into scoring input.
func toCandidate(p *matchingModel.ReviewerExpertiseProfile) engine.Candidate {
	return engine.Candidate{
		UserID:               p.UserID,
		ResearchAreas:        p.ResearchAreaList(),
		Keywords:             p.KeywordList(),
		HIndex:               p.HIndex,
		YearsExperience:      p.YearsExperience,
		CurrentReviewsCount:  p.CurrentReviewsCount,
		MaxConcurrentReviews: p.MaxConcurrentReviews,
	}
}
