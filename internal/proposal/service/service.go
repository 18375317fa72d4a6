// Package service provides business logic layer for the proposal module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
	"github.com/openscholar/review-service/internal/proposal/repository"
	userModel "github.com/openscholar/review-service/internal/user/model"
)

// Service defines the interface for proposal business logic operations.
type Service interface {
	// Create creates a new draft proposal.
	Create(ctx context.Context, req *proposalModel.CreateProposalRequest) (*proposalModel.ProposalResponse, error)

	// Submit moves an author's draft proposal to submitted.
	Submit(ctx context.Context, proposalID, actorID string) (*proposalModel.ProposalResponse, error)

	// Decide records an admin decision on a proposal.
	Decide(ctx context.Context, proposalID string, req *proposalModel.DecideProposalRequest) (*proposalModel.ProposalResponse, error)

	// Get returns a proposal by id.
	Get(ctx context.Context, proposalID string) (*proposalModel.ProposalResponse, error)

	// ListByAuthor returns the author's proposals.
	ListByAuthor(ctx context.Context, authorID string) ([]proposalModel.ProposalResponse, error)

	// ListByStatus returns proposals in the given status.
	ListByStatus(ctx context.Context, status string) ([]proposalModel.ProposalResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new proposal service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Create creates a new draft proposal.
func (s *service) Create(
	ctx context.Context,
	req *proposalModel.CreateProposalRequest,
) (*proposalModel.ProposalResponse, error) {
	if req.AuthorID == "" {
		return nil, proposalModel.ErrMissingAuthor
	}
	if req.Title == "" {
		return nil, proposalModel.ErrMissingTitle
	}

	p := &proposalModel.Proposal{
		AuthorID:      req.AuthorID,
		Title:         req.Title,
		Abstract:      req.Abstract,
		ResearchArea:  req.ResearchArea,
		FundingAmount: req.FundingAmount,
	}
	p.SetKeywordList(req.Keywords)

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Errorw("proposal create failed", "author_id", req.AuthorID, "error", err)
		return nil, err
	}

	s.logger.Infow("proposal created", "proposal_id", created.ID, "author_id", created.AuthorID)
	return proposalModel.NewProposalResponse(created), nil
}

// Submit moves an author's draft proposal to submitted.
func (s *service) Submit(
	ctx context.Context,
	proposalID, actorID string,
) (*proposalModel.ProposalResponse, error) {
	p, err := s.repo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != actorID {
		return nil, proposalModel.ErrNotProposalOwner
	}

	if err := s.repo.MarkSubmitted(ctx, proposalID, time.Now()); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("proposal submitted", "proposal_id", proposalID, "author_id", actorID)
	return proposalModel.NewProposalResponse(updated), nil
}

// Decide records an admin decision on a proposal.
func (s *service) Decide(
	ctx context.Context,
	proposalID string,
	req *proposalModel.DecideProposalRequest,
) (*proposalModel.ProposalResponse, error) {
	if req.ActorRole != userModel.RoleAdmin {
		return nil, proposalModel.ErrAdminOnly
	}

	switch req.Decision {
	case proposalModel.StatusAccepted,
		proposalModel.StatusRejected,
		proposalModel.StatusRevisionRequested:
	default:
		return nil, proposalModel.ErrInvalidDecision
	}

	if err := s.repo.SetDecision(ctx, proposalID, req.Decision, req.AdminNotes, time.Now()); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("proposal decided",
		"proposal_id", proposalID, "decision", req.Decision, "actor_id", req.ActorID)
	return proposalModel.NewProposalResponse(updated), nil
}

// Get returns a proposal by id.
func (s *service) Get(
	ctx context.Context,
	proposalID string,
) (*proposalModel.ProposalResponse, error) {
	p, err := s.repo.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return proposalModel.NewProposalResponse(p), nil
}

// ListByAuthor returns the author's proposals.
func (s *service) ListByAuthor(
	ctx context.Context,
	authorID string,
) ([]proposalModel.ProposalResponse, error) {
	proposals, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	responses := make([]proposalModel.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		responses = append(responses, *proposalModel.NewProposalResponse(&proposals[i]))
	}
	return responses, nil
}

// ListByStatus returns proposals in the given status.
func (s *service) ListByStatus(
	ctx context.Context,
	status string,
) ([]proposalModel.ProposalResponse, error) {
	if !proposalModel.ValidStatus(status) {
		return nil, proposalModel.ErrInvalidStatus
	}

	proposals, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]proposalModel.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		responses = append(responses, *proposalModel.NewProposalResponse(&proposals[i]))
	}
	return responses, nil
}
