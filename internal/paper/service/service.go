// Package service provides business logic layer for the paper module.
package service

import (
	"context"

	"go.uber.org/zap"

	paperModel "github.com/openscholar/review-service/internal/paper/model"
	"github.com/openscholar/review-service/internal/paper/repository"
	userModel "github.com/openscholar/review-service/internal/user/model"
)

// Service defines the interface for paper business logic operations.
type Service interface {
	// SubmitDirect creates a paper from a direct author submission,
	// without a preceding proposal.
	SubmitDirect(ctx context.Context, req *paperModel.SubmitPaperRequest) (*paperModel.Paper, error)

	// UpdateStatus applies an admin-driven status change, enforcing the
	// lifecycle rules.
	UpdateStatus(ctx context.Context, paperID string, req *paperModel.UpdatePaperStatusRequest) (*paperModel.Paper, error)

	// Get returns a paper by id.
	Get(ctx context.Context, paperID string) (*paperModel.Paper, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new paper service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// SubmitDirect creates a paper from a direct author submission.
func (s *service) SubmitDirect(
	ctx context.Context,
	req *paperModel.SubmitPaperRequest,
) (*paperModel.Paper, error) {
	if req.Title == "" {
		return nil, paperModel.ErrMissingTitle
	}

	paper := &paperModel.Paper{
		Title:    req.Title,
		AuthorID: req.ActorID,
		Status:   paperModel.StatusSubmitted,
	}

	created, err := s.repo.Create(ctx, paper)
	if err != nil {
		s.logger.Errorw("direct paper submission failed", "author_id", req.ActorID, "error", err)
		return nil, err
	}

	s.logger.Infow("paper submitted directly",
		"paper_id", created.ID, "author_id", created.AuthorID)
	return created, nil
}

// UpdateStatus applies an admin-driven status change.
func (s *service) UpdateStatus(
	ctx context.Context,
	paperID string,
	req *paperModel.UpdatePaperStatusRequest,
) (*paperModel.Paper, error) {
	if req.ActorRole != userModel.RoleAdmin {
		return nil, paperModel.ErrAdminOnly
	}

	paper, err := s.repo.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}

	if !paperModel.CanTransition(paper.Status, req.Status) {
		return nil, paperModel.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, paperID, req.Status); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("paper status updated",
		"paper_id", paperID, "from", paper.Status, "to", req.Status, "actor_id", req.ActorID)
	return updated, nil
}

// Get returns a paper by id.
func (s *service) Get(ctx context.Context, paperID string) (*paperModel.Paper, error) {
	return s.repo.GetByID(ctx, paperID)
}
