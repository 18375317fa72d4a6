// Package service provides business logic for manuscript revisions.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	assignmentModel "github.com/openscholar/review-service/internal/assignment/model"
	assignmentRepository "github.com/openscholar/review-service/internal/assignment/repository"
	"github.com/openscholar/review-service/internal/notification"
	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	"github.com/openscholar/review-service/internal/revision/model"
	"github.com/openscholar/review-service/internal/revision/repository"
	userModel "github.com/openscholar/review-service/internal/user/model"
	userRepository "github.com/openscholar/review-service/internal/user/repository"
)

// Service defines the interface for revision business logic.
type Service interface {
	Submit(ctx context.Context, paperID string, req *model.SubmitRevisionRequest) (*model.Revision, error)
	Update(ctx context.Context, revisionID string, req *model.UpdateRevisionRequest) (*model.Revision, error)
	ListByPaper(ctx context.Context, paperID string) ([]model.Revision, error)
}

type service struct {
	repo           repository.Repository
	paperRepo      paperRepository.Repository
	assignmentRepo assignmentRepository.Repository
	userRepo       userRepository.Repository
	notifier       notification.Notifier
	logger         *zap.SugaredLogger
}

// New creates a new revision service instance.
func New(
	repo repository.Repository,
	paperRepo paperRepository.Repository,
	assignmentRepo assignmentRepository.Repository,
	userRepo userRepository.Repository,
	notifier notification.Notifier,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:           repo,
		paperRepo:      paperRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Submit records a new manuscript version for a paper and points the
// paper at it. Authors may only submit revisions of their own papers.
func (s *service) Submit(ctx context.Context, paperID string, req *model.SubmitRevisionRequest) (*model.Revision, error) {
	if req.FileURL == "" {
		return nil, model.ErrMissingFileURL
	}

	paper, err := s.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}
	if req.ActorRole == userModel.RoleAuthor && req.ActorID != paper.AuthorID {
		return nil, model.ErrNotPaperAuthor
	}

	revision := &model.Revision{
		PaperID:     paper.ID,
		FileURL:     req.FileURL,
		CoverLetter: req.CoverLetter,
		Status:      model.StatusSubmitted,
	}
	if err := s.repo.Create(ctx, revision); err != nil {
		return nil, err
	}

	if err := s.paperRepo.SetCurrentRevision(ctx, paper.ID, revision.ID); err != nil {
		return nil, err
	}

	s.logger.Infow("revision submitted",
		"revision_id", revision.ID,
		"paper_id", paper.ID,
		"version", revision.VersionNumber)

	return revision, nil
}

// Update lets an assigned reviewer adjudicate a revision: set its status,
// attach feedback, or both. Approved and rejected revisions are final.
func (s *service) Update(ctx context.Context, revisionID string, req *model.UpdateRevisionRequest) (*model.Revision, error) {
	if req.ActorRole != userModel.RoleReviewer {
		return nil, model.ErrReviewerOnly
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return nil, model.ErrInvalidStatus
	}

	revision, err := s.repo.GetByID(ctx, revisionID)
	if err != nil {
		return nil, err
	}

	reviewer, err := s.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	_, err = s.assignmentRepo.GetByPaperAndEmail(ctx, revision.PaperID, reviewer.Email)
	if err != nil {
		if errors.Is(err, assignmentModel.ErrAssignmentNotFound) {
			return nil, model.ErrReviewerNotAssigned
		}
		return nil, err
	}

	if model.IsTerminal(revision.Status) {
		return nil, model.ErrTerminalStatus
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ReviewerFeedback != nil {
		updates["reviewer_feedback"] = *req.ReviewerFeedback
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, revisionID, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, revisionID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		s.notifyAuthor(ctx, updated)
	}

	return updated, nil
}

// ListByPaper returns all revisions of a paper, oldest version first.
func (s *service) ListByPaper(ctx context.Context, paperID string) ([]model.Revision, error) {
	if _, err := s.paperRepo.GetByID(ctx, paperID); err != nil {
		return nil, err
	}
	return s.repo.ListByPaper(ctx, paperID)
}

// notifyAuthor emails the paper author about a status change. Failures
// are logged and swallowed so the update itself stands.
func (s *service) notifyAuthor(ctx context.Context, revision *model.Revision) {
	paper, err := s.paperRepo.GetByID(ctx, revision.PaperID)
	if err != nil {
		s.logger.Warnw("revision notification skipped, paper lookup failed",
			"revision_id", revision.ID, "error", err)
		return
	}
	author, err := s.userRepo.GetByID(ctx, paper.AuthorID)
	if err != nil {
		s.logger.Warnw("revision notification skipped, author lookup failed",
			"paper_id", paper.ID, "error", err)
		return
	}

	err = s.notifier.Notify(ctx, author.Email, notification.KindRevisionStatus, notification.Data{
		PaperTitle: paper.Title,
		Detail:     "Revision status: " + revision.Status,
	})
	if err != nil {
		s.logger.Warnw("revision notification failed",
			"paper_id", paper.ID, "recipient", author.Email, "error", err)
	}
}
