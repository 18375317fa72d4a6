// Package service provides business logic layer for the review module.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	assignmentModel "github.com/openscholar/review-service/internal/assignment/model"
	assignmentRepository "github.com/openscholar/review-service/internal/assignment/repository"
	"github.com/openscholar/review-service/internal/notification"
	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	reviewModel "github.com/openscholar/review-service/internal/review/model"
	"github.com/openscholar/review-service/internal/review/repository"
	userModel "github.com/openscholar/review-service/internal/user/model"
	userRepository "github.com/openscholar/review-service/internal/user/repository"
)

// Service defines the interface for review business logic operations.
type Service interface {
	// Submit records a reviewer's review of a paper. A reviewer has at
	// most one live review per paper; resubmission overwrites it.
	Submit(ctx context.Context, paperID string, req *reviewModel.SubmitReviewRequest) (*reviewModel.Review, error)

	// ListByPaper returns a paper's reviews.
	ListByPaper(ctx context.Context, paperID string) ([]reviewModel.Review, error)
}

type service struct {
	repo           repository.Repository
	assignmentRepo assignmentRepository.Repository
	paperRepo      paperRepository.Repository
	userRepo       userRepository.Repository
	notifier       notification.Notifier
	logger         *zap.SugaredLogger
}

// New creates a new review service instance.
func New(
	repo repository.Repository,
	assignmentRepo assignmentRepository.Repository,
	paperRepo paperRepository.Repository,
	userRepo userRepository.Repository,
	notifier notification.Notifier,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		paperRepo:      paperRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// Submit records a reviewer's review of a paper.
func (s *service) Submit(
	ctx context.Context,
	paperID string,
	req *reviewModel.SubmitReviewRequest,
) (*reviewModel.Review, error) {
	if req.Content == "" {
		return nil, reviewModel.ErrMissingContent
	}
	if !reviewModel.ValidRecommendation(req.Recommendation) {
		return nil, reviewModel.ErrInvalidRecommendation
	}
	if !reviewModel.ValidConfidence(req.ConfidenceLevel) {
		return nil, reviewModel.ErrInvalidConfidence
	}

	paper, err := s.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}

	reviewer, err := s.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}

	// The assignment row keyed on (paper, reviewer email) is the
	// authorization record: no row, no review.
	if _, err := s.assignmentRepo.GetByPaperAndEmail(ctx, paperID, reviewer.Email); err != nil {
		if errors.Is(err, assignmentModel.ErrAssignmentNotFound) {
			return nil, reviewModel.ErrNotAssigned
		}
		return nil, err
	}

	review, err := s.repo.Upsert(ctx, &reviewModel.Review{
		PaperID:         paperID,
		ReviewerID:      reviewer.ID,
		Content:         req.Content,
		Recommendation:  req.Recommendation,
		ConfidenceLevel: req.ConfidenceLevel,
		IsAnonymous:     req.IsAnonymous,
	})
	if err != nil {
		s.logger.Errorw("review upsert failed",
			"paper_id", paperID, "reviewer_id", reviewer.ID, "error", err)
		return nil, err
	}

	if err := s.assignmentRepo.Complete(ctx, paperID, reviewer.Email, review.ID, time.Now()); err != nil {
		s.logger.Errorw("assignment completion failed",
			"paper_id", paperID, "reviewer_email", reviewer.Email, "error", err)
		return nil, err
	}

	s.notifyAuthor(ctx, paper.AuthorID, paper.Title, req.Recommendation)

	s.logger.Infow("review submitted",
		"paper_id", paperID,
		"reviewer_id", reviewer.ID,
		"recommendation", req.Recommendation)
	return review, nil
}

// ListByPaper returns a paper's reviews.
func (s *service) ListByPaper(
	ctx context.Context,
	paperID string,
) ([]reviewModel.Review, error) {
	return s.repo.ListByPaper(ctx, paperID)
}

// notifyAuthor emails the paper's author about the new review. Best-effort.
func (s *service) notifyAuthor(ctx context.Context, authorID, paperTitle, recommendation string) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if !errors.Is(err, userModel.ErrUserNotFound) {
			s.logger.Warnw("author lookup for notification failed", "author_id", authorID, "error", err)
		}
		return
	}

	err = s.notifier.Notify(ctx, author.Email, notification.KindReviewSubmitted, notification.Data{
		PaperTitle: paperTitle,
		Detail:     fmt.Sprintf("Recommendation: %s", recommendation),
	})
	if err != nil {
		s.logger.Warnw("review notification failed", "recipient", author.Email, "error", err)
	}
}
