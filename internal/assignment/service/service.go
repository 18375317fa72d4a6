// Package service provides the assignment orchestrator: the sequence that
// turns a proposal and a chosen reviewer into a paper, an assignment row
// and a review thread.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	assignmentModel "github.com/openscholar/review-service/internal/assignment/model"
	"github.com/openscholar/review-service/internal/assignment/repository"
	"github.com/openscholar/review-service/internal/notification"
	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	proposalRepository "github.com/openscholar/review-service/internal/proposal/repository"
	threadRepository "github.com/openscholar/review-service/internal/thread/repository"
	userRepository "github.com/openscholar/review-service/internal/user/repository"
)

// Service defines the interface for assignment business logic operations.
type Service interface {
	// Assign materializes the paper for a proposal (if absent), upserts
	// the reviewer assignment and opens the review thread. Idempotent:
	// repeating the call converges to the same rows.
	Assign(ctx context.Context, req *assignmentModel.AssignReviewerRequest) (*assignmentModel.AssignReviewerResponse, error)

	// Respond records the reviewer accepting or declining an invitation.
	Respond(ctx context.Context, assignmentID string, req *assignmentModel.RespondToInvitationRequest) (*assignmentModel.ReviewerAssignment, error)

	// ListByPaper returns a paper's assignments.
	ListByPaper(ctx context.Context, paperID string) ([]assignmentModel.ReviewerAssignment, error)
}

type service struct {
	repo         repository.Repository
	proposalRepo proposalRepository.Repository
	paperRepo    paperRepository.Repository
	threadRepo   threadRepository.Repository
	userRepo     userRepository.Repository
	notifier     notification.Notifier
	logger       *zap.SugaredLogger
}

// New creates a new assignment service instance.
func New(
	repo repository.Repository,
	proposalRepo proposalRepository.Repository,
	paperRepo paperRepository.Repository,
	threadRepo threadRepository.Repository,
	userRepo userRepository.Repository,
	notifier notification.Notifier,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:         repo,
		proposalRepo: proposalRepo,
		paperRepo:    paperRepo,
		threadRepo:   threadRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Assign materializes the paper, upserts the assignment and opens the
// thread. Every step is an upsert or guarded update, so a retry after a
// partial failure converges to the same end state.
func (s *service) Assign(
	ctx context.Context,
	req *assignmentModel.AssignReviewerRequest,
) (*assignmentModel.AssignReviewerResponse, error) {
	if req.ReviewerID == "" {
		return nil, assignmentModel.ErrMissingReviewer
	}

	reviewer, err := s.userRepo.GetByID(ctx, req.ReviewerID)
	if err != nil {
		return nil, err
	}

	proposal, err := s.proposalRepo.GetByID(ctx, req.ProposalID)
	if err != nil {
		return nil, err
	}

	paper, err := s.paperRepo.EnsureForProposal(ctx, proposal.ID, proposal.Title, proposal.AuthorID)
	if err != nil {
		s.logger.Errorw("paper ensure failed", "proposal_id", proposal.ID, "error", err)
		return nil, err
	}

	now := time.Now()
	assignment, err := s.repo.Upsert(ctx, &assignmentModel.ReviewerAssignment{
		PaperID:        paper.ID,
		ReviewerID:     &reviewer.ID,
		ReviewerEmail:  reviewer.Email,
		IsLeadEditor:   req.IsLeadEditor,
		CanCommunicate: true,
		Status:         assignmentModel.StatusAssigned,
		InvitedAt:      &now,
	})
	if err != nil {
		s.logger.Errorw("assignment upsert failed",
			"paper_id", paper.ID, "reviewer_email", reviewer.Email, "error", err)
		return nil, err
	}

	resp := &assignmentModel.AssignReviewerResponse{
		PaperID:    paper.ID,
		Assignment: assignment,
	}

	// The thread is best-effort relative to the assignment record, which
	// is authoritative. A failure here is logged and surfaced, not fatal.
	subject := fmt.Sprintf("Review: %s", proposal.Title)
	thread, err := s.threadRepo.Ensure(ctx, paper.ID, reviewer.ID, proposal.AuthorID, subject)
	if err != nil {
		s.logger.Warnw("review thread creation failed",
			"paper_id", paper.ID, "reviewer_id", reviewer.ID, "error", err)
		resp.CommunicationWarning = "review thread could not be opened"
	} else {
		resp.ThreadID = thread.ID
	}

	if err := s.proposalRepo.AdvanceToUnderReview(ctx, proposal.ID); err != nil {
		s.logger.Errorw("proposal status advance failed", "proposal_id", proposal.ID, "error", err)
		return nil, err
	}

	if err := s.notifier.Notify(ctx, reviewer.Email, notification.KindReviewerAssigned,
		notification.Data{PaperTitle: paper.Title}); err != nil {
		s.logger.Warnw("assignment notification failed",
			"recipient", reviewer.Email, "error", err)
	}

	s.logger.Infow("reviewer assigned",
		"paper_id", paper.ID,
		"proposal_id", proposal.ID,
		"reviewer_id", reviewer.ID,
		"is_lead_editor", req.IsLeadEditor)
	return resp, nil
}

// Respond records the reviewer accepting or declining an invitation.
func (s *service) Respond(
	ctx context.Context,
	assignmentID string,
	req *assignmentModel.RespondToInvitationRequest,
) (*assignmentModel.ReviewerAssignment, error) {
	assignment, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.ReviewerID == nil || *assignment.ReviewerID != req.ActorID {
		return nil, assignmentModel.ErrNotAssignmentOwner
	}

	var acceptedAt *time.Time
	switch req.Response {
	case assignmentModel.StatusAccepted:
		now := time.Now()
		acceptedAt = &now
	case assignmentModel.StatusDeclined:
	default:
		return nil, assignmentModel.ErrInvalidResponse
	}

	if err := s.repo.SetResponse(ctx, assignmentID, req.Response, acceptedAt); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("assignment response recorded",
		"assignment_id", assignmentID, "response", req.Response)
	return updated, nil
}

// ListByPaper returns a paper's assignments.
func (s *service) ListByPaper(
	ctx context.Context,
	paperID string,
) ([]assignmentModel.ReviewerAssignment, error) {
	return s.repo.ListByPaper(ctx, paperID)
}
