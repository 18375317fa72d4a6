// Package repository provides data access layer for the proposal module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
)

// Repository defines the interface for proposal data access operations.
type Repository interface {
	// Create inserts a new draft proposal.
	Create(ctx context.Context, p *proposalModel.Proposal) (*proposalModel.Proposal, error)

	// GetByID finds a proposal by id.
	GetByID(ctx context.Context, proposalID string) (*proposalModel.Proposal, error)

	// MarkSubmitted moves a draft proposal to submitted, setting submittedAt.
	// Returns ErrAlreadySubmitted if the proposal has already left draft.
	MarkSubmitted(ctx context.Context, proposalID string, submittedAt time.Time) error

	// SetDecision records an admin decision (status, notes, reviewedAt).
	// Returns ErrStillDraft if the proposal has not left draft.
	SetDecision(ctx context.Context, proposalID, status, adminNotes string, reviewedAt time.Time) error

	// AdvanceToUnderReview moves a submitted proposal to under_review.
	// No-op when the proposal is in any other state.
	AdvanceToUnderReview(ctx context.Context, proposalID string) error

	// ListByAuthor returns the author's proposals, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]proposalModel.Proposal, error)

	// ListByStatus returns proposals in the given status, oldest first.
	ListByStatus(ctx context.Context, status string) ([]proposalModel.Proposal, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new proposal repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new draft proposal.
func (r *repository) Create(
	ctx context.Context,
	p *proposalModel.Proposal,
) (*proposalModel.Proposal, error) {
	now := time.Now()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Status = proposalModel.StatusDraft
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID finds a proposal by id.
func (r *repository) GetByID(
	ctx context.Context,
	proposalID string,
) (*proposalModel.Proposal, error) {
	var p proposalModel.Proposal
	err := r.db.WithContext(ctx).
		Where("id = ?", proposalID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, proposalModel.ErrProposalNotFound
		}
		return nil, err
	}
	return &p, nil
}

// MarkSubmitted moves a draft proposal to submitted, setting submittedAt.
func (r *repository) MarkSubmitted(
	ctx context.Context,
	proposalID string,
	submittedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&proposalModel.Proposal{}).
		Where("id = ? AND status = ?", proposalID, proposalModel.StatusDraft).
		Updates(map[string]interface{}{
			"status":       proposalModel.StatusSubmitted,
			"submitted_at": submittedAt,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish missing proposal from one already past draft.
		if _, err := r.GetByID(ctx, proposalID); err != nil {
			return err
		}
		return proposalModel.ErrAlreadySubmitted
	}
	return nil
}

// SetDecision records an admin decision (status, notes, reviewedAt).
// Drafts are excluded by the WHERE clause: a proposal only becomes
// decidable once the author has submitted it.
func (r *repository) SetDecision(
	ctx context.Context,
	proposalID, status, adminNotes string,
	reviewedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&proposalModel.Proposal{}).
		Where("id = ? AND status <> ?", proposalID, proposalModel.StatusDraft).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_notes": adminNotes,
			"reviewed_at": reviewedAt,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish missing proposal from one still in draft.
		if _, err := r.GetByID(ctx, proposalID); err != nil {
			return err
		}
		return proposalModel.ErrStillDraft
	}
	return nil
}

// AdvanceToUnderReview moves a submitted proposal to under_review.
// The guarded WHERE clause makes the advance idempotent: a proposal that
// is already past submitted is left untouched.
func (r *repository) AdvanceToUnderReview(ctx context.Context, proposalID string) error {
	return r.db.WithContext(ctx).
		Model(&proposalModel.Proposal{}).
		Where("id = ? AND status = ?", proposalID, proposalModel.StatusSubmitted).
		Updates(map[string]interface{}{
			"status":     proposalModel.StatusUnderReview,
			"updated_at": time.Now(),
		}).Error
}

// ListByAuthor returns the author's proposals, newest first.
func (r *repository) ListByAuthor(
	ctx context.Context,
	authorID string,
) ([]proposalModel.Proposal, error) {
	var proposals []proposalModel.Proposal
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	if proposals == nil {
		proposals = []proposalModel.Proposal{}
	}
	return proposals, nil
}

// ListByStatus returns proposals in the given status, oldest first.
func (r *repository) ListByStatus(
	ctx context.Context,
	status string,
) ([]proposalModel.Proposal, error) {
	var proposals []proposalModel.Proposal
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	if proposals == nil {
		proposals = []proposalModel.Proposal{}
	}
	return proposals, nil
}
