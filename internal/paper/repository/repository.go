// Package repository provides data access layer for the paper module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	paperModel "github.com/openscholar/review-service/internal/paper/model"
)

// Repository defines the interface for paper data access operations.
type Repository interface {
	// Create inserts a new paper.
	Create(ctx context.Context, paper *paperModel.Paper) (*paperModel.Paper, error)

	// GetByID finds a paper by id.
	GetByID(ctx context.Context, paperID string) (*paperModel.Paper, error)

	// GetByProposalID finds the paper derived from a proposal, if any.
	GetByProposalID(ctx context.Context, proposalID string) (*paperModel.Paper, error)

	// EnsureForProposal returns the paper for a proposal, creating it
	// lazily with status UNDER_REVIEW when absent. Safe under concurrent
	// callers: the unique index on proposal_id makes creation converge to
	// a single row.
	EnsureForProposal(ctx context.Context, proposalID, title, authorID string) (*paperModel.Paper, error)

	// UpdateStatus sets the paper status.
	UpdateStatus(ctx context.Context, paperID, status string) error

	// SetCurrentRevision points the paper at its latest revision.
	SetCurrentRevision(ctx context.Context, paperID, revisionID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new paper repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new paper.
func (r *repository) Create(
	ctx context.Context,
	paper *paperModel.Paper,
) (*paperModel.Paper, error) {
	now := time.Now()
	if paper.ID == "" {
		paper.ID = uuid.NewString()
	}
	paper.CreatedAt = now
	paper.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(paper).Error; err != nil {
		return nil, err
	}
	return paper, nil
}

// GetByID finds a paper by id.
func (r *repository) GetByID(ctx context.Context, paperID string) (*paperModel.Paper, error) {
	var paper paperModel.Paper
	err := r.db.WithContext(ctx).
		Where("id = ?", paperID).
		First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paperModel.ErrPaperNotFound
		}
		return nil, err
	}
	return &paper, nil
}

// GetByProposalID finds the paper derived from a proposal, if any.
func (r *repository) GetByProposalID(
	ctx context.Context,
	proposalID string,
) (*paperModel.Paper, error) {
	var paper paperModel.Paper
	err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paperModel.ErrPaperNotFound
		}
		return nil, err
	}
	return &paper, nil
}

// EnsureForProposal returns the paper for a proposal, creating it lazily
// with status UNDER_REVIEW when absent.
func (r *repository) EnsureForProposal(
	ctx context.Context,
	proposalID, title, authorID string,
) (*paperModel.Paper, error) {
	now := time.Now()
	paper := &paperModel.Paper{
		ID:         uuid.NewString(),
		Title:      title,
		AuthorID:   authorID,
		ProposalID: &proposalID,
		Status:     paperModel.StatusUnderReview,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Insert-or-ignore on the proposal_id unique index, then read back.
	// Two concurrent ensures converge to whichever row won the insert.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "proposal_id"}},
			DoNothing: true,
		}).
		Create(paper).Error
	if err != nil {
		return nil, err
	}

	return r.GetByProposalID(ctx, proposalID)
}

// UpdateStatus sets the paper status.
func (r *repository) UpdateStatus(ctx context.Context, paperID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&paperModel.Paper{}).
		Where("id = ?", paperID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return paperModel.ErrPaperNotFound
	}
	return nil
}

// SetCurrentRevision points the paper at its latest revision.
func (r *repository) SetCurrentRevision(ctx context.Context, paperID, revisionID string) error {
	result := r.db.WithContext(ctx).
		Model(&paperModel.Paper{}).
		Where("id = ?", paperID).
		Updates(map[string]interface{}{
			"current_revision_id": revisionID,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return paperModel.ErrPaperNotFound
	}
	return nil
}
