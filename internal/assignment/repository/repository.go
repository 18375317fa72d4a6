// Package repository provides data access layer for the assignment module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assignmentModel "github.com/openscholar/review-service/internal/assignment/model"
)

// Repository defines the interface for assignment data access operations.
type Repository interface {
	// Upsert inserts or updates the assignment keyed on
	// (paper_id, reviewer_email).
	Upsert(ctx context.Context, a *assignmentModel.ReviewerAssignment) (*assignmentModel.ReviewerAssignment, error)

	// GetByID finds an assignment by id.
	GetByID(ctx context.Context, assignmentID string) (*assignmentModel.ReviewerAssignment, error)

	// GetByPaperAndEmail finds the assignment for a paper/reviewer-email pair.
	GetByPaperAndEmail(ctx context.Context, paperID, reviewerEmail string) (*assignmentModel.ReviewerAssignment, error)

	// ListByPaper returns a paper's assignments, oldest invitation first.
	ListByPaper(ctx context.Context, paperID string) ([]assignmentModel.ReviewerAssignment, error)

	// SetResponse records the reviewer's accept/decline answer.
	SetResponse(ctx context.Context, assignmentID, status string, acceptedAt *time.Time) error

	// Complete marks the assignment completed and links the review.
	Complete(ctx context.Context, paperID, reviewerEmail, reviewID string, completedAt time.Time) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new assignment repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts or updates the assignment keyed on (paper_id, reviewer_email).
func (r *repository) Upsert(
	ctx context.Context,
	a *assignmentModel.ReviewerAssignment,
) (*assignmentModel.ReviewerAssignment, error) {
	now := time.Now()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "paper_id"}, {Name: "reviewer_email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"reviewer_id",
				"is_lead_editor",
				"can_communicate",
				"status",
				"invited_at",
				"updated_at",
			}),
		}).
		Create(a).Error
	if err != nil {
		return nil, err
	}

	// Read back so the caller sees the surviving row's id on upsert.
	return r.GetByPaperAndEmail(ctx, a.PaperID, a.ReviewerEmail)
}

// GetByID finds an assignment by id.
func (r *repository) GetByID(
	ctx context.Context,
	assignmentID string,
) (*assignmentModel.ReviewerAssignment, error) {
	var a assignmentModel.ReviewerAssignment
	err := r.db.WithContext(ctx).
		Where("id = ?", assignmentID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assignmentModel.ErrAssignmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetByPaperAndEmail finds the assignment for a paper/reviewer-email pair.
func (r *repository) GetByPaperAndEmail(
	ctx context.Context,
	paperID, reviewerEmail string,
) (*assignmentModel.ReviewerAssignment, error) {
	var a assignmentModel.ReviewerAssignment
	err := r.db.WithContext(ctx).
		Where("paper_id = ? AND reviewer_email = ?", paperID, reviewerEmail).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assignmentModel.ErrAssignmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByPaper returns a paper's assignments, oldest invitation first.
func (r *repository) ListByPaper(
	ctx context.Context,
	paperID string,
) ([]assignmentModel.ReviewerAssignment, error) {
	var assignments []assignmentModel.ReviewerAssignment
	err := r.db.WithContext(ctx).
		Where("paper_id = ?", paperID).
		Order("created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []assignmentModel.ReviewerAssignment{}
	}
	return assignments, nil
}

// SetResponse records the reviewer's accept/decline answer.
func (r *repository) SetResponse(
	ctx context.Context,
	assignmentID, status string,
	acceptedAt *time.Time,
) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if acceptedAt != nil {
		updates["accepted_at"] = *acceptedAt
	}

	result := r.db.WithContext(ctx).
		Model(&assignmentModel.ReviewerAssignment{}).
		Where("id = ?", assignmentID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return assignmentModel.ErrAssignmentNotFound
	}
	return nil
}

// Complete marks the assignment completed and links the review.
func (r *repository) Complete(
	ctx context.Context,
	paperID, reviewerEmail, reviewID string,
	completedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&assignmentModel.ReviewerAssignment{}).
		Where("paper_id = ? AND reviewer_email = ?", paperID, reviewerEmail).
		Updates(map[string]interface{}{
			"status":       assignmentModel.StatusCompleted,
			"completed_at": completedAt,
			"review_id":    reviewID,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return assignmentModel.ErrAssignmentNotFound
	}
	return nil
}
