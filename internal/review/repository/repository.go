// Package repository provides data access layer for the review module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	reviewModel "github.com/openscholar/review-service/internal/review/model"
)

// Repository defines the interface for review data access operations.
type Repository interface {
	// Upsert inserts or overwrites the review keyed on
	// (paper_id, reviewer_id). A resubmission bumps updated_at only.
	Upsert(ctx context.Context, review *reviewModel.Review) (*reviewModel.Review, error)

	// GetByPaperAndReviewer finds the review for a paper/reviewer pair.
	GetByPaperAndReviewer(ctx context.Context, paperID, reviewerID string) (*reviewModel.Review, error)

	// ListByPaper returns a paper's reviews, oldest first.
	ListByPaper(ctx context.Context, paperID string) ([]reviewModel.Review, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new review repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts or overwrites the review keyed on (paper_id, reviewer_id).
func (r *repository) Upsert(
	ctx context.Context,
	review *reviewModel.Review,
) (*reviewModel.Review, error) {
	now := time.Now()
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "paper_id"}, {Name: "reviewer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"content",
				"recommendation",
				"confidence_level",
				"is_anonymous",
				"updated_at",
			}),
		}).
		Create(review).Error
	if err != nil {
		return nil, err
	}

	return r.GetByPaperAndReviewer(ctx, review.PaperID, review.ReviewerID)
}

// GetByPaperAndReviewer finds the review for a paper/reviewer pair.
func (r *repository) GetByPaperAndReviewer(
	ctx context.Context,
	paperID, reviewerID string,
) (*reviewModel.Review, error) {
	var review reviewModel.Review
	err := r.db.WithContext(ctx).
		Where("paper_id = ? AND reviewer_id = ?", paperID, reviewerID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reviewModel.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// ListByPaper returns a paper's reviews, oldest first.
func (r *repository) ListByPaper(
	ctx context.Context,
	paperID string,
) ([]reviewModel.Review, error) {
	var reviews []reviewModel.Review
	err := r.db.WithContext(ctx).
		Where("paper_id = ?", paperID).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []reviewModel.Review{}
	}
	return reviews, nil
}
