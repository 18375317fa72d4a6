// Package repository provides data access layer for the matching module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	matchingModel "github.com/openscholar/review-service/internal/matching/model"
)

// ErrProfileNotFound indicates that the requested profile does not exist.
var ErrProfileNotFound = errors.New("reviewer profile not found")

// Repository defines the interface for reviewer-profile data access.
type Repository interface {
	// ListProfiles returns every reviewer profile ordered by user_id, so
	// the candidate pool order (and therefore tie order) is stable.
	ListProfiles(ctx context.Context) ([]matchingModel.ReviewerExpertiseProfile, error)

	// GetByUserID finds a profile by reviewer user id.
	GetByUserID(ctx context.Context, userID string) (*matchingModel.ReviewerExpertiseProfile, error)

	// Upsert inserts or replaces the profile keyed on user_id.
	Upsert(ctx context.Context, profile *matchingModel.ReviewerExpertiseProfile) (*matchingModel.ReviewerExpertiseProfile, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new matching repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListProfiles returns every reviewer profile ordered by user_id.
func (r *repository) ListProfiles(
	ctx context.Context,
) ([]matchingModel.ReviewerExpertiseProfile, error) {
	var profiles []matchingModel.ReviewerExpertiseProfile
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []matchingModel.ReviewerExpertiseProfile{}
	}
	return profiles, nil
}

// GetByUserID finds a profile by reviewer user id.
func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) (*matchingModel.ReviewerExpertiseProfile, error) {
	var profile matchingModel.ReviewerExpertiseProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts or replaces the profile keyed on user_id.
func (r *repository) Upsert(
	ctx context.Context,
	profile *matchingModel.ReviewerExpertiseProfile,
) (*matchingModel.ReviewerExpertiseProfile, error) {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"research_areas",
				"keywords",
				"h_index",
				"years_experience",
				"availability_status",
				"current_reviews_count",
				"max_concurrent_reviews",
				"updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}
