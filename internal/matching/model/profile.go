// Package model provides domain models for the matching module.
package model

import (
	"time"

	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
)

// Availability statuses for a reviewer profile.
const (
	AvailabilityAvailable   = "available"
	AvailabilityLimited     = "limited"
	AvailabilityUnavailable = "unavailable"
)

// ReviewerExpertiseProfile holds reviewer-side metadata used as scoring
// input. Matches the reviewer_expertise_profiles table schema.
type ReviewerExpertiseProfile struct {
	UserID               string    `gorm:"primaryKey;column:user_id;type:varchar(64)"                     json:"user_id"`
	ResearchAreas        string    `gorm:"column:research_areas;type:text"                                json:"-"`
	Keywords             string    `gorm:"column:keywords;type:text"                                      json:"-"`
	HIndex               *int      `gorm:"column:h_index"                                                 json:"h_index,omitempty"`
	YearsExperience      *int      `gorm:"column:years_experience"                                        json:"years_experience,omitempty"`
	AvailabilityStatus   string    `gorm:"column:availability_status;type:varchar(32);not null;default:available" json:"availability_status"`
	CurrentReviewsCount  int       `gorm:"column:current_reviews_count;not null;default:0"                json:"current_reviews_count"`
	MaxConcurrentReviews int       `gorm:"column:max_concurrent_reviews;not null;default:0"               json:"max_concurrent_reviews"`
	CreatedAt            time.Time `gorm:"column:created_at;not null"                                     json:"-"`
	UpdatedAt            time.Time `gorm:"column:updated_at;not null"                                     json:"-"`
}

// TableName specifies the table name for GORM.
func (ReviewerExpertiseProfile) TableName() string {
	return "reviewer_expertise_profiles"
}

// ResearchAreaList returns the profile research areas as a slice.
func (p *ReviewerExpertiseProfile) ResearchAreaList() []string {
	return proposalModel.SplitKeywords(p.ResearchAreas)
}

// KeywordList returns the profile keywords as a slice.
func (p *ReviewerExpertiseProfile) KeywordList() []string {
	return proposalModel.SplitKeywords(p.Keywords)
}
