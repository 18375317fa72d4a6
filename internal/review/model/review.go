package model

import "time"

// Review recommendations.
const (
	RecommendAccept         = "accept"
	RecommendMinorRevisions = "minor_revisions"
	RecommendMajorRevisions = "major_revisions"
	RecommendReject         = "reject"
)

// Confidence levels.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Review is a reviewer's verdict on a paper. Matches the reviews table
// schema. The (paper_id, reviewer_id) pair is unique: a resubmission
// overwrites the previous text, no history is kept.
type Review struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(64)"                                      json:"id"`
	PaperID         string    `gorm:"column:paper_id;type:varchar(64);not null;uniqueIndex:uidx_reviews_paper_reviewer" json:"paper_id"`
	ReviewerID      string    `gorm:"column:reviewer_id;type:varchar(64);not null;uniqueIndex:uidx_reviews_paper_reviewer" json:"reviewer_id"`
	Content         string    `gorm:"column:content;type:text;not null"                                          json:"content"`
	Recommendation  string    `gorm:"column:recommendation;type:varchar(32);not null"                            json:"recommendation"`
	ConfidenceLevel string    `gorm:"column:confidence_level;type:varchar(32);not null"                          json:"confidence_level"`
	IsAnonymous     bool      `gorm:"column:is_anonymous;not null;default:false"                                 json:"is_anonymous"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"                                                 json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"                                                 json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Review) TableName() string {
	return "reviews"
}

// ValidRecommendation reports whether a recommendation value is known.
func ValidRecommendation(recommendation string) bool {
	switch recommendation {
	case RecommendAccept, RecommendMinorRevisions, RecommendMajorRevisions, RecommendReject:
		return true
	}
	return false
}

// ValidConfidence reports whether a confidence level is known.
func ValidConfidence(confidence string) bool {
	switch confidence {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}
