package model

import "time"

// Revision statuses. The transition set is deliberately permissive: only
// the terminal states are enforced, matching how the editorial workflow
// is actually operated.
const (
	StatusSubmitted         = "submitted"
	StatusUnderReview       = "under_review"
	StatusRevisionRequested = "revision_requested"
	StatusApproved          = "approved"
	StatusRejected          = "rejected"
)

// Revision is one versioned resubmission of a paper's manuscript.
// Matches the revisions table schema. Version numbers per paper are
// gap-free and strictly increasing; the (paper_id, version_number)
// unique index backs the concurrent-submission retry.
type Revision struct {
	ID               string    `gorm:"primaryKey;column:id;type:varchar(64)"                                        json:"id"`
	PaperID          string    `gorm:"column:paper_id;type:varchar(64);not null;uniqueIndex:uidx_revisions_paper_version" json:"paper_id"`
	VersionNumber    int       `gorm:"column:version_number;not null;uniqueIndex:uidx_revisions_paper_version"      json:"version_number"`
	FileURL          string    `gorm:"column:file_url;type:varchar(1000);not null"                                  json:"file_url"`
	CoverLetter      string    `gorm:"column:cover_letter;type:text"                                                json:"cover_letter,omitempty"`
	Status           string    `gorm:"column:status;type:varchar(32);not null"                                      json:"status"`
	ReviewerFeedback string    `gorm:"column:reviewer_feedback;type:text"                                           json:"reviewer_feedback,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"                                                   json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null"                                                   json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Revision) TableName() string {
	return "revisions"
}

// ValidStatus reports whether a status value is known.
func ValidStatus(status string) bool {
	switch status {
	case StatusSubmitted, StatusUnderReview, StatusRevisionRequested,
		StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
