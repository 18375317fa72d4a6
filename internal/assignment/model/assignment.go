package model

import "time"

// Assignment statuses.
const (
	StatusInvited   = "invited"
	StatusAssigned  = "assigned"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

// ReviewerAssignment links a reviewer to a paper. Matches the
// reviewer_assignments table schema. The (paper_id, reviewer_email) pair
// is unique: re-assigning the same reviewer is an upsert, never a
// duplicate row.
type ReviewerAssignment struct {
	ID             string     `gorm:"primaryKey;column:id;type:varchar(64)"                                          json:"id"`
	PaperID        string     `gorm:"column:paper_id;type:varchar(64);not null;uniqueIndex:uidx_assignments_paper_email" json:"paper_id"`
	ReviewerID     *string    `gorm:"column:reviewer_id;type:varchar(64);index:idx_assignments_reviewer"             json:"reviewer_id,omitempty"`
	ReviewerEmail  string     `gorm:"column:reviewer_email;type:varchar(255);not null;uniqueIndex:uidx_assignments_paper_email" json:"reviewer_email"`
	IsLeadEditor   bool       `gorm:"column:is_lead_editor;not null;default:false"                                   json:"is_lead_editor"`
	CanCommunicate bool       `gorm:"column:can_communicate;not null;default:false"                                  json:"can_communicate"`
	Status         string     `gorm:"column:status;type:varchar(32);not null"                                        json:"status"`
	InvitedAt      *time.Time `gorm:"column:invited_at"                                                              json:"invited_at,omitempty"`
	AcceptedAt     *time.Time `gorm:"column:accepted_at"                                                             json:"accepted_at,omitempty"`
	CompletedAt    *time.Time `gorm:"column:completed_at"                                                            json:"completed_at,omitempty"`
	ReviewID       *string    `gorm:"column:review_id;type:varchar(64)"                                              json:"review_id,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at;not null"                                                     json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;not null"                                                     json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ReviewerAssignment) TableName() string {
	return "reviewer_assignments"
}
