package model

import "time"

// Paper statuses. The lifecycle advances monotonically except DISPUTED,
// which is only reachable from PUBLISHED.
const (
	StatusDraft       = "DRAFT"
	StatusSubmitted   = "SUBMITTED"
	StatusUnderReview = "UNDER_REVIEW"
	StatusPublished   = "PUBLISHED"
	StatusDisputed    = "DISPUTED"
)

// Paper represents the reviewable manuscript entity.
// Matches the papers table schema. At most one paper exists per proposal;
// the row is created lazily on first reviewer assignment or directly by
// the author.
type Paper struct {
	ID                string    `gorm:"primaryKey;column:id;type:varchar(64)"                              json:"id"`
	Title             string    `gorm:"column:title;type:varchar(500);not null"                            json:"title"`
	AuthorID          string    `gorm:"column:author_id;type:varchar(64);not null;index:idx_papers_author" json:"author_id"`
	ProposalID        *string   `gorm:"column:proposal_id;type:varchar(64);uniqueIndex:uidx_papers_proposal" json:"proposal_id,omitempty"`
	Status            string    `gorm:"column:status;type:varchar(32);not null;index:idx_papers_status"    json:"status"`
	ValidationScore   int       `gorm:"column:validation_score;not null;default:0"                         json:"validation_score"`
	CurrentRevisionID *string   `gorm:"column:current_revision_id;type:varchar(64)"                        json:"current_revision_id,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"                                         json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null"                                         json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Paper) TableName() string {
	return "papers"
}

// statusRank orders the monotonic part of the lifecycle.
var statusRank = map[string]int{
	StatusDraft:       0,
	StatusSubmitted:   1,
	StatusUnderReview: 2,
	StatusPublished:   3,
}

// CanTransition reports whether a paper may move from one status to
// another. Forward moves through the monotonic chain are allowed;
// DISPUTED is reachable from PUBLISHED only.
func CanTransition(from, to string) bool {
	if to == StatusDisputed {
		return from == StatusPublished
	}
	fromRank, fromOK := statusRank[from]
	toRank, toOK := statusRank[to]
	return fromOK && toOK && toRank > fromRank
}
