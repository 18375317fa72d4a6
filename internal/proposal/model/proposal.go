package model

import (
	"strings"
	"time"
)

// Proposal statuses. A proposal leaves draft exactly once, when the author
// submits it; admin decisions move it between the later states.
const (
	StatusDraft             = "draft"
	StatusSubmitted         = "submitted"
	StatusUnderReview       = "under_review"
	StatusRevisionRequested = "revision_requested"
	StatusAccepted          = "accepted"
	StatusRejected          = "rejected"
)

// ValidStatus reports whether s is a known proposal status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview,
		StatusRevisionRequested, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Proposal represents a pitched research topic awaiting editorial acceptance.
// Matches the proposals table schema. Proposals are never hard-deleted.
type Proposal struct {
	ID            string     `gorm:"primaryKey;column:id;type:varchar(64)"                                 json:"id"`
	AuthorID      string     `gorm:"column:author_id;type:varchar(64);not null;index:idx_proposals_author" json:"author_id"`
	Title         string     `gorm:"column:title;type:varchar(500);not null"                               json:"title"`
	Abstract      string     `gorm:"column:abstract;type:text"                                             json:"abstract"`
	ResearchArea  string     `gorm:"column:research_area;type:varchar(255)"                                json:"research_area"`
	Keywords      string     `gorm:"column:keywords;type:text"                                             json:"-"`
	Status        string     `gorm:"column:status;type:varchar(32);not null;index:idx_proposals_status"    json:"status"`
	FundingAmount *float64   `gorm:"column:funding_amount;type:numeric(12,2)"                              json:"funding_amount,omitempty"`
	AdminNotes    string     `gorm:"column:admin_notes;type:text"                                          json:"admin_notes,omitempty"`
	SubmittedAt   *time.Time `gorm:"column:submitted_at"                                                   json:"submitted_at,omitempty"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at"                                                    json:"reviewed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null"                                            json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null"                                            json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Proposal) TableName() string {
	return "proposals"
}

// KeywordList returns the proposal keywords as a slice.
func (p *Proposal) KeywordList() []string {
	return SplitKeywords(p.Keywords)
}

// SetKeywordList stores a keyword slice in the comma-joined column format.
func (p *Proposal) SetKeywordList(keywords []string) {
	p.Keywords = JoinKeywords(keywords)
}

// SplitKeywords parses a comma-joined keyword column into a slice,
// dropping empty entries.
func SplitKeywords(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// JoinKeywords serializes a keyword slice into the comma-joined column format.
func JoinKeywords(keywords []string) string {
	trimmed := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			trimmed = append(trimmed, kw)
		}
	}
	return strings.Join(trimmed, ",")
}
