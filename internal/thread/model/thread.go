package model

import "time"

// Thread statuses.
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// Message sender types.
const (
	SenderAuthor   = "author"
	SenderReviewer = "reviewer"
)

// ReviewThread is a conversation scoped to exactly one
// (paper, reviewer, author) triple. Matches the review_threads table
// schema; the triple carries a unique index so lazy creation converges
// to one row.
type ReviewThread struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(64)"                                             json:"id"`
	PaperID    string    `gorm:"column:paper_id;type:varchar(64);not null;uniqueIndex:uidx_threads_triple"         json:"paper_id"`
	ReviewerID string    `gorm:"column:reviewer_id;type:varchar(64);not null;uniqueIndex:uidx_threads_triple;index:idx_threads_reviewer" json:"reviewer_id"`
	AuthorID   string    `gorm:"column:author_id;type:varchar(64);not null;uniqueIndex:uidx_threads_triple;index:idx_threads_author"     json:"author_id"`
	Subject    string    `gorm:"column:subject;type:varchar(500);not null"                                         json:"subject"`
	Status     string    `gorm:"column:status;type:varchar(32);not null;default:active"                            json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"                                                        json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"                                                        json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ReviewThread) TableName() string {
	return "review_threads"
}

// Message belongs to exactly one thread. Append-only; isRead is the only
// field ever mutated after creation.
type Message struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(64)"                               json:"id"`
	ThreadID    string    `gorm:"column:thread_id;type:varchar(64);not null;index:idx_messages_thread" json:"thread_id"`
	SenderID    string    `gorm:"column:sender_id;type:varchar(64);not null"                          json:"sender_id"`
	SenderType  string    `gorm:"column:sender_type;type:varchar(32);not null"                        json:"sender_type"`
	Content     string    `gorm:"column:content;type:text;not null"                                   json:"content"`
	MessageType string    `gorm:"column:message_type;type:varchar(32);not null;default:text"          json:"message_type"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false"                               json:"is_read"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                                          json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "messages"
}
