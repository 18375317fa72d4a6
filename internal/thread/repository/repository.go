// Package repository provides data access layer for the thread module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	threadModel "github.com/openscholar/review-service/internal/thread/model"
)

// Repository defines the interface for thread data access operations.
type Repository interface {
	// Ensure returns the thread for a (paper, reviewer, author) triple,
	// creating it when absent. The unique index on the triple makes
	// concurrent ensures converge to one row.
	Ensure(ctx context.Context, paperID, reviewerID, authorID, subject string) (*threadModel.ReviewThread, error)

	// GetByID finds a thread by id.
	GetByID(ctx context.Context, threadID string) (*threadModel.ReviewThread, error)

	// ListForParty returns threads where the party is the given side,
	// most recently touched first.
	ListForParty(ctx context.Context, partyID, role string) ([]threadModel.ReviewThread, error)

	// CreateMessage appends a message and touches the thread's updated_at.
	CreateMessage(ctx context.Context, msg *threadModel.Message) (*threadModel.Message, error)

	// ListMessages returns a thread's messages, oldest first.
	ListMessages(ctx context.Context, threadID string) ([]threadModel.Message, error)

	// CountUnread counts unread messages in a thread sent by the other party.
	CountUnread(ctx context.Context, threadID, readerRole string) (int64, error)

	// MarkRead flips is_read on the other party's messages in a thread.
	MarkRead(ctx context.Context, threadID, readerRole string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new thread repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Ensure returns the thread for a triple, creating it when absent.
func (r *repository) Ensure(
	ctx context.Context,
	paperID, reviewerID, authorID, subject string,
) (*threadModel.ReviewThread, error) {
	now := time.Now()
	thread := &threadModel.ReviewThread{
		ID:         uuid.NewString(),
		PaperID:    paperID,
		ReviewerID: reviewerID,
		AuthorID:   authorID,
		Subject:    subject,
		Status:     threadModel.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "paper_id"}, {Name: "reviewer_id"}, {Name: "author_id"},
			},
			DoNothing: true,
		}).
		Create(thread).Error
	if err != nil {
		return nil, err
	}

	var existing threadModel.ReviewThread
	err = r.db.WithContext(ctx).
		Where("paper_id = ? AND reviewer_id = ? AND author_id = ?", paperID, reviewerID, authorID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByID finds a thread by id.
func (r *repository) GetByID(
	ctx context.Context,
	threadID string,
) (*threadModel.ReviewThread, error) {
	var thread threadModel.ReviewThread
	err := r.db.WithContext(ctx).
		Where("id = ?", threadID).
		First(&thread).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, threadModel.ErrThreadNotFound
		}
		return nil, err
	}
	return &thread, nil
}

// ListForParty returns threads where the party is the given side.
func (r *repository) ListForParty(
	ctx context.Context,
	partyID, role string,
) ([]threadModel.ReviewThread, error) {
	column := "author_id"
	if role == threadModel.SenderReviewer {
		column = "reviewer_id"
	}

	var threads []threadModel.ReviewThread
	err := r.db.WithContext(ctx).
		Where(column+" = ?", partyID).
		Order("updated_at DESC").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	if threads == nil {
		threads = []threadModel.ReviewThread{}
	}
	return threads, nil
}

// CreateMessage appends a message and touches the thread's updated_at.
func (r *repository) CreateMessage(
	ctx context.Context,
	msg *threadModel.Message,
) (*threadModel.Message, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&threadModel.ReviewThread{}).
			Where("id = ?", msg.ThreadID).
			Update("updated_at", msg.CreatedAt).Error
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns a thread's messages, oldest first.
func (r *repository) ListMessages(
	ctx context.Context,
	threadID string,
) ([]threadModel.Message, error) {
	var messages []threadModel.Message
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []threadModel.Message{}
	}
	return messages, nil
}

// CountUnread counts unread messages in a thread sent by the other party.
func (r *repository) CountUnread(
	ctx context.Context,
	threadID, readerRole string,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&threadModel.Message{}).
		Where("thread_id = ? AND is_read = ? AND sender_type <> ?", threadID, false, readerRole).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead flips is_read on the other party's messages in a thread.
func (r *repository) MarkRead(ctx context.Context, threadID, readerRole string) error {
	return r.db.WithContext(ctx).
		Model(&threadModel.Message{}).
		Where("thread_id = ? AND is_read = ? AND sender_type <> ?", threadID, false, readerRole).
		Update("is_read", true).Error
}
