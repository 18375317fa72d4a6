// Package service provides business logic layer for the thread module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	threadModel "github.com/openscholar/review-service/internal/thread/model"
	"github.com/openscholar/review-service/internal/thread/repository"
)

// Service defines the interface for thread business logic operations.
type Service interface {
	// Ensure opens the thread for a paper/reviewer pair, or returns the
	// existing one. Idempotent.
	Ensure(ctx context.Context, req *threadModel.EnsureThreadRequest) (*threadModel.ReviewThread, error)

	// PostMessage appends a message to a thread.
	PostMessage(ctx context.Context, threadID string, req *threadModel.PostMessageRequest) (*threadModel.Message, error)

	// ListForParty returns the party's threads with messages and unread counts.
	ListForParty(ctx context.Context, partyID, role string) (*threadModel.ListThreadsResponse, error)

	// MarkRead marks the counterparty's messages in a thread as read.
	MarkRead(ctx context.Context, threadID, readerRole string) error
}

type service struct {
	repo      repository.Repository
	paperRepo paperRepository.Repository
	logger    *zap.SugaredLogger
}

// New creates a new thread service instance.
func New(
	repo repository.Repository,
	paperRepo paperRepository.Repository,
	logger *zap.SugaredLogger,
) Service {
	return &service{repo: repo, paperRepo: paperRepo, logger: logger}
}

// Ensure opens the thread for a paper/reviewer pair, or returns the
// existing one.
func (s *service) Ensure(
	ctx context.Context,
	req *threadModel.EnsureThreadRequest,
) (*threadModel.ReviewThread, error) {
	paper, err := s.paperRepo.GetByID(ctx, req.PaperID)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Review: %s", paper.Title)
	thread, err := s.repo.Ensure(ctx, paper.ID, req.ReviewerID, paper.AuthorID, subject)
	if err != nil {
		s.logger.Errorw("thread ensure failed",
			"paper_id", req.PaperID, "reviewer_id", req.ReviewerID, "error", err)
		return nil, err
	}

	return thread, nil
}

// PostMessage appends a message to a thread.
func (s *service) PostMessage(
	ctx context.Context,
	threadID string,
	req *threadModel.PostMessageRequest,
) (*threadModel.Message, error) {
	if req.SenderRole != threadModel.SenderAuthor && req.SenderRole != threadModel.SenderReviewer {
		return nil, threadModel.ErrInvalidSenderRole
	}
	if req.Content == "" {
		return nil, threadModel.ErrMissingContent
	}

	if _, err := s.repo.GetByID(ctx, threadID); err != nil {
		return nil, err
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = "text"
	}

	msg := &threadModel.Message{
		ThreadID:    threadID,
		SenderID:    req.SenderID,
		SenderType:  req.SenderRole,
		Content:     req.Content,
		MessageType: messageType,
	}

	created, err := s.repo.CreateMessage(ctx, msg)
	if err != nil {
		s.logger.Errorw("post message failed", "thread_id", threadID, "error", err)
		return nil, err
	}

	s.logger.Debugw("message posted",
		"thread_id", threadID, "sender_id", req.SenderID, "sender_role", req.SenderRole)
	return created, nil
}

// ListForParty returns the party's threads with messages and unread counts.
func (s *service) ListForParty(
	ctx context.Context,
	partyID, role string,
) (*threadModel.ListThreadsResponse, error) {
	if role != threadModel.SenderAuthor && role != threadModel.SenderReviewer {
		return nil, threadModel.ErrInvalidSenderRole
	}

	threads, err := s.repo.ListForParty(ctx, partyID, role)
	if err != nil {
		return nil, err
	}

	responses := make([]threadModel.ThreadResponse, 0, len(threads))
	for i := range threads {
		messages, err := s.repo.ListMessages(ctx, threads[i].ID)
		if err != nil {
			return nil, err
		}
		unread, err := s.repo.CountUnread(ctx, threads[i].ID, role)
		if err != nil {
			return nil, err
		}
		responses = append(responses, threadModel.ThreadResponse{
			Thread:      threads[i],
			Messages:    messages,
			UnreadCount: unread,
		})
	}

	return &threadModel.ListThreadsResponse{
		Threads: responses,
		Total:   len(responses),
	}, nil
}

// MarkRead marks the counterparty's messages in a thread as read.
func (s *service) MarkRead(ctx context.Context, threadID, readerRole string) error {
	if readerRole != threadModel.SenderAuthor && readerRole != threadModel.SenderReviewer {
		return threadModel.ErrInvalidSenderRole
	}

	if _, err := s.repo.GetByID(ctx, threadID); err != nil {
		return err
	}

	return s.repo.MarkRead(ctx, threadID, readerRole)
}
