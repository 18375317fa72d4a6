// Package model provides data transfer objects and domain models for the
// thread module.
package model

// EnsureThreadRequest represents the request to open (or reuse) the thread
// for a paper/reviewer pair. Either party may call it.
type EnsureThreadRequest struct {
	PaperID    string `json:"paper_id"    binding:"required"`
	ReviewerID string `json:"reviewer_id" binding:"required"`
}

// PostMessageRequest represents the request to append a message to a thread.
type PostMessageRequest struct {
	SenderID    string `json:"sender_id"   binding:"required"`
	SenderRole  string `json:"sender_role" binding:"required"`
	Content     string `json:"content"     binding:"required"`
	MessageType string `json:"message_type"`
}

// MarkReadRequest represents the request to mark the counterparty's
// messages in a thread as read.
type MarkReadRequest struct {
	ReaderRole string `json:"reader_role" binding:"required"`
}

// ThreadResponse is a thread with its messages and the caller's unread count.
type ThreadResponse struct {
	Thread      ReviewThread `json:"thread"`
	Messages    []Message    `json:"messages"`
	UnreadCount int64        `json:"unread_count"`
}

// ListThreadsResponse is the thread list for one party.
type ListThreadsResponse struct {
	Threads []ThreadResponse `json:"threads"`
	Total   int              `json:"total"`
}
