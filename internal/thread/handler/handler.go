// Package handler provides HTTP handlers for thread endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	paperModel "github.com/openscholar/review-service/internal/paper/model"
	threadModel "github.com/openscholar/review-service/internal/thread/model"
	"github.com/openscholar/review-service/internal/thread/service"
)

// Handler handles HTTP requests for thread endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new thread handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// EnsureThread handles POST /threads request.
func (h *Handler) EnsureThread(c *gin.Context) {
	var req threadModel.EnsureThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	thread, err := h.service.Ensure(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, paperModel.ErrPaperNotFound) {
			notFoundResponse(c, "paper not found")
			return
		}
		h.logger.Errorw("ensure thread failed", "paper_id", req.PaperID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"thread": thread})
}

// PostMessage handles POST /threads/:id/messages request.
func (h *Handler) PostMessage(c *gin.Context) {
	var req threadModel.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.service.PostMessage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, threadModel.ErrThreadNotFound):
			notFoundResponse(c, "review thread not found")
		case errors.Is(err, threadModel.ErrInvalidSenderRole),
			errors.Is(err, threadModel.ErrMissingContent):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("post message failed", "thread_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// ListThreads handles GET /threads?party_id=&role= request.
func (h *Handler) ListThreads(c *gin.Context) {
	partyID := c.Query("party_id")
	role := c.Query("role")
	if partyID == "" || role == "" {
		errorResponse(c, "VALIDATION_FAILED",
			"party_id and role query parameters are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListForParty(c.Request.Context(), partyID, role)
	if err != nil {
		if errors.Is(err, threadModel.ErrInvalidSenderRole) {
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("list threads failed", "party_id", partyID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /threads/:id/read request.
func (h *Handler) MarkRead(c *gin.Context) {
	var req threadModel.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.service.MarkRead(c.Request.Context(), c.Param("id"), req.ReaderRole)
	if err != nil {
		switch {
		case errors.Is(err, threadModel.ErrThreadNotFound):
			notFoundResponse(c, "review thread not found")
		case errors.Is(err, threadModel.ErrInvalidSenderRole):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("mark read failed", "thread_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
