// Package handler provides HTTP handlers for revision endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	paperModel "github.com/openscholar/review-service/internal/paper/model"
	revisionModel "github.com/openscholar/review-service/internal/revision/model"
	"github.com/openscholar/review-service/internal/revision/service"
	userModel "github.com/openscholar/review-service/internal/user/model"
)

// Handler handles HTTP requests for revision endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new revision handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SubmitRevision handles POST /papers/:id/revisions request.
func (h *Handler) SubmitRevision(c *gin.Context) {
	var req revisionModel.SubmitRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	revision, err := h.service.Submit(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, paperModel.ErrPaperNotFound):
			notFoundResponse(c, "paper not found")
		case errors.Is(err, revisionModel.ErrNotPaperAuthor):
			errorResponse(c, "FORBIDDEN", "only the paper author may submit revisions", http.StatusForbidden)
		case errors.Is(err, revisionModel.ErrMissingFileURL):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("submit revision failed", "paper_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"revision": revision})
}

// UpdateRevision handles PATCH /revisions/:id request.
func (h *Handler) UpdateRevision(c *gin.Context) {
	var req revisionModel.UpdateRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	revision, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, revisionModel.ErrRevisionNotFound):
			notFoundResponse(c, "revision not found")
		case errors.Is(err, userModel.ErrUserNotFound):
			notFoundResponse(c, "reviewer not found")
		case errors.Is(err, revisionModel.ErrReviewerOnly),
			errors.Is(err, revisionModel.ErrReviewerNotAssigned):
			errorResponse(c, "FORBIDDEN", err.Error(), http.StatusForbidden)
		case errors.Is(err, revisionModel.ErrInvalidStatus):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		case errors.Is(err, revisionModel.ErrTerminalStatus):
			errorResponse(c, "CONFLICT", err.Error(), http.StatusConflict)
		default:
			h.logger.Errorw("update revision failed", "revision_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"revision": revision})
}

// ListPaperRevisions handles GET /papers/:id/revisions request.
func (h *Handler) ListPaperRevisions(c *gin.Context) {
	revisions, err := h.service.ListByPaper(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, paperModel.ErrPaperNotFound) {
			notFoundResponse(c, "paper not found")
			return
		}
		h.logger.Errorw("list revisions failed", "paper_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revisions": revisions, "total": len(revisions)})
}
