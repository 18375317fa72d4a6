// Package handler provides HTTP handlers for paper endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	paperModel "github.com/openscholar/review-service/internal/paper/model"
	"github.com/openscholar/review-service/internal/paper/service"
)

// Handler handles HTTP requests for paper endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new paper handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SubmitPaper handles POST /papers request.
func (h *Handler) SubmitPaper(c *gin.Context) {
	var req paperModel.SubmitPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	paper, err := h.service.SubmitDirect(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, paperModel.ErrMissingTitle) {
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("submit paper failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"paper": paper})
}

// UpdatePaperStatus handles POST /papers/:id/status request.
func (h *Handler) UpdatePaperStatus(c *gin.Context) {
	var req paperModel.UpdatePaperStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	paper, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, paperModel.ErrPaperNotFound):
			notFoundResponse(c, "paper not found")
		case errors.Is(err, paperModel.ErrAdminOnly):
			errorResponse(c, "FORBIDDEN", "operation requires admin role", http.StatusForbidden)
		case errors.Is(err, paperModel.ErrInvalidTransition):
			errorResponse(c, "CONFLICT", "invalid paper status transition", http.StatusConflict)
		default:
			h.logger.Errorw("update paper status failed", "paper_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"paper": paper})
}

// GetPaper handles GET /papers/:id request.
func (h *Handler) GetPaper(c *gin.Context) {
	paper, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, paperModel.ErrPaperNotFound) {
			notFoundResponse(c, "paper not found")
			return
		}
		h.logger.Errorw("get paper failed", "paper_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paper": paper})
}
