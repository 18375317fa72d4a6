// Package handler provides HTTP handlers for review endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	paperModel "github.com/openscholar/review-service/internal/paper/model"
	reviewModel "github.com/openscholar/review-service/internal/review/model"
	"github.com/openscholar/review-service/internal/review/service"
	userModel "github.com/openscholar/review-service/internal/user/model"
)

// Handler handles HTTP requests for review endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new review handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SubmitReview handles POST /papers/:id/reviews request.
func (h *Handler) SubmitReview(c *gin.Context) {
	var req reviewModel.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	review, err := h.service.Submit(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, paperModel.ErrPaperNotFound):
			notFoundResponse(c, "paper not found")
		case errors.Is(err, userModel.ErrUserNotFound):
			notFoundResponse(c, "reviewer not found")
		case errors.Is(err, reviewModel.ErrNotAssigned):
			errorResponse(c, "FORBIDDEN", "reviewer is not assigned to this paper", http.StatusForbidden)
		case errors.Is(err, reviewModel.ErrMissingContent),
			errors.Is(err, reviewModel.ErrInvalidRecommendation),
			errors.Is(err, reviewModel.ErrInvalidConfidence):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("submit review failed", "paper_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// ListPaperReviews handles GET /papers/:id/reviews request.
func (h *Handler) ListPaperReviews(c *gin.Context) {
	reviews, err := h.service.ListByPaper(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Errorw("list reviews failed", "paper_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}
