// Package handler provides HTTP handlers for assignment endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	assignmentModel "github.com/openscholar/review-service/internal/assignment/model"
	"github.com/openscholar/review-service/internal/assignment/service"
	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
	userModel "github.com/openscholar/review-service/internal/user/model"
)

// Handler handles HTTP requests for assignment endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new assignment handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AssignReviewer handles POST /assignments request.
func (h *Handler) AssignReviewer(c *gin.Context) {
	var req assignmentModel.AssignReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Assign(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, userModel.ErrUserNotFound):
			notFoundResponse(c, "reviewer not found")
		case errors.Is(err, proposalModel.ErrProposalNotFound):
			notFoundResponse(c, "proposal not found")
		case errors.Is(err, assignmentModel.ErrMissingReviewer):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("assign reviewer failed",
				"proposal_id", req.ProposalID, "reviewer_id", req.ReviewerID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RespondToInvitation handles POST /assignments/:id/respond request.
func (h *Handler) RespondToInvitation(c *gin.Context) {
	var req assignmentModel.RespondToInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	assignment, err := h.service.Respond(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, assignmentModel.ErrAssignmentNotFound):
			notFoundResponse(c, "reviewer assignment not found")
		case errors.Is(err, assignmentModel.ErrNotAssignmentOwner):
			errorResponse(c, "FORBIDDEN", "actor is not the assigned reviewer", http.StatusForbidden)
		case errors.Is(err, assignmentModel.ErrInvalidResponse):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("respond to invitation failed",
				"assignment_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

// ListPaperAssignments handles GET /papers/:id/assignments request.
func (h *Handler) ListPaperAssignments(c *gin.Context) {
	assignments, err := h.service.ListByPaper(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Errorw("list assignments failed", "paper_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments, "total": len(assignments)})
}
