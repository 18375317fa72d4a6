// Package handler provides HTTP handlers for proposal endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
	"github.com/openscholar/review-service/internal/proposal/service"
)

// Handler handles HTTP requests for proposal endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new proposal handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateProposal handles POST /proposals request.
func (h *Handler) CreateProposal(c *gin.Context) {
	var req proposalModel.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, proposalModel.ErrMissingTitle) || errors.Is(err, proposalModel.ErrMissingAuthor) {
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("create proposal failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"proposal": resp})
}

// SubmitProposal handles POST /proposals/:id/submit request.
func (h *Handler) SubmitProposal(c *gin.Context) {
	var req proposalModel.SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), c.Param("id"), req.ActorID)
	if err != nil {
		switch {
		case errors.Is(err, proposalModel.ErrProposalNotFound):
			notFoundResponse(c, "proposal not found")
		case errors.Is(err, proposalModel.ErrNotProposalOwner):
			errorResponse(c, "FORBIDDEN", "actor is not the proposal author", http.StatusForbidden)
		case errors.Is(err, proposalModel.ErrAlreadySubmitted):
			errorResponse(c, "CONFLICT", "proposal already submitted", http.StatusConflict)
		default:
			h.logger.Errorw("submit proposal failed", "proposal_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"proposal": resp})
}

// DecideProposal handles POST /proposals/:id/decision request.
func (h *Handler) DecideProposal(c *gin.Context) {
	var req proposalModel.DecideProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, proposalModel.ErrProposalNotFound):
			notFoundResponse(c, "proposal not found")
		case errors.Is(err, proposalModel.ErrAdminOnly):
			errorResponse(c, "FORBIDDEN", "operation requires admin role", http.StatusForbidden)
		case errors.Is(err, proposalModel.ErrInvalidDecision):
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
		case errors.Is(err, proposalModel.ErrStillDraft):
			errorResponse(c, "CONFLICT", "proposal has not been submitted", http.StatusConflict)
		default:
			h.logger.Errorw("decide proposal failed", "proposal_id", c.Param("id"), "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"proposal": resp})
}

// GetProposal handles GET /proposals/:id request.
func (h *Handler) GetProposal(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, proposalModel.ErrProposalNotFound) {
			notFoundResponse(c, "proposal not found")
			return
		}
		h.logger.Errorw("get proposal failed", "proposal_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"proposal": resp})
}

// ListProposals handles GET /proposals?author_id= and GET /proposals?status=
// requests. The status filter is what the admin decision flow uses to find
// submitted proposals awaiting a verdict.
func (h *Handler) ListProposals(c *gin.Context) {
	authorID := c.Query("author_id")
	status := c.Query("status")
	if authorID == "" && status == "" {
		errorResponse(c, "VALIDATION_FAILED", "author_id or status query parameter is required", http.StatusBadRequest)
		return
	}

	var (
		resp []proposalModel.ProposalResponse
		err  error
	)
	if authorID != "" {
		resp, err = h.service.ListByAuthor(c.Request.Context(), authorID)
	} else {
		resp, err = h.service.ListByStatus(c.Request.Context(), status)
	}
	if err != nil {
		if errors.Is(err, proposalModel.ErrInvalidStatus) {
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("list proposals failed", "author_id", authorID, "status", status, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"proposals": resp, "total": len(resp)})
}
