// Package handler provides HTTP handlers for matching endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchingModel "github.com/openscholar/review-service/internal/matching/model"
	"github.com/openscholar/review-service/internal/matching/service"
	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
)

// Handler handles HTTP requests for matching endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new matching handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RankCandidates handles GET /proposals/:id/candidates request.
func (h *Handler) RankCandidates(c *gin.Context) {
	resp, err := h.service.RankForProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, proposalModel.ErrProposalNotFound) {
			notFoundResponse(c, "proposal not found")
			return
		}
		h.logger.Errorw("rank candidates failed", "proposal_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpsertProfile handles PUT /reviewers/:id/profile request.
func (h *Handler) UpsertProfile(c *gin.Context) {
	var req matchingModel.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "VALIDATION_FAILED", "invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpsertProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, matchingModel.ErrInvalidAvailability) {
			errorResponse(c, "VALIDATION_FAILED", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("upsert profile failed", "user_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
