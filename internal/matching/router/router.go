// Package router provides matching module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/openscholar/review-service/internal/matching/handler"
	"github.com/openscholar/review-service/internal/matching/repository"
	"github.com/openscholar/review-service/internal/matching/service"
	proposalRepository "github.com/openscholar/review-service/internal/proposal/repository"
)

// RegisterRoutes registers matching module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	proposalRepo := proposalRepository.New(db)
	svc := service.New(repo, proposalRepo, logger)
	h := handler.New(svc, logger)

	r.GET("/proposals/:id/candidates", h.RankCandidates)
	r.PUT("/reviewers/:id/profile", h.UpsertProfile)
}
