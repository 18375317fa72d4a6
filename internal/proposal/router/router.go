// Package router provides proposal module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/openscholar/review-service/internal/proposal/handler"
	"github.com/openscholar/review-service/internal/proposal/repository"
	"github.com/openscholar/review-service/internal/proposal/service"
)

// RegisterRoutes registers proposal module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/proposals", h.CreateProposal)
	r.GET("/proposals", h.ListProposals)
	r.GET("/proposals/:id", h.GetProposal)
	r.POST("/proposals/:id/submit", h.SubmitProposal)
	r.POST("/proposals/:id/decision", h.DecideProposal)
}
