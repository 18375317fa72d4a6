// Package router provides paper module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/openscholar/review-service/internal/paper/handler"
	"github.com/openscholar/review-service/internal/paper/repository"
	"github.com/openscholar/review-service/internal/paper/service"
)

// RegisterRoutes registers paper module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/papers", h.SubmitPaper)
	r.GET("/papers/:id", h.GetPaper)
	r.POST("/papers/:id/status", h.UpdatePaperStatus)
}
