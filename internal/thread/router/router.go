// Package router provides thread module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	"github.com/openscholar/review-service/internal/thread/handler"
	"github.com/openscholar/review-service/internal/thread/repository"
	"github.com/openscholar/review-service/internal/thread/service"
)

// RegisterRoutes registers thread module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	paperRepo := paperRepository.New(db)
	svc := service.New(repo, paperRepo, logger)
	h := handler.New(svc, logger)

	r.POST("/threads", h.EnsureThread)
	r.GET("/threads", h.ListThreads)
	r.POST("/threads/:id/messages", h.PostMessage)
	r.POST("/threads/:id/read", h.MarkRead)
}
