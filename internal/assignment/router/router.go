// Package router provides assignment module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/openscholar/review-service/internal/assignment/handler"
	"github.com/openscholar/review-service/internal/assignment/repository"
	"github.com/openscholar/review-service/internal/assignment/service"
	"github.com/openscholar/review-service/internal/notification"
	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	proposalRepository "github.com/openscholar/review-service/internal/proposal/repository"
	threadRepository "github.com/openscholar/review-service/internal/thread/repository"
	userRepository "github.com/openscholar/review-service/internal/user/repository"
)

// RegisterRoutes registers assignment module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, notifier notification.Notifier, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(
		repo,
		proposalRepository.New(db),
		paperRepository.New(db),
		threadRepository.New(db),
		userRepository.New(db),
		notifier,
		logger,
	)
	h := handler.New(svc, logger)

	r.POST("/assignments", h.AssignReviewer)
	r.POST("/assignments/:id/respond", h.RespondToInvitation)
	r.GET("/papers/:id/assignments", h.ListPaperAssignments)
}
