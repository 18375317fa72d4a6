// Package router provides review module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmentRepository "github.com/openscholar/review-service/internal/assignment/repository"
	"github.com/openscholar/review-service/internal/notification"
	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	"github.com/openscholar/review-service/internal/review/handler"
	"github.com/openscholar/review-service/internal/review/repository"
	"github.com/openscholar/review-service/internal/review/service"
	userRepository "github.com/openscholar/review-service/internal/user/repository"
)

// RegisterRoutes registers review module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, notifier notification.Notifier, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(
		repo,
		assignmentRepository.New(db),
		paperRepository.New(db),
		userRepository.New(db),
		notifier,
		logger,
	)
	h := handler.New(svc, logger)

	r.POST("/papers/:id/reviews", h.SubmitReview)
	r.GET("/papers/:id/reviews", h.ListPaperReviews)
}
