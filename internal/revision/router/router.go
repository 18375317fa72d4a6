// Package router provides revision module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmentRepository "github.com/openscholar/review-service/internal/assignment/repository"
	"github.com/openscholar/review-service/internal/notification"
	paperRepository "github.com/openscholar/review-service/internal/paper/repository"
	"github.com/openscholar/review-service/internal/revision/handler"
	"github.com/openscholar/review-service/internal/revision/repository"
	"github.com/openscholar/review-service/internal/revision/service"
	userRepository "github.com/openscholar/review-service/internal/user/repository"
)

// RegisterRoutes registers revision module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, notifier notification.Notifier, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(
		repo,
		paperRepository.New(db),
		assignmentRepository.New(db),
		userRepository.New(db),
		notifier,
		logger,
	)
	h := handler.New(svc, logger)

	r.POST("/papers/:id/revisions", h.SubmitRevision)
	r.PATCH("/revisions/:id", h.UpdateRevision)
	r.GET("/papers/:id/revisions", h.ListPaperRevisions)
}
