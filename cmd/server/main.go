// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	assignmentRouter "github.com/openscholar/review-service/internal/assignment/router"
	"github.com/openscholar/review-service/internal/config"
	"github.com/openscholar/review-service/internal/database"
	"github.com/openscholar/review-service/internal/health"
	matchingRouter "github.com/openscholar/review-service/internal/matching/router"
	"github.com/openscholar/review-service/internal/middleware"
	"github.com/openscholar/review-service/internal/notification"
	paperRouter "github.com/openscholar/review-service/internal/paper/router"
	proposalRouter "github.com/openscholar/review-service/internal/proposal/router"
	reviewRouter "github.com/openscholar/review-service/internal/review/router"
	revisionRouter "github.com/openscholar/review-service/internal/revision/router"
	threadRouter "github.com/openscholar/review-service/internal/thread/router"
	"github.com/openscholar/review-service/pkg/logger"
)

func main() {
	// .env is optional, real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zapLogger.Errorw("failed to close database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	notifier := notification.NewMailer(cfg.Mailer, zapLogger)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger))

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	proposalRouter.RegisterRoutes(r, db, zapLogger)
	matchingRouter.RegisterRoutes(r, db, zapLogger)
	paperRouter.RegisterRoutes(r, db, zapLogger)
	assignmentRouter.RegisterRoutes(r, db, notifier, zapLogger)
	reviewRouter.RegisterRoutes(r, db, notifier, zapLogger)
	revisionRouter.RegisterRoutes(r, db, notifier, zapLogger)
	threadRouter.RegisterRoutes(r, db, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Errorw("forced shutdown", "error", err)
	}
}
