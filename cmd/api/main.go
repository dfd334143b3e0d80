package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-demandflo-backend/config"
	_ "go-demandflo-backend/docs" // Important for Swagger
	v1 "go-demandflo-backend/internal/delivery/http/v1"
	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/internal/repository/memory"
	"go-demandflo-backend/internal/repository/postgres"
	"go-demandflo-backend/internal/usecase"
	"go-demandflo-backend/pkg/database"
	"go-demandflo-backend/pkg/logger"
)

// @title           Demand Flo Backend API
// @version         1.0
// @description     Marketing site backend: blog content, contact form, ROI estimates.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting demandflo backend", "port", cfg.Port)

	// 3. Setup Repositories. Postgres when configured, otherwise the
	// in-memory store (local development without a database).
	var (
		blogRepo    domain.BlogPostRepository
		contactRepo domain.ContactSubmissionRepository
	)
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl, database.PoolOptions{
			MaxConns:       cfg.DBMaxConns,
			MinConns:       cfg.DBMinConns,
			ConnectTimeout: time.Duration(cfg.DBConnectTimeoutSeconds) * time.Second,
		})
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := database.Migrate(dbPool); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}

		blogRepo = postgres.NewBlogPostRepository(dbPool)
		contactRepo = postgres.NewContactSubmissionRepository(dbPool)
	} else {
		blogRepo = memory.NewBlogPostRepository()
		contactRepo = memory.NewContactSubmissionRepository()
	}

	// 4. Setup UseCases
	blogUC := usecase.NewBlogUsecase(blogRepo)
	contactUC := usecase.NewContactUsecase(contactRepo)
	roiUC := usecase.NewRoiUsecase()

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		BlogUC:    blogUC,
		ContactUC: contactUC,
		RoiUC:     roiUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
