package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-use-backend/config"
	_ "job-use-backend/docs" // Important for Swagger
	"job-use-backend/internal/app"
	v1 "job-use-backend/internal/delivery/http/v1"
	"job-use-backend/pkg/logger"
)

// @title           Job Use API
// @version         1.0
// @description     Candidate profiles, job postings and agent-assisted applications.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job-use backend", "port", cfg.Port, "storage", cfg.StorageDriver)

	// 3. Setup Storage and UseCases
	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	// 4. Schema and sample data
	if cfg.AutoMigrate {
		if err := application.Migrate(ctx); err != nil {
			logger.Log.Error("Migration failed", "error", err)
			os.Exit(1)
		}
	}
	if cfg.AutoSeedJobs {
		if _, err := application.Services.Jobs.SeedJobs(ctx); err != nil {
			logger.Log.Warn("Job seeding failed", "error", err)
		}
	}

	// 5. Setup Router
	s := application.Services
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC:   s.Candidates,
		ExperienceUC:  s.Experiences,
		QuestionUC:    s.Questions,
		ProfileUC:     s.Profiles,
		JobUC:         s.Jobs,
		ResearchUC:    s.Research,
		ApplicationUC: s.Applications,
		HealthUC:      s.Health,
		Config:        cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
