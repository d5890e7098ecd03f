// Package app wires configuration, storage and usecases together for the
// binaries under cmd/.
package app

import (
	"context"
	"fmt"

	"job-use-backend/config"
	"job-use-backend/internal/domain"
	"job-use-backend/internal/repository/memory"
	"job-use-backend/internal/repository/postgres"
	"job-use-backend/internal/usecase"
	"job-use-backend/pkg/database"
	"job-use-backend/pkg/logger"
	"job-use-backend/pkg/password"
	"job-use-backend/pkg/redis"
	"job-use-backend/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Services struct {
	Candidates   domain.CandidateUsecase
	Experiences  domain.JobExperienceUsecase
	Questions    domain.QuestionUsecase
	Profiles     domain.ProfileUsecase
	Jobs         domain.JobUsecase
	Research     domain.ResearchUsecase
	Applications domain.ApplicationUsecase
	Health       usecase.HealthUsecase
}

type App struct {
	Config   *config.Config
	Services Services

	pool *pgxpool.Pool
}

// New opens the configured store and builds every usecase on top of it.
// Redis is optional; without it rate limiting stays in memory.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	var repos domain.Repositories
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Log.Warn("Using in-memory storage; data is lost on restart")
		repos = memory.NewRepositories()
	default:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.pool = pool
		repos = postgres.NewRepositories(pool)
	}

	checks := map[string]usecase.Pinger{}
	if a.pool != nil {
		checks["database"] = a.pool.Ping
	}
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
		checks["redis"] = redis.HealthCheck
	}

	validate := validation.New()
	hasher := password.NewHasher(cfg.BcryptCost)

	s := Services{}
	s.Candidates = usecase.NewCandidateUsecase(repos.Candidates, repos.Experiences, repos.Questions, hasher, validate)
	s.Experiences = usecase.NewJobExperienceUsecase(repos.Experiences)
	s.Questions = usecase.NewQuestionUsecase(repos.Questions)
	s.Profiles = usecase.NewProfileUsecase(s.Candidates, s.Experiences, s.Questions, validate)
	s.Jobs = usecase.NewJobUsecase(repos.Jobs)
	s.Research = usecase.NewResearchUsecase(repos.Jobs)
	s.Applications = usecase.NewApplicationUsecase(repos.Applications, repos.Jobs, repos.Candidates)
	s.Health = usecase.NewHealthUsecase(checks)
	a.Services = s

	return a, nil
}

// Migrate applies the schema. The in-memory store needs none.
func (a *App) Migrate(ctx context.Context) error {
	if a.pool == nil {
		return nil
	}
	return postgres.Migrate(ctx, a.pool)
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if err := redis.Close(); err != nil {
		logger.Log.Warn("Failed to close redis", "error", err)
	}
}
