package v1

import (
	"time"

	"job-use-backend/config"
	"job-use-backend/internal/delivery/http/middleware"
	"job-use-backend/internal/domain"
	"job-use-backend/internal/usecase"
	"job-use-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC   domain.CandidateUsecase
	ExperienceUC  domain.JobExperienceUsecase
	QuestionUC    domain.QuestionUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ResearchUC    domain.ResearchUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Binding tags share the custom rules used by the usecases
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, gin.Mode() == gin.ReleaseMode)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := v1.Group("")
	api.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	write := api.Group("")
	write.Use(middleware.RateLimitMiddleware(middleware.WriteRateLimitConfig(cfg.RateLimitWriteThreshold, window)))
	{
		NewCandidateHandler(api, deps.CandidateUC, deps.ExperienceUC, deps.QuestionUC)
		NewProfileHandler(write, deps.ProfileUC, cfg.MaxUploadBytes)
		NewJobHandler(api, deps.JobUC, deps.ResearchUC)
		NewApplicationHandler(api, write, deps.ApplicationUC)
	}

	return r
}
