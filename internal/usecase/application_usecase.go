package usecase

import (
	"context"
	"errors"
	"time"

	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	now             func() time.Time
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		now:             time.Now,
	}
}

// resolve loads the candidate and job of an application concurrently.
func (uc *applicationUsecase) resolve(ctx context.Context, candidateID, jobID string) (*domain.Candidate, *domain.Job, error) {
	var (
		candidate *domain.Candidate
		job       *domain.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := uc.candidateRepo.GetByID(gctx, candidateID)
		if err != nil {
			return storeError(err, "Candidate")
		}
		candidate = c
		return nil
	})
	g.Go(func() error {
		j, err := uc.jobRepo.GetByID(gctx, jobID)
		if err != nil {
			return storeError(err, "Job")
		}
		job = j
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return candidate, job, nil
}

// ApplyToJob records a candidate's application to an active job along with
// the simulated autofill payload.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, input domain.ApplyInput) (*domain.Application, error) {
	candidate, job, err := uc.resolve(ctx, input.CandidateID, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		return nil, uc.closedJobError(ctx, candidate.ID, job.ID)
	}

	now := uc.now()
	payload := newAgentPayload(candidate, job, now)

	app := &domain.Application{
		CandidateID:       candidate.ID,
		JobID:             job.ID,
		AppliedDate:       now.UTC().Format(time.RFC3339),
		Status:            domain.ApplicationStatusPending,
		AgentSummary:      &payload.Summary,
		QuestionsDetected: payload.Questions,
		AgentTraces:       payload.Traces,
	}
	if input.CoverLetter != "" {
		coverLetter := input.CoverLetter
		app.CoverLetter = &coverLetter
	}

	if err := uc.applicationRepo.CreateIfAbsent(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			logger.Log.Info("Duplicate application rejected",
				"request_id", domain.RequestIDFrom(ctx), "candidate_id", candidate.ID, "job_id", job.ID)
		}
		return nil, storeError(err, "Candidate or job")
	}

	logger.Log.Info("Application created",
		"request_id", domain.RequestIDFrom(ctx),
		"application_id", app.ID,
		"candidate_id", candidate.ID,
		"job_id", job.ID,
	)
	return app, nil
}

// closedJobError reports an existing application to a closed job as a
// duplicate rather than as a closed posting.
func (uc *applicationUsecase) closedJobError(ctx context.Context, candidateID, jobID string) error {
	existing, err := uc.applicationRepo.List(ctx, domain.ApplicationFilter{CandidateID: candidateID, JobID: jobID})
	if err != nil {
		return storeError(err, "Application")
	}
	if len(existing) > 0 {
		return storeError(domain.ErrDuplicateApplication, "Application")
	}
	return apperror.BadRequest("This job is no longer accepting applications")
}

func (uc *applicationUsecase) ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	if filter.Status != "" && !domain.ValidApplicationStatus(filter.Status) {
		return nil, apperror.Invalid("Unknown application status", []string{filter.Status}, domain.ErrInvalidStatus)
	}
	apps, err := uc.applicationRepo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "Application")
	}
	return apps, nil
}

// GetApplicationWithDetails joins the application with its job and candidate.
// A dangling reference on either side is reported as not found.
func (uc *applicationUsecase) GetApplicationWithDetails(ctx context.Context, id string) (*domain.ApplicationDetails, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Application")
	}

	candidate, job, err := uc.resolve(ctx, app.CandidateID, app.JobID)
	if err != nil {
		return nil, err
	}

	return &domain.ApplicationDetails{
		Application: app,
		Job:         job,
		Candidate:   candidate,
	}, nil
}

// UpdateApplicationStatus updates the status of an application
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, id string, status string) error {
	if !domain.ValidApplicationStatus(status) {
		return apperror.Invalid("Status must be one of pending, reviewed, accepted, rejected", nil, domain.ErrInvalidStatus)
	}
	return storeError(uc.applicationRepo.UpdateStatus(ctx, id, status), "Application")
}

// ClearAllApplications deletes every application. Demo reset only.
func (uc *applicationUsecase) ClearAllApplications(ctx context.Context) (int64, error) {
	n, err := uc.applicationRepo.DeleteAll(ctx)
	if err != nil {
		return 0, storeError(err, "Application")
	}
	logger.Log.Warn("All applications cleared", "count", n)
	return n, nil
}
