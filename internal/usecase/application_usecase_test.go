package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"job-use-backend/internal/domain"
	"job-use-backend/internal/usecase"
	"job-use-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T: %v", err, err)
	return appErr.Code
}

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.Candidate{ID: "c1", Email: "linda@example.com", FirstName: "Linda", LastName: "Harris", Age: 30, EligibilityToWork: true, Experience: 2}
	activeJob := &domain.Job{ID: "j1", Title: "LPN Staff I", Company: "Rochester Regional Health", Status: domain.JobStatusActive}
	closedJob := &domain.Job{ID: "j2", Title: "Closed", Status: domain.JobStatusClosed}

	t.Run("Should create a pending application with agent payload", func(t *testing.T) {
		appRepo, jobRepo, candRepo := new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo)

		candRepo.On("GetByID", mock.Anything, "c1").Return(candidate, nil)
		jobRepo.On("GetByID", mock.Anything, "j1").Return(activeJob, nil)
		appRepo.On("CreateIfAbsent", ctx, mock.MatchedBy(func(a *domain.Application) bool {
			return a.CandidateID == "c1" && a.JobID == "j1"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Application).ID = "a1"
		}).Return(nil)

		app, err := uc.ApplyToJob(ctx, domain.ApplyInput{CandidateID: "c1", JobID: "j1", CoverLetter: "Hello"})
		require.NoError(t, err)

		assert.Equal(t, "a1", app.ID)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.NotEmpty(t, app.AppliedDate)
		require.NotNil(t, app.CoverLetter)
		assert.Equal(t, "Hello", *app.CoverLetter)
		require.NotNil(t, app.AgentSummary)
		assert.Contains(t, *app.AgentSummary, "Rochester Regional Health")
		assert.NotEmpty(t, app.QuestionsDetected)
		require.NotEmpty(t, app.AgentTraces)
		assert.Equal(t, "NAVIGATE", app.AgentTraces[0].Action)
		assert.Equal(t, "SUBMIT", app.AgentTraces[len(app.AgentTraces)-1].Action)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should reject duplicate with 409", func(t *testing.T) {
		appRepo, jobRepo, candRepo := new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo)

		candRepo.On("GetByID", mock.Anything, "c1").Return(candidate, nil)
		jobRepo.On("GetByID", mock.Anything, "j1").Return(activeJob, nil)
		appRepo.On("CreateIfAbsent", ctx, mock.Anything).Return(domain.ErrDuplicateApplication)

		_, err := uc.ApplyToJob(ctx, domain.ApplyInput{CandidateID: "c1", JobID: "j1"})
		assert.Equal(t, http.StatusConflict, appErrorCode(t, err))
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
		assert.Equal(t, "You have already applied for this job", err.Error())
	})

	t.Run("Should reject closed job", func(t *testing.T) {
		appRepo, jobRepo, candRepo := new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo)

		candRepo.On("GetByID", mock.Anything, "c1").Return(candidate, nil)
		jobRepo.On("GetByID", mock.Anything, "j2").Return(closedJob, nil)
		appRepo.On("List", ctx, domain.ApplicationFilter{CandidateID: "c1", JobID: "j2"}).Return(nil, nil)

		_, err := uc.ApplyToJob(ctx, domain.ApplyInput{CandidateID: "c1", JobID: "j2"})
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
		appRepo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("Should report duplicate on closed job already applied to", func(t *testing.T) {
		appRepo, jobRepo, candRepo := new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo)

		candRepo.On("GetByID", mock.Anything, "c1").Return(candidate, nil)
		jobRepo.On("GetByID", mock.Anything, "j2").Return(closedJob, nil)
		appRepo.On("List", ctx, domain.ApplicationFilter{CandidateID: "c1", JobID: "j2"}).
			Return([]domain.Application{{ID: "a1", CandidateID: "c1", JobID: "j2"}}, nil)

		_, err := uc.ApplyToJob(ctx, domain.ApplyInput{CandidateID: "c1", JobID: "j2"})
		assert.Equal(t, http.StatusConflict, appErrorCode(t, err))
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
		appRepo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("Should 404 when candidate is missing", func(t *testing.T) {
		appRepo, jobRepo, candRepo := new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo)

		candRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		jobRepo.On("GetByID", mock.Anything, "j1").Return(activeJob, nil).Maybe()

		_, err := uc.ApplyToJob(ctx, domain.ApplyInput{CandidateID: "ghost", JobID: "j1"})
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGetApplicationWithDetailsDanglingJob(t *testing.T) {
	ctx := context.Background()
	appRepo, jobRepo, candRepo := new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo)

	appRepo.On("GetByID", ctx, "a1").Return(&domain.Application{ID: "a1", CandidateID: "c1", JobID: "gone"}, nil)
	candRepo.On("GetByID", mock.Anything, "c1").Return(&domain.Candidate{ID: "c1"}, nil).Maybe()
	jobRepo.On("GetByID", mock.Anything, "gone").Return(nil, domain.ErrNotFound)

	_, err := uc.GetApplicationWithDetails(ctx, "a1")
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	appRepo := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockCandidateRepo))

	t.Run("Should reject unknown status", func(t *testing.T) {
		err := uc.UpdateApplicationStatus(ctx, "a1", "archived")
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should map missing application to 404", func(t *testing.T) {
		appRepo.On("UpdateStatus", ctx, "missing", domain.ApplicationStatusReviewed).Return(domain.ErrNotFound)
		err := uc.UpdateApplicationStatus(ctx, "missing", domain.ApplicationStatusReviewed)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})
}

func TestListApplicationsRejectsUnknownStatus(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), new(MockCandidateRepo))

	_, err := uc.ListApplications(context.Background(), domain.ApplicationFilter{Status: "lost"})
	assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
}
