package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"job-use-backend/internal/domain"
	"job-use-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 27, 12, 0, 0, 0, time.UTC)

func TestSampleJobs(t *testing.T) {
	jobs := usecase.SampleJobs(testNow)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, domain.JobStatusActive, j.Status)
		assert.Equal(t, "2025-09-27T12:00:00Z", j.PostedDate)
		assert.NotEmpty(t, j.Requirements)
	}
	assert.Equal(t, "Rochester Regional Health", jobs[0].Company)
	assert.Equal(t, "Hollister Co.", jobs[1].Company)
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default status and posted date", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		job := &domain.Job{Title: "  Barista  "}
		require.NoError(t, uc.CreateJob(ctx, job))
		assert.Equal(t, "Barista", job.Title)
		assert.Equal(t, domain.JobStatusActive, job.Status)
		assert.NotEmpty(t, job.PostedDate)
	})

	t.Run("Should reject blank title and bad status", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, uc.CreateJob(ctx, &domain.Job{Title: " "})))
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, uc.CreateJob(ctx, &domain.Job{Title: "x", Status: "paused"})))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateJobStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo)

	repo.On("UpdateStatus", ctx, "missing", domain.JobStatusClosed).Return(domain.ErrNotFound)

	assert.ErrorIs(t, uc.UpdateJobStatus(ctx, "j1", "archived"), domain.ErrInvalidStatus)
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, uc.UpdateJobStatus(ctx, "missing", domain.JobStatusClosed)))
}

func TestClearAndReseedDropsApplications(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	ids, err := s.jobs.SeedJobs(ctx)
	require.NoError(t, err)
	c := s.mustCandidate(t, "reseed@example.com")
	_, err = s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: ids[0]})
	require.NoError(t, err)

	newIDs, err := s.jobs.ClearAndReseedJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, newIDs, 2)
	assert.NotContains(t, newIDs, ids[0])

	apps, err := s.applications.ListApplications(ctx, domain.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, apps)
}
