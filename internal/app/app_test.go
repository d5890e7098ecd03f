package app

import (
	"context"
	"testing"

	"job-use-backend/config"
	"job-use-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryApp(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, &config.Config{StorageDriver: config.StorageDriverMemory, BcryptCost: 4})
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Migrate(ctx))

	ids, err := a.Services.Jobs.SeedJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	c, err := a.Services.Candidates.CreateCandidate(ctx, domain.CandidateInput{Email: "x@example.com", Password: "pw"})
	require.NoError(t, err)

	submitted, err := a.Services.Applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: ids[0]})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, submitted.Status)

	status, healthy := a.Services.Health.Check(ctx)
	assert.True(t, healthy)
	assert.Equal(t, map[string]string{"status": "ok"}, status)
}
