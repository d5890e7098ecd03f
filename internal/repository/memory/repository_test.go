package memory

import (
	"context"
	"sync"
	"testing"

	"job-use-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCandidate(t *testing.T, repos domain.Repositories, email string) *domain.Candidate {
	t.Helper()
	c := &domain.Candidate{Email: email, PasswordHash: "x"}
	require.NoError(t, repos.Candidates.Create(context.Background(), c))
	return c
}

func TestCandidateUpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	first := &domain.Candidate{Email: "a@example.com", FirstName: "Ann"}
	require.NoError(t, repos.Candidates.Upsert(ctx, first))

	second := &domain.Candidate{Email: "a@example.com", FirstName: "Anna"}
	require.NoError(t, repos.Candidates.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := repos.Candidates.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)
}

func TestCandidateCreateDuplicateEmail(t *testing.T) {
	repos := NewRepositories()
	seedCandidate(t, repos, "dup@example.com")

	err := repos.Candidates.Create(context.Background(), &domain.Candidate{Email: "dup@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestCandidateUpdate(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	c := seedCandidate(t, repos, "old@example.com")
	seedCandidate(t, repos, "taken@example.com")

	t.Run("unknown id is a no-op", func(t *testing.T) {
		name := "Ghost"
		assert.NoError(t, repos.Candidates.Update(ctx, "missing", domain.CandidatePatch{FirstName: &name}))
	})

	t.Run("email move updates the index", func(t *testing.T) {
		email := "new@example.com"
		require.NoError(t, repos.Candidates.Update(ctx, c.ID, domain.CandidatePatch{Email: &email}))

		_, err := repos.Candidates.GetByEmail(ctx, "old@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		got, err := repos.Candidates.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("email collision", func(t *testing.T) {
		email := "taken@example.com"
		err := repos.Candidates.Update(ctx, c.ID, domain.CandidatePatch{Email: &email})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestReplaceForCandidate(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	c := seedCandidate(t, repos, "r@example.com")

	_, err := repos.Experiences.CreateBulk(ctx, c.ID, []domain.JobExperience{{Company: "A"}, {Company: "B"}})
	require.NoError(t, err)

	ids, err := repos.Experiences.ReplaceForCandidate(ctx, c.ID, []domain.JobExperience{{Company: "C"}})
	require.NoError(t, err)
	require.Len(t, ids, 1)

	exps, err := repos.Experiences.ListByCandidate(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "C", exps[0].Company)
	assert.Equal(t, ids[0], exps[0].ID)

	_, err = repos.Questions.ReplaceForCandidate(ctx, "missing", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repos.Experiences.ReplaceForCandidate(ctx, "missing", []domain.JobExperience{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBulkUnknownCandidateInsertsNothing(t *testing.T) {
	repos := NewRepositories()

	ids, err := repos.Questions.CreateBulk(context.Background(), "missing", []domain.Question{{Name: "q"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, ids)
}

func TestApplicationUniquePairUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	c := seedCandidate(t, repos, "c@example.com")
	job := &domain.Job{Title: "Nurse"}
	require.NoError(t, repos.Jobs.Create(ctx, job))

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repos.Applications.CreateIfAbsent(ctx, &domain.Application{CandidateID: c.ID, JobID: job.ID})
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch err {
		case nil:
			ok++
		case domain.ErrDuplicateApplication:
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)
}

func TestApplicationListFilters(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	c1 := seedCandidate(t, repos, "one@example.com")
	c2 := seedCandidate(t, repos, "two@example.com")
	j1 := &domain.Job{Title: "A"}
	j2 := &domain.Job{Title: "B"}
	require.NoError(t, repos.Jobs.Create(ctx, j1))
	require.NoError(t, repos.Jobs.Create(ctx, j2))

	a := &domain.Application{CandidateID: c1.ID, JobID: j1.ID}
	require.NoError(t, repos.Applications.CreateIfAbsent(ctx, a))
	require.NoError(t, repos.Applications.CreateIfAbsent(ctx, &domain.Application{CandidateID: c1.ID, JobID: j2.ID}))
	require.NoError(t, repos.Applications.CreateIfAbsent(ctx, &domain.Application{CandidateID: c2.ID, JobID: j1.ID}))
	require.NoError(t, repos.Applications.UpdateStatus(ctx, a.ID, domain.ApplicationStatusAccepted))

	tests := []struct {
		name   string
		filter domain.ApplicationFilter
		want   int
	}{
		{"all", domain.ApplicationFilter{}, 3},
		{"by candidate", domain.ApplicationFilter{CandidateID: c1.ID}, 2},
		{"by job", domain.ApplicationFilter{JobID: j1.ID}, 2},
		{"candidate and job", domain.ApplicationFilter{CandidateID: c1.ID, JobID: j1.ID}, 1},
		{"by status", domain.ApplicationFilter{Status: domain.ApplicationStatusPending}, 2},
		{"job and status", domain.ApplicationFilter{JobID: j1.ID, Status: domain.ApplicationStatusAccepted}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps, err := repos.Applications.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, apps, tt.want)
		})
	}

	n, err := repos.Applications.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	apps, err := repos.Applications.List(ctx, domain.ApplicationFilter{CandidateID: c1.ID})
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestJobSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()
	jobs := []domain.Job{{Title: "A"}, {Title: "B"}}

	first, err := repos.Jobs.Seed(ctx, jobs)
	require.NoError(t, err)
	second, err := repos.Jobs.Seed(ctx, jobs)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	c := seedCandidate(t, repos, "s@example.com")
	require.NoError(t, repos.Applications.CreateIfAbsent(ctx, &domain.Application{CandidateID: c.ID, JobID: first[0]}))

	reseeded, err := repos.Jobs.ClearAndReseed(ctx, jobs)
	require.NoError(t, err)
	assert.Len(t, reseeded, 2)
	assert.NotEqual(t, first, reseeded)

	apps, err := repos.Applications.List(ctx, domain.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, apps, "applications for removed jobs go with them")
}
