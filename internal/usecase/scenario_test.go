package usecase_test

import (
	"context"
	"testing"

	"job-use-backend/internal/domain"
	"job-use-backend/internal/repository/memory"
	"job-use-backend/internal/usecase"
	"job-use-backend/pkg/password"
	"job-use-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type services struct {
	repos        domain.Repositories
	candidates   domain.CandidateUsecase
	jobs         domain.JobUsecase
	experiences  domain.JobExperienceUsecase
	questions    domain.QuestionUsecase
	applications domain.ApplicationUsecase
	profiles     domain.ProfileUsecase
	research     domain.ResearchUsecase
}

func newServices(t *testing.T) services {
	t.Helper()
	repos := memory.NewRepositories()
	validate := validation.New()
	hasher := password.NewHasher(bcrypt.MinCost)

	s := services{repos: repos}
	s.candidates = usecase.NewCandidateUsecase(repos.Candidates, repos.Experiences, repos.Questions, hasher, validate)
	s.jobs = usecase.NewJobUsecase(repos.Jobs)
	s.experiences = usecase.NewJobExperienceUsecase(repos.Experiences)
	s.questions = usecase.NewQuestionUsecase(repos.Questions)
	s.applications = usecase.NewApplicationUsecase(repos.Applications, repos.Jobs, repos.Candidates)
	s.profiles = usecase.NewProfileUsecase(s.candidates, s.experiences, s.questions, validate)
	s.research = usecase.NewResearchUsecase(repos.Jobs)
	return s
}

func (s services) mustCandidate(t *testing.T, email string) *domain.Candidate {
	t.Helper()
	c, err := s.candidates.CreateCandidate(context.Background(), domain.CandidateInput{
		Email: email, Password: "secret", FirstName: "Linda", LastName: "Harris", Age: 29,
	})
	require.NoError(t, err)
	return c
}

func (s services) mustJob(t *testing.T, title string) *domain.Job {
	t.Helper()
	job := &domain.Job{Title: title, Company: "Hollister Co."}
	require.NoError(t, s.jobs.CreateJob(context.Background(), job))
	return job
}

func TestApplyTwiceYieldsOneApplication(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.mustCandidate(t, "twice@example.com")
	j := s.mustJob(t, "Assistant Manager")

	_, err := s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: j.ID})
	require.NoError(t, err)

	_, err = s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: j.ID})
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)

	apps, err := s.applications.ListApplications(ctx, domain.ApplicationFilter{CandidateID: c.ID, JobID: j.ID})
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestUpsertSameEmailKeepsOneCandidate(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	first, err := s.candidates.UpsertCandidate(ctx, domain.CandidateInput{Email: "u@example.com", Password: "a", FirstName: "Ann", Age: 20})
	require.NoError(t, err)
	second, err := s.candidates.UpsertCandidate(ctx, domain.CandidateInput{Email: "u@example.com", Password: "b", FirstName: "Anna", Age: 21})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	got, err := s.candidates.GetCandidateByEmail(ctx, "u@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)
	assert.Equal(t, 21, got.Age)
	assert.True(t, password.NewHasher(bcrypt.MinCost).Verify("b", got.PasswordHash))
}

func TestReplaceExperiencesDiscardsOldSet(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.mustCandidate(t, "replace@example.com")

	oldIDs, err := s.experiences.CreateBulkExperiences(ctx, c.ID, []domain.JobExperience{
		{Company: "A", Title: "Clerk"}, {Company: "B", Title: "Clerk"}, {Company: "C", Title: "Clerk"},
	})
	require.NoError(t, err)
	require.Len(t, oldIDs, 3)

	newIDs, err := s.experiences.ReplaceExperiences(ctx, c.ID, []domain.JobExperience{
		{Company: "D", Title: "Lead"}, {Company: "E", Title: "Lead"},
	})
	require.NoError(t, err)

	exps, err := s.experiences.ListExperiences(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, exps, 2)
	for _, e := range exps {
		assert.NotContains(t, oldIDs, e.ID)
		assert.Contains(t, newIDs, e.ID)
	}
}

func TestSeedJobsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	first, err := s.jobs.SeedJobs(ctx)
	require.NoError(t, err)
	require.Len(t, first, len(usecase.SampleJobs(testNow)))

	second, err := s.jobs.SeedJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	jobs, err := s.jobs.ListJobs(ctx, "")
	require.NoError(t, err)
	assert.Len(t, jobs, len(first))
}

func TestListApplicationsByCandidateAndJob(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c1 := s.mustCandidate(t, "c1@example.com")
	c2 := s.mustCandidate(t, "c2@example.com")
	j1 := s.mustJob(t, "One")
	j2 := s.mustJob(t, "Two")

	for _, pair := range [][2]string{{c1.ID, j1.ID}, {c1.ID, j2.ID}, {c2.ID, j1.ID}, {c2.ID, j2.ID}} {
		_, err := s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: pair[0], JobID: pair[1]})
		require.NoError(t, err)
	}

	apps, err := s.applications.ListApplications(ctx, domain.ApplicationFilter{CandidateID: c2.ID, JobID: j1.ID})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, c2.ID, apps[0].CandidateID)
	assert.Equal(t, j1.ID, apps[0].JobID)
}

func TestProfileUploadThenReuploadWithoutExperiences(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	upload := `{
		"email": "a@x.com", "password": "pw", "firstName": "Ada", "lastName": "Lovelace", "age": 36,
		"jobExperiences": [
			{"company": "Analytical Engines", "title": "Programmer", "currentJob": true},
			{"company": "Royal Society", "title": "Correspondent"}
		],
		"questions": [{"_id": "q-legacy", "name": "Over 18?", "answer": "Yes", "answered": true}]
	}`
	res, err := s.profiles.IngestProfile(ctx, []byte(upload))
	require.NoError(t, err)
	assert.Equal(t, 2, res.ExperienceCount)
	assert.Equal(t, 1, res.QuestionCount)

	profile, err := s.candidates.GetProfile(ctx, res.CandidateID)
	require.NoError(t, err)
	assert.Len(t, profile.JobExperiences, 2)
	require.Len(t, profile.Questions, 1)
	assert.Equal(t, "q-legacy", profile.Questions[0].QuestionID)

	reupload := `{"email": "a@x.com", "password": "pw", "firstName": "Ada", "jobExperiences": []}`
	res2, err := s.profiles.IngestProfile(ctx, []byte(reupload))
	require.NoError(t, err)
	assert.Equal(t, res.CandidateID, res2.CandidateID)
	assert.True(t, res2.ExperiencesSet)
	assert.False(t, res2.QuestionsSet)

	profile, err = s.candidates.GetProfile(ctx, res.CandidateID)
	require.NoError(t, err)
	assert.Empty(t, profile.JobExperiences)
	assert.Len(t, profile.Questions, 1, "questions key was absent so the set is kept")

	_, err = s.candidates.GetCandidateByEmail(ctx, "a@x.com")
	require.NoError(t, err)
}

func TestStatusUpdateVisibleInDetails(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.mustCandidate(t, "details@example.com")
	j := s.mustJob(t, "Assistant Manager")
	require.Equal(t, domain.JobStatusActive, j.Status)

	app, err := s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: j.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)

	require.NoError(t, s.applications.UpdateApplicationStatus(ctx, app.ID, domain.ApplicationStatusAccepted))

	details, err := s.applications.GetApplicationWithDetails(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusAccepted, details.Application.Status)
	assert.Equal(t, j.ID, details.Job.ID)
	assert.Equal(t, j.Title, details.Job.Title)
	assert.Equal(t, c.ID, details.Candidate.ID)
	assert.Equal(t, c.Email, details.Candidate.Email)
}

func TestApplyToClosedJob(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.mustCandidate(t, "closed@example.com")
	j := s.mustJob(t, "Closed soon")
	require.NoError(t, s.jobs.UpdateJobStatus(ctx, j.ID, domain.JobStatusClosed))

	_, err := s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: j.ID})
	assert.Equal(t, 400, appErrorCode(t, err))
}

func TestDuplicateWinsOverClosedJob(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.mustCandidate(t, "again@example.com")
	j := s.mustJob(t, "Filled")

	_, err := s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: j.ID})
	require.NoError(t, err)
	require.NoError(t, s.jobs.UpdateJobStatus(ctx, j.ID, domain.JobStatusClosed))

	_, err = s.applications.ApplyToJob(ctx, domain.ApplyInput{CandidateID: c.ID, JobID: j.ID})
	assert.Equal(t, 409, appErrorCode(t, err))
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
}
