package usecase_test

import (
	"context"

	"job-use-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id string, patch domain.CandidatePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockCandidateRepo) Upsert(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) List(ctx context.Context, status string) ([]domain.Job, error) {
	args := m.Called(ctx, status)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockJobRepo) Seed(ctx context.Context, jobs []domain.Job) ([]string, error) {
	args := m.Called(ctx, jobs)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockJobRepo) ClearAndReseed(ctx context.Context, jobs []domain.Job) ([]string, error) {
	args := m.Called(ctx, jobs)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) CreateIfAbsent(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	args := m.Called(ctx, filter)
	apps, _ := args.Get(0).([]domain.Application)
	return apps, args.Error(1)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.JobExperience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockExperienceRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.JobExperience, error) {
	args := m.Called(ctx, candidateID)
	exps, _ := args.Get(0).([]domain.JobExperience)
	return exps, args.Error(1)
}

func (m *MockExperienceRepo) CreateBulk(ctx context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	args := m.Called(ctx, candidateID, exps)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockExperienceRepo) ReplaceForCandidate(ctx context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	args := m.Called(ctx, candidateID, exps)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
