package memory

import (
	"context"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
)

type applicationRepo struct {
	s *Store
}

func NewApplicationRepository(s *Store) domain.ApplicationRepository {
	return &applicationRepo{s: s}
}

func copyApplication(a *domain.Application) domain.Application {
	out := *a
	if a.QuestionsDetected != nil {
		out.QuestionsDetected = append([]domain.DetectedQuestion{}, a.QuestionsDetected...)
	}
	if a.AgentTraces != nil {
		out.AgentTraces = append([]domain.AgentTrace{}, a.AgentTraces...)
	}
	return out
}

func (r *applicationRepo) CreateIfAbsent(_ context.Context, app *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.candidates[app.CandidateID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.jobs[app.JobID]; !ok {
		return domain.ErrNotFound
	}
	key := pairKey{app.CandidateID, app.JobID}
	if _, ok := r.s.applicationByPair[key]; ok {
		return domain.ErrDuplicateApplication
	}

	app.ID = uuid.NewString()
	app.CreatedAt = time.Now().UTC()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	stored := copyApplication(app)
	r.s.applications[app.ID] = &stored
	r.s.applicationOrder = append(r.s.applicationOrder, app.ID)
	r.s.applicationByPair[key] = app.ID
	r.s.appsByCandidate[app.CandidateID] = append(r.s.appsByCandidate[app.CandidateID], app.ID)
	r.s.appsByJob[app.JobID] = append(r.s.appsByJob[app.JobID], app.ID)
	return nil
}

// List narrows with one index, candidate first, then job, and filters the rest.
func (r *applicationRepo) List(_ context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ids []string
	switch {
	case filter.CandidateID != "":
		ids = r.s.appsByCandidate[filter.CandidateID]
	case filter.JobID != "":
		ids = r.s.appsByJob[filter.JobID]
	default:
		ids = r.s.applicationOrder
	}

	apps := []domain.Application{}
	for _, id := range ids {
		app := r.s.applications[id]
		if filter.Matches(app) {
			apps = append(apps, copyApplication(app))
		}
	}
	return apps, nil
}

func (r *applicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	app, ok := r.s.applications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := copyApplication(app)
	return &out, nil
}

func (r *applicationRepo) UpdateStatus(_ context.Context, id string, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	app, ok := r.s.applications[id]
	if !ok {
		return domain.ErrNotFound
	}
	app.Status = status
	return nil
}

func (r *applicationRepo) DeleteAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.deleteApplicationsLocked(func(*domain.Application) bool { return true }), nil
}
