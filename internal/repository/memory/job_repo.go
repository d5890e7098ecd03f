package memory

import (
	"context"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
)

type jobRepo struct {
	s *Store
}

func NewJobRepository(s *Store) domain.JobRepository {
	return &jobRepo{s: s}
}

// insertJobLocked stores a copy of job. Caller holds s.mu for writing.
func (s *Store) insertJobLocked(job *domain.Job) {
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now().UTC()
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	stored := *job
	stored.Requirements = append([]string(nil), job.Requirements...)
	s.jobs[job.ID] = &stored
	s.jobOrder = append(s.jobOrder, job.ID)
}

func copyJob(j *domain.Job) domain.Job {
	out := *j
	out.Requirements = append([]string{}, j.Requirements...)
	return out
}

func (r *jobRepo) Create(_ context.Context, job *domain.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.insertJobLocked(job)
	return nil
}

func (r *jobRepo) List(_ context.Context, status string) ([]domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	jobs := []domain.Job{}
	for _, id := range r.s.jobOrder {
		j := r.s.jobs[id]
		if status != "" && j.Status != status {
			continue
		}
		jobs = append(jobs, copyJob(j))
	}
	return jobs, nil
}

func (r *jobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	j, ok := r.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := copyJob(j)
	return &out, nil
}

func (r *jobRepo) UpdateStatus(_ context.Context, id string, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	j, ok := r.s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	j.Status = status
	return nil
}

func (r *jobRepo) Seed(_ context.Context, jobs []domain.Job) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if len(r.s.jobOrder) > 0 {
		return append([]string(nil), r.s.jobOrder...), nil
	}
	return r.s.insertJobsLocked(jobs), nil
}

// ClearAndReseed also drops applications pointing at the removed jobs.
func (r *jobRepo) ClearAndReseed(_ context.Context, jobs []domain.Job) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.deleteApplicationsLocked(func(app *domain.Application) bool {
		_, ok := r.s.jobs[app.JobID]
		return ok
	})
	r.s.jobs = make(map[string]*domain.Job)
	r.s.jobOrder = nil
	return r.s.insertJobsLocked(jobs), nil
}

func (s *Store) insertJobsLocked(jobs []domain.Job) []string {
	ids := make([]string, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		s.insertJobLocked(&job)
		ids = append(ids, job.ID)
	}
	return ids
}
