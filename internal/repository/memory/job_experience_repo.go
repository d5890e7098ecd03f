package memory

import (
	"context"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
)

type jobExperienceRepo struct {
	s *Store
}

func NewJobExperienceRepository(s *Store) domain.JobExperienceRepository {
	return &jobExperienceRepo{s: s}
}

func (s *Store) insertExperienceLocked(candidateID string, exp *domain.JobExperience) error {
	if _, ok := s.candidates[candidateID]; !ok {
		return domain.ErrNotFound
	}
	exp.ID = uuid.NewString()
	exp.CandidateID = candidateID
	exp.CreatedAt = time.Now().UTC()
	stored := *exp
	s.experiences[candidateID] = append(s.experiences[candidateID], &stored)
	return nil
}

func (r *jobExperienceRepo) Create(_ context.Context, exp *domain.JobExperience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertExperienceLocked(exp.CandidateID, exp)
}

func (r *jobExperienceRepo) ListByCandidate(_ context.Context, candidateID string) ([]domain.JobExperience, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	exps := make([]domain.JobExperience, 0, len(r.s.experiences[candidateID]))
	for _, e := range r.s.experiences[candidateID] {
		exps = append(exps, *e)
	}
	return exps, nil
}

// CreateBulk takes the lock per entry, so other writers may interleave.
func (r *jobExperienceRepo) CreateBulk(_ context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	ids := make([]string, 0, len(exps))
	for i := range exps {
		exp := exps[i]
		r.s.mu.Lock()
		err := r.s.insertExperienceLocked(candidateID, &exp)
		r.s.mu.Unlock()
		if err != nil {
			return ids, err
		}
		ids = append(ids, exp.ID)
	}
	return ids, nil
}

func (r *jobExperienceRepo) ReplaceForCandidate(_ context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.candidates[candidateID]; !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.s.experiences, candidateID)

	ids := make([]string, 0, len(exps))
	for i := range exps {
		exp := exps[i]
		if err := r.s.insertExperienceLocked(candidateID, &exp); err != nil {
			return nil, err
		}
		ids = append(ids, exp.ID)
	}
	return ids, nil
}
