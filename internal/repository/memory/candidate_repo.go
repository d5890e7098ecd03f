package memory

import (
	"context"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
)

type candidateRepo struct {
	s *Store
}

func NewCandidateRepository(s *Store) domain.CandidateRepository {
	return &candidateRepo{s: s}
}

func (r *candidateRepo) Create(_ context.Context, c *domain.Candidate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.candidateByEmail[c.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	stored := *c
	r.s.candidates[c.ID] = &stored
	r.s.candidateByEmail[c.Email] = c.ID
	return nil
}

func (r *candidateRepo) GetByID(_ context.Context, id string) (*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.candidates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *candidateRepo) GetByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.candidateByEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *r.s.candidates[id]
	return &out, nil
}

func (r *candidateRepo) Update(_ context.Context, id string, patch domain.CandidatePatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.candidates[id]
	if !ok {
		return nil
	}
	if patch.Email != nil && *patch.Email != c.Email {
		if _, taken := r.s.candidateByEmail[*patch.Email]; taken {
			return domain.ErrDuplicateEmail
		}
		delete(r.s.candidateByEmail, c.Email)
		r.s.candidateByEmail[*patch.Email] = id
	}
	patch.Apply(c)
	return nil
}

// Upsert keeps the id and created_at of an existing row and overwrites the rest.
func (r *candidateRepo) Upsert(_ context.Context, c *domain.Candidate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if id, ok := r.s.candidateByEmail[c.Email]; ok {
		existing := r.s.candidates[id]
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		*existing = *c
		return nil
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	stored := *c
	r.s.candidates[c.ID] = &stored
	r.s.candidateByEmail[c.Email] = c.ID
	return nil
}
