package memory

import (
	"context"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
)

type questionRepo struct {
	s *Store
}

func NewQuestionRepository(s *Store) domain.QuestionRepository {
	return &questionRepo{s: s}
}

func copyQuestion(q *domain.Question) domain.Question {
	out := *q
	if q.Options != nil {
		out.Options = append([]string{}, q.Options...)
	}
	return out
}

func (s *Store) insertQuestionLocked(candidateID string, q *domain.Question) error {
	if _, ok := s.candidates[candidateID]; !ok {
		return domain.ErrNotFound
	}
	q.ID = uuid.NewString()
	q.CandidateID = candidateID
	q.CreatedAt = time.Now().UTC()
	stored := copyQuestion(q)
	s.questions[candidateID] = append(s.questions[candidateID], &stored)
	return nil
}

func (r *questionRepo) Create(_ context.Context, q *domain.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertQuestionLocked(q.CandidateID, q)
}

func (r *questionRepo) ListByCandidate(_ context.Context, candidateID string) ([]domain.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	qs := make([]domain.Question, 0, len(r.s.questions[candidateID]))
	for _, q := range r.s.questions[candidateID] {
		qs = append(qs, copyQuestion(q))
	}
	return qs, nil
}

func (r *questionRepo) CreateBulk(_ context.Context, candidateID string, qs []domain.Question) ([]string, error) {
	ids := make([]string, 0, len(qs))
	for i := range qs {
		q := qs[i]
		r.s.mu.Lock()
		err := r.s.insertQuestionLocked(candidateID, &q)
		r.s.mu.Unlock()
		if err != nil {
			return ids, err
		}
		ids = append(ids, q.ID)
	}
	return ids, nil
}

func (r *questionRepo) ReplaceForCandidate(_ context.Context, candidateID string, qs []domain.Question) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.candidates[candidateID]; !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.s.questions, candidateID)

	ids := make([]string, 0, len(qs))
	for i := range qs {
		q := qs[i]
		if err := r.s.insertQuestionLocked(candidateID, &q); err != nil {
			return nil, err
		}
		ids = append(ids, q.ID)
	}
	return ids, nil
}
