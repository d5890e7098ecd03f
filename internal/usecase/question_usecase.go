package usecase

import (
	"context"

	"job-use-backend/internal/domain"
	"job-use-backend/pkg/logger"
)

type questionUsecase struct {
	repo domain.QuestionRepository
}

func NewQuestionUsecase(repo domain.QuestionRepository) domain.QuestionUsecase {
	return &questionUsecase{repo: repo}
}

func (u *questionUsecase) CreateQuestion(ctx context.Context, candidateID string, q domain.Question) (*domain.Question, error) {
	q.CandidateID = candidateID
	if err := u.repo.Create(ctx, &q); err != nil {
		return nil, storeError(err, "Candidate")
	}
	return &q, nil
}

func (u *questionUsecase) ListQuestions(ctx context.Context, candidateID string) ([]domain.Question, error) {
	qs, err := u.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, storeError(err, "Candidate")
	}
	return qs, nil
}

func (u *questionUsecase) CreateBulkQuestions(ctx context.Context, candidateID string, qs []domain.Question) ([]string, error) {
	ids, err := u.repo.CreateBulk(ctx, candidateID, qs)
	if err != nil {
		return ids, bulkError(err, "question", ids, len(qs))
	}
	return ids, nil
}

func (u *questionUsecase) ReplaceQuestions(ctx context.Context, candidateID string, qs []domain.Question) ([]string, error) {
	ids, err := u.repo.ReplaceForCandidate(ctx, candidateID, qs)
	if err != nil {
		return nil, storeError(err, "Candidate")
	}
	logger.Log.Debug("Questions replaced", "candidate_id", candidateID, "count", len(ids))
	return ids, nil
}
