package usecase

import (
	"context"
	"fmt"
	"net/http"

	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/logger"
)

type jobExperienceUsecase struct {
	repo domain.JobExperienceRepository
}

func NewJobExperienceUsecase(repo domain.JobExperienceRepository) domain.JobExperienceUsecase {
	return &jobExperienceUsecase{repo: repo}
}

func (u *jobExperienceUsecase) CreateExperience(ctx context.Context, candidateID string, exp domain.JobExperience) (*domain.JobExperience, error) {
	exp.CandidateID = candidateID
	if err := u.repo.Create(ctx, &exp); err != nil {
		return nil, storeError(err, "Candidate")
	}
	return &exp, nil
}

func (u *jobExperienceUsecase) ListExperiences(ctx context.Context, candidateID string) ([]domain.JobExperience, error) {
	exps, err := u.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, storeError(err, "Candidate")
	}
	return exps, nil
}

// CreateBulkExperiences keeps whatever was inserted before a failure; the
// error lists those ids.
func (u *jobExperienceUsecase) CreateBulkExperiences(ctx context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	ids, err := u.repo.CreateBulk(ctx, candidateID, exps)
	if err != nil {
		return ids, bulkError(err, "work experience", ids, len(exps))
	}
	return ids, nil
}

func (u *jobExperienceUsecase) ReplaceExperiences(ctx context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	ids, err := u.repo.ReplaceForCandidate(ctx, candidateID, exps)
	if err != nil {
		return nil, storeError(err, "Candidate")
	}
	logger.Log.Debug("Work experience replaced", "candidate_id", candidateID, "count", len(ids))
	return ids, nil
}

func bulkError(err error, what string, ids []string, total int) error {
	if len(ids) == 0 {
		return storeError(err, "Candidate")
	}
	logger.Log.Warn("Bulk insert stopped early", "kind", what, "inserted", len(ids), "total", total, "error", err)
	appErr := apperror.New(http.StatusInternalServerError,
		fmt.Sprintf("Inserted %d of %d %s entries before failing", len(ids), total, what), err)
	appErr.Details = ids
	return appErr
}
