package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"job-use-backend/internal/domain"
	"job-use-backend/internal/usecase"
	"job-use-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBulkExperiences(t *testing.T) {
	ctx := context.Background()
	exps := []domain.JobExperience{{Company: "Acme"}, {Company: "Globex"}}

	t.Run("Should return every id on success", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewJobExperienceUsecase(repo)
		repo.On("CreateBulk", ctx, "c1", exps).Return([]string{"a", "b"}, nil)

		ids, err := uc.CreateBulkExperiences(ctx, "c1", exps)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)
		repo.AssertExpectations(t)
	})

	t.Run("Should report committed ids when the list fails midway", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewJobExperienceUsecase(repo)
		dbErr := errors.New("connection reset")
		repo.On("CreateBulk", ctx, "c1", exps).Return([]string{"a"}, dbErr)

		ids, err := uc.CreateBulkExperiences(ctx, "c1", exps)
		require.Error(t, err)
		assert.Equal(t, []string{"a"}, ids)
		assert.ErrorIs(t, err, dbErr)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, []string{"a"}, appErr.Details)
		assert.Contains(t, appErr.Message, "Inserted 1 of 2")
		repo.AssertExpectations(t)
	})

	t.Run("Should map a failure before any insert to the store error", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewJobExperienceUsecase(repo)
		repo.On("CreateBulk", ctx, "missing", exps).Return(nil, domain.ErrNotFound)

		ids, err := uc.CreateBulkExperiences(ctx, "missing", exps)
		require.Error(t, err)
		assert.Empty(t, ids)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}
