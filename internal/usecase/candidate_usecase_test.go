package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"job-use-backend/internal/domain"
	"job-use-backend/internal/usecase"
	"job-use-backend/pkg/password"
	"job-use-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hash the password", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, password.NewHasher(bcrypt.MinCost), validation.New())

		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Candidate) bool {
			return c.Email == "h@example.com" && c.PasswordHash != "" && c.PasswordHash != "plain"
		})).Return(nil)

		c, err := uc.CreateCandidate(ctx, domain.CandidateInput{Email: "h@example.com", Password: "plain"})
		require.NoError(t, err)
		assert.True(t, password.NewHasher(bcrypt.MinCost).Verify("plain", c.PasswordHash))
		repo.AssertExpectations(t)
	})

	t.Run("Should fail validation before touching the store", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, password.NewHasher(bcrypt.MinCost), validation.New())

		_, err := uc.CreateCandidate(ctx, domain.CandidateInput{Email: "nope", Password: ""})
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should map duplicate email to 409", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, password.NewHasher(bcrypt.MinCost), validation.New())
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateEmail)

		_, err := uc.CreateCandidate(ctx, domain.CandidateInput{Email: "d@example.com", Password: "x"})
		assert.Equal(t, http.StatusConflict, appErrorCode(t, err))
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestUpdateCandidate(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	c := s.mustCandidate(t, "patch@example.com")

	title := "Charge Nurse"
	require.NoError(t, s.candidates.UpdateCandidate(ctx, c.ID, domain.CandidatePatch{CurrentJobTitle: &title}))

	got, err := s.candidates.GetCandidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, title, got.CurrentJobTitle)
	assert.Equal(t, c.FirstName, got.FirstName, "unsupplied fields are untouched")
	assert.Equal(t, c.PasswordHash, got.PasswordHash)

	assert.NoError(t, s.candidates.UpdateCandidate(ctx, "no-such-id", domain.CandidatePatch{CurrentJobTitle: &title}))
	assert.NoError(t, s.candidates.UpdateCandidate(ctx, c.ID, domain.CandidatePatch{}))
}

func TestGetCandidateNotFound(t *testing.T) {
	s := newServices(t)
	_, err := s.candidates.GetCandidate(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}
