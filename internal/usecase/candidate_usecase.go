package usecase

import (
	"context"

	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/password"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

type candidateUsecase struct {
	repo           domain.CandidateRepository
	experienceRepo domain.JobExperienceRepository
	questionRepo   domain.QuestionRepository
	hasher         *password.Hasher
	validate       *validator.Validate
}

func NewCandidateUsecase(
	repo domain.CandidateRepository,
	experienceRepo domain.JobExperienceRepository,
	questionRepo domain.QuestionRepository,
	hasher *password.Hasher,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:           repo,
		experienceRepo: experienceRepo,
		questionRepo:   questionRepo,
		hasher:         hasher,
		validate:       validate,
	}
}

// newCandidate validates input and hashes its password.
func (u *candidateUsecase) newCandidate(input domain.CandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, invalid(err)
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.Candidate{
		Email:             input.Email,
		PasswordHash:      hash,
		ProfileType:       input.ProfileType,
		CVUploaded:        input.CVUploaded,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		EligibilityToWork: input.EligibilityToWork,
		Age:               input.Age,
		PostCode:          input.PostCode,
		Birthdate:         input.Birthdate,
		Phone:             input.Phone,
		Country:           input.Country,
		County:            input.County,
		Salary:            input.Salary,
		ProfileSummary:    input.ProfileSummary,
		CurrentJobTitle:   input.CurrentJobTitle,
		CurrentCompany:    input.CurrentCompany,
		Experience:        input.Experience,
	}, nil
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	c, err := u.newCandidate(input)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, storeError(err, "Candidate")
	}
	return c, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Candidate")
	}
	return c, nil
}

func (u *candidateUsecase) GetCandidateByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	if email == "" {
		return nil, apperror.BadRequest("email is required")
	}
	c, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, storeError(err, "Candidate")
	}
	return c, nil
}

// UpdateCandidate applies a partial patch. Patching an unknown id succeeds without effect.
func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id string, patch domain.CandidatePatch) error {
	if patch.IsEmpty() {
		return nil
	}
	return storeError(u.repo.Update(ctx, id, patch), "Candidate")
}

// UpsertCandidate creates the candidate or overwrites every profile field of
// the one already holding the email.
func (u *candidateUsecase) UpsertCandidate(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	c, err := u.newCandidate(input)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Upsert(ctx, c); err != nil {
		return nil, storeError(err, "Candidate")
	}
	return c, nil
}

// GetProfile loads the candidate and both owned collections concurrently.
func (u *candidateUsecase) GetProfile(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	profile := &domain.CandidateProfile{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := u.repo.GetByID(gctx, id)
		profile.Candidate = c
		return err
	})
	g.Go(func() error {
		exps, err := u.experienceRepo.ListByCandidate(gctx, id)
		profile.JobExperiences = exps
		return err
	})
	g.Go(func() error {
		qs, err := u.questionRepo.ListByCandidate(gctx, id)
		profile.Questions = qs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError(err, "Candidate")
	}
	return profile, nil
}
