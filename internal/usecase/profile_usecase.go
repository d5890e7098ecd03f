package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/logger"
	"job-use-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	candidateUC  domain.CandidateUsecase
	experienceUC domain.JobExperienceUsecase
	questionUC   domain.QuestionUsecase
	validate     *validator.Validate
}

func NewProfileUsecase(
	candidateUC domain.CandidateUsecase,
	experienceUC domain.JobExperienceUsecase,
	questionUC domain.QuestionUsecase,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		candidateUC:  candidateUC,
		experienceUC: experienceUC,
		questionUC:   questionUC,
		validate:     validate,
	}
}

func malformed(details []string, cause error) error {
	return apperror.Invalid("Malformed profile upload", details,
		fmt.Errorf("%w: %v", domain.ErrMalformedUpload, cause))
}

// ParseProfile checks the upload is JSON, matches the profile schema and
// passes field validation. Nothing is written.
func (u *profileUsecase) ParseProfile(raw []byte) (*domain.UploadedProfile, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return nil, malformed([]string{"file is not valid JSON"}, errors.New("invalid json"))
	}

	if err := validation.ValidateProfileDocument(raw); err != nil {
		var schemaErr *validation.SchemaError
		if errors.As(err, &schemaErr) {
			return nil, malformed(schemaErr.Fields, err)
		}
		return nil, apperror.Internal(err)
	}

	var profile domain.UploadedProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, malformed([]string{err.Error()}, err)
	}

	if err := u.validate.Struct(&profile); err != nil {
		return nil, malformed(validation.FormatValidationErrors(err), err)
	}
	return &profile, nil
}

// IngestProfile upserts the candidate then replaces whichever collections the
// upload carries. The steps commit one by one; on a later failure the result
// still names the candidate so the caller can retry.
func (u *profileUsecase) IngestProfile(ctx context.Context, raw []byte) (*domain.IngestionResult, error) {
	profile, err := u.ParseProfile(raw)
	if err != nil {
		return nil, err
	}

	candidate, err := u.candidateUC.UpsertCandidate(ctx, profile.CandidateInput())
	if err != nil {
		return nil, err
	}
	result := &domain.IngestionResult{
		CandidateID: candidate.ID,
		Candidate:   candidate,
	}

	if exps := profile.Experiences(); exps != nil {
		ids, err := u.experienceUC.ReplaceExperiences(ctx, candidate.ID, exps)
		if err != nil {
			return result, partial(ctx, "work experience", candidate.ID, err)
		}
		result.ExperienceCount = len(ids)
		result.ExperiencesSet = true
	}

	if qs := profile.QuestionList(); qs != nil {
		ids, err := u.questionUC.ReplaceQuestions(ctx, candidate.ID, qs)
		if err != nil {
			return result, partial(ctx, "questions", candidate.ID, err)
		}
		result.QuestionCount = len(ids)
		result.QuestionsSet = true
	}

	logger.Log.Info("Profile ingested",
		"request_id", domain.RequestIDFrom(ctx),
		"candidate_id", candidate.ID,
		"experiences", result.ExperienceCount,
		"questions", result.QuestionCount,
	)
	return result, nil
}

func partial(ctx context.Context, step, candidateID string, err error) error {
	logger.Log.Error("Profile ingestion stopped",
		"request_id", domain.RequestIDFrom(ctx),
		"step", step,
		"candidate_id", candidateID,
		"error", err,
	)
	return apperror.New(http.StatusInternalServerError,
		"Profile saved but "+step+" could not be stored",
		fmt.Errorf("%w: %s: %w", domain.ErrPartialIngestion, step, err))
}
