package usecase

import (
	"errors"
	"net/http"

	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/validation"
)

// storeError maps a repository error onto an AppError. what names the
// resource in the 404 message.
func storeError(err error, what string) error {
	var appErr *apperror.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, domain.ErrNotFound):
		return apperror.New(http.StatusNotFound, what+" not found", err)
	case errors.Is(err, domain.ErrDuplicateEmail):
		return apperror.Conflict("A candidate with this email already exists", err)
	case errors.Is(err, domain.ErrDuplicateApplication):
		return apperror.Conflict("You have already applied for this job", err)
	}
	return apperror.Internal(err)
}

func invalid(err error) error {
	return apperror.Invalid("Validation failed", validation.FormatValidationErrors(err), err)
}
