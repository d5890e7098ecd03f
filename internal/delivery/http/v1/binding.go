package v1

import (
	"errors"
	"net/http"

	"job-use-backend/internal/delivery/http/response"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError turns a gin binding failure into a 400 with per-field messages.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.Invalid("Validation failed", validation.FormatValidationErrors(err), err)
	}
	return apperror.Invalid("Invalid request body", []string{err.Error()}, err)
}

// respondPartial reports a failure that still produced a result worth returning.
func respondPartial(c *gin.Context, err error, data interface{}) {
	code := http.StatusInternalServerError
	message := "Request partially failed"
	var details interface{}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
		if len(appErr.Details) > 0 {
			details = appErr.Details
		}
	}
	response.ErrorWithData(c, code, message, data, details)
}
