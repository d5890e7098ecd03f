package validation

import (
	"regexp"

	"job-use-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, spaces and the punctuation found in real names
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// Optional +, then digits with spaces, dashes, dots or parentheses
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ().-]{7,20}$`)
)

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("application_status", ApplicationStatus)
	_ = v.RegisterValidation("job_status", JobStatus)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

func ApplicationStatus(fl validator.FieldLevel) bool {
	return domain.ValidApplicationStatus(fl.Field().String())
}

func JobStatus(fl validator.FieldLevel) bool {
	return domain.ValidJobStatus(fl.Field().String())
}
