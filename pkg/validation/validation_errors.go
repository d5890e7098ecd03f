package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Candidate fields
	"Email":             "Email",
	"Password":          "Password",
	"ProfileType":       "Profile type",
	"FirstName":         "First name",
	"LastName":          "Last name",
	"PostCode":          "Post code",
	"Phone":             "Phone number",
	"ProfileSummary":    "Profile summary",
	"CurrentJobTitle":   "Current job title",
	"CurrentCompany":    "Current company",
	"Experience":        "Years of experience",
	"EligibilityToWork": "Eligibility to work",

	// Job experience fields
	"Company":   "Company",
	"Title":     "Title",
	"StartDate": "Start date",
	"EndDate":   "End date",

	// Question fields
	"Name":         "Question",
	"QuestionType": "Question type",

	// Application fields
	"CandidateID": "Candidate",
	"JobID":       "Job",
	"Status":      "Status",
}

// ValidationRules contains extra context for min/max messages
var ValidationRules = map[string]map[string]interface{}{
	"Age":   {"unit": "years"},
	"Phone": {"min": 7, "max": 20},
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	fieldName := e.StructField()
	label := getFieldLabel(fieldName)
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s: is required", label)

	case "min", "gte":
		if rules, ok := ValidationRules[fieldName]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s: must be at least %s %s", label, param, unit)
			}
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max", "lte":
		if rules, ok := ValidationRules[fieldName]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s: must be at most %s %s", label, param, unit)
			}
		}
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "valid_name":
		return fmt.Sprintf("%s: may only contain letters, spaces and common punctuation (. ' -)", label)

	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-20 digits, spaces, dashes or parentheses)", label)

	case "application_status":
		return fmt.Sprintf("%s: must be one of pending, reviewed, accepted, rejected", label)

	case "job_status":
		return fmt.Sprintf("%s: must be active or closed", label)

	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, tag)
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
