package domain

import "errors"

// Common domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicateApplication = errors.New("you have already applied for this job")
	ErrDuplicateEmail       = errors.New("a candidate with this email already exists")
	ErrMalformedUpload      = errors.New("malformed profile upload")
	ErrPartialIngestion     = errors.New("profile ingestion partially failed")
	ErrInvalidStatus        = errors.New("invalid status")
)
