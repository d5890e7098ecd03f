// Package upload checks profile upload files before they are parsed.
package upload

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrExtension = errors.New("file extension not allowed")
	ErrMIME      = errors.New("file content is not text")
)

// Allowed file extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".json": true,
	".txt":  true,
}

// Plain text is accepted so that broken JSON still reaches the parser and is
// reported field by field.
var allowedMIMETypes = []string{
	"application/json",
	"text/plain",
}

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Extension    string
	DetectedMIME string
}

// ValidateProfileFile checks the extension (when a filename is given) and
// sniffs the content. Binary payloads are rejected whatever their name.
func ValidateProfileFile(filename string, data []byte) (FileValidationResult, error) {
	var result FileValidationResult

	if filename != "" {
		ext := strings.ToLower(filepath.Ext(filename))
		result.Extension = ext
		if !allowedExtensions[ext] {
			return result, ErrExtension
		}
	}

	// Empty input is left to the parser
	if len(data) == 0 {
		return result, nil
	}

	detected := mimetype.Detect(data)
	result.DetectedMIME = detected.String()
	for _, m := range allowedMIMETypes {
		if detected.Is(m) {
			return result, nil
		}
	}
	return result, ErrMIME
}

// AllowedExtensions lists the accepted extensions for error messages.
func AllowedExtensions() []string {
	return []string{".json", ".txt"}
}
