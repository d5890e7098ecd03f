package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProfileFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  error
	}{
		{"json file", "profile.json", []byte(`{"email":"a@example.com"}`), nil},
		{"raw body without name", "", []byte(`{"email":"a@example.com"}`), nil},
		{"broken json is still text", "profile.json", []byte(`{"email": `), nil},
		{"uppercase extension", "PROFILE.JSON", []byte(`{}`), nil},
		{"wrong extension", "profile.pdf", []byte(`{}`), ErrExtension},
		{"missing extension", "profile", []byte(`{}`), ErrExtension},
		{"png content", "profile.json", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}, ErrMIME},
		{"pdf content", "", []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n"), ErrMIME},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateProfileFile(tt.filename, tt.data)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
