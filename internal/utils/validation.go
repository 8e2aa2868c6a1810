package utils

import (
	"fmt"
	"net/mail"
	"path/filepath"
	"strings"
)

// MaxImageBytes is the upload size limit for images.
const MaxImageBytes int64 = 5 * 1024 * 1024

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email", "Email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return NewValidationError("email", "Please provide a valid email")
	}

	return nil
}

// ValidateRequired validates that a string is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fieldName, fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidateImage checks content type and size before an upload is attempted.
func ValidateImage(contentType string, size, limit int64) error {
	if limit <= 0 {
		limit = MaxImageBytes
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return NewValidationError("file", "Only image files are allowed")
	}
	if size > limit {
		return NewValidationError("file", fmt.Sprintf("File size must be less than %dMB", limit/(1024*1024)))
	}
	return nil
}

// FileExtension returns the extension of name without the dot, or "bin".
func FileExtension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "bin"
	}
	return strings.ToLower(ext)
}
