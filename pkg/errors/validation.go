package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxNameLength bounds the base filename so derived artifact names
// (e.g. "<name>-qr-codes_codes.txt") stay well under common filesystem limits.
const maxNameLength = 128

// ValidateCount checks that a count-like parameter (unique count, repeat
// count) is at least 1. The field name is used in the message.
func ValidateCount(field string, n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "invalid value for %q: %d is not >= 1", field, n)
	}
	return nil
}

// ValidateScale checks that the label scale factor is a finite positive number.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return New(ErrCodeInvalidInput, "invalid value for \"scale\": %v is not a finite number", scale)
	}
	if scale <= 0 {
		return New(ErrCodeInvalidInput, "invalid value for \"scale\": %v is not > 0", scale)
	}
	return nil
}

// ValidateName validates the base filename used for generated artifacts.
// Empty names are allowed (a scale-based default is used). Non-empty names
// must be a single path element without control characters.
func ValidateName(name string) error {
	if name == "" {
		return nil
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPath, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "name cannot contain path separators")
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "name cannot be %q", name)
	}

	return nil
}

// ValidateOutputDir validates the output directory path syntactically.
// Whether the directory is writable is checked separately before rendering.
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	return nil
}
