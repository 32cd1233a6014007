package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxFieldLength bounds product names and codes.
const maxFieldLength = 256

// ValidateProductName checks that a product name is non-empty, printable and
// of reasonable length.
func ValidateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidProduct, "product name cannot be empty")
	}
	return validateField("product name", name)
}

// ValidateProductCode checks a product code (SKU). An empty code is allowed;
// tag faces then fall back to the product name for QR payloads.
func ValidateProductCode(code string) error {
	if code == "" {
		return nil
	}
	if strings.ContainsAny(code, " \t") {
		return New(ErrCodeInvalidProduct, "product code cannot contain whitespace: %q", code)
	}
	return validateField("product code", code)
}

// ValidatePrice rejects negative and non-finite prices.
func ValidatePrice(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidProduct, "%s is not a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidProduct, "%s cannot be negative: %.2f", field, v)
	}
	return nil
}

// ValidatePath checks a file name that is joined onto an output directory.
// Absolute paths and traversal out of the directory are rejected.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid control characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidInput, "path must be relative (cannot start with /)")
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidInput, "path cannot contain backslashes")
	}
	return nil
}

func validateField(field, v string) error {
	if len(v) > maxFieldLength {
		return New(ErrCodeInvalidProduct, "%s too long (max %d characters)", field, maxFieldLength)
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProduct, "%s contains invalid control characters", field)
		}
	}
	return nil
}
