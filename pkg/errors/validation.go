package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MinHeight is the smallest rocket that can be assembled: a nose cone,
// an engine and one row of decoration.
const MinHeight = 3

// ValidateHeight rejects heights below [MinHeight] with a CONFIGURATION error.
func ValidateHeight(height int) error {
	if height < MinHeight {
		return New(ErrCodeConfiguration, "cannot build a rocket shorter than %d rows (got %d)", MinHeight, height)
	}
	return nil
}

// partIDRegex matches lowercase, dash-separated part identifiers.
var partIDRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidatePartID validates a part identifier.
//
// The rules are:
//   - No empty IDs
//   - Maximum length of 64 characters
//   - Lowercase letters, digits and single dashes only
func ValidatePartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCatalog, "part id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidCatalog, "part id too long (max 64 characters): %q", id)
	}
	if !partIDRegex.MatchString(id) {
		return New(ErrCodeInvalidCatalog, "invalid part id: %q", id)
	}
	return nil
}

// ValidateShape validates the ASCII art of a part.
// A shape must have at least one row, rows cannot be empty, and no row may
// contain control characters (the row separator is the only newline allowed).
func ValidateShape(id, shape string) error {
	if shape == "" {
		return New(ErrCodeInvalidCatalog, "part %q has an empty shape", id)
	}
	for i, row := range strings.Split(shape, "\n") {
		if row == "" {
			return New(ErrCodeInvalidCatalog, "part %q has an empty row %d", id, i)
		}
		for _, r := range row {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidCatalog, "part %q row %d contains control characters", id, i)
			}
		}
	}
	return nil
}
