package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds station names and line IDs.
const maxNameLength = 256

// ValidateStationName validates a station name as typed by a user or read
// from a line file. Names are compared exactly, so leading or trailing
// whitespace is rejected rather than trimmed.
//
// Validation rules:
//   - No empty names
//   - No leading or trailing whitespace
//   - No control characters (tabs, newlines, null bytes)
//   - Maximum length of 256 bytes
func ValidateStationName(name string) error {
	if err := validateName(name); err != nil {
		return New(ErrCodeInvalidStation, "station name %s", err.Message)
	}
	return nil
}

// ValidateLineID validates a line identifier.
// Line IDs follow the station rules and additionally cannot contain path
// separators, since directory sources derive them from file names.
func ValidateLineID(id string) error {
	if err := validateName(id); err != nil {
		return New(ErrCodeInvalidLine, "line ID %s", err.Message)
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidLine, "line ID cannot contain path separators: %q", id)
	}
	return nil
}

func validateName(name string) *Error {
	if name == "" {
		return New(ErrCodeInvalidInput, "cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "contains invalid control characters")
		}
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidInput, "has leading or trailing whitespace: %q", name)
	}
	return nil
}

// ValidatePath validates a lines source path given on the command line or in
// the config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
