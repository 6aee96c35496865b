package config

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownModelType = errors.New("unknown model type")
	ErrMissingDataDir   = errors.New("data_dir is required")
	ErrDataDirNotFound  = errors.New("data_dir does not exist or is not a directory")
)

// ValidationError provides detailed information about an out-of-range or
// inconsistent configuration field.
type ValidationError struct {
	Section string // Section the field lives in ("model", "training", ...)
	Field   string // Field name as written in YAML
	Details string // What constraint was violated
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("%s.%s: %s", e.Section, e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Details)
}

func rangeErr(section, field, details string) *ValidationError {
	return &ValidationError{Section: section, Field: field, Details: details}
}
