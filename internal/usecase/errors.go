package usecase

import (
	"errors"
	"fmt"

	"letterboxd/pkg/utils"
)

// ErrNotFound is returned when the requested item does not exist or is not
// visible to readers.
var ErrNotFound = errors.New("not found")

// ValidationError carries per-field messages for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func notFound(what, key string) error {
	return fmt.Errorf("%s %q %w", what, key, ErrNotFound)
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
