package scaffold

import (
	"errors"
	"fmt"
)

// ErrTemplate is the base error for template failures.
var ErrTemplate = errors.New("template error")

var (
	// ErrAlreadyExists is returned when the destination directory exists
	// and saving was not forced.
	ErrAlreadyExists = fmt.Errorf("%w: destination already exists", ErrTemplate)

	// ErrNotFound is returned when no source provides a template name.
	ErrNotFound = errors.New("template not found")
)

// MissingArgumentsError reports required arguments that were never given
// a value.
type MissingArgumentsError struct {
	Count int
	First string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("cannot set %d arguments. First is [%s]", e.Count, e.First)
}

func (e *MissingArgumentsError) Unwrap() error { return ErrTemplate }
