package playlist

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPLS indicates the input is not recognizable as a PLS document.
	ErrNotPLS = errors.New("not a PLS file")
	// ErrCorruptPLS indicates a PLS document that violates a required rule.
	ErrCorruptPLS = errors.New("corrupt PLS file")
)

// FieldError reports a per-entry key that is missing from the playlist section.
type FieldError struct {
	Index int
	Key   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: entry %d is missing %s", ErrCorruptPLS, e.Index, e.Key)
}

// Unwrap lets errors.Is match FieldError against ErrCorruptPLS.
func (e *FieldError) Unwrap() error {
	return ErrCorruptPLS
}
