package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotLoaded indicates the catalog has no documents yet.
	// Read commands require a prior sync or an explicit notes root.
	ErrNotLoaded = errors.New("catalog not loaded")

	// ErrUnsupportedType indicates an unknown normaliser or MIME type.
	ErrUnsupportedType = errors.New("unsupported type")
)

// LoadError indicates a source file could not be read or parsed.
// It aborts the load; the catalog is left unchanged.
type LoadError struct {
	// Path is the offending source file.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err as a LoadError for path.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

// IsLoadError reports whether err is (or wraps) a LoadError,
// returning it when so.
func IsLoadError(err error) (*LoadError, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
