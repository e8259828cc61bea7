package pathname

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for the operation taxonomy. Match with errors.Is.
var (
	// ErrNotFound reports a path that must exist but does not.
	ErrNotFound = errors.New("path not found")

	// ErrAlreadyExists reports a copy destination present without overwrite.
	ErrAlreadyExists = errors.New("path already exists")

	// ErrPermissionDenied reports a mutation refused by the platform.
	// Access-check predicates never surface this; they report false.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO is the catch-all for storage-layer failures.
	ErrIO = errors.New("i/o failure")
)

// Error carries the failing operation and path alongside the cause.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapErr classifies a storage-layer failure into the taxonomy and tags
// it with the failing operation and path.
func wrapErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrExist):
		err = fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	case errors.Is(err, fs.ErrPermission):
		err = fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case isTaxonomy(err):
		// Already classified by a nested recursive call.
		return err
	default:
		err = fmt.Errorf("%w: %v", ErrIO, err)
	}
	return &Error{Op: op, Path: path, Err: err}
}

func isTaxonomy(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrIO)
}
