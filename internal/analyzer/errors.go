package analyzer

import (
	"errors"
	"fmt"
)

// Exported variables.
var (
	// ErrCancelled reports that the caller cancelled the analysis; no result is produced.
	ErrCancelled = errors.New("analysis cancelled")
	// ErrRootUnreadable reports that the root does not exist, is not a directory, or cannot be read.
	ErrRootUnreadable = errors.New("root unreadable")
	// ErrNotDirectory is the cause attached to a RootError when the root is a file.
	ErrNotDirectory = errors.New("not a directory")
)

// RootError is the fatal failure to open the analysis root.
// errors.Is matches both ErrRootUnreadable and the underlying cause.
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRootUnreadable, e.Path, e.Err)
}

func (e *RootError) Unwrap() []error {
	return []error{ErrRootUnreadable, e.Err}
}

// EntryError is a non-fatal failure to read one entry inside the tree.
// The entry is skipped and the scan continues.
type EntryError struct {
	Path string
	Op   string // "stat", "readdir" or "identity"
	Err  error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e EntryError) Unwrap() error {
	return e.Err
}

func cancelledError(cause error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
