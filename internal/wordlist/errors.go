package wordlist

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPathsSpecified is returned when neither Paths nor Combine name a file.
	ErrNoPathsSpecified = errors.New("no paths specified in options")
	// ErrNoFilesFound is returned when none of the Combine entries is a file.
	ErrNoFilesFound = errors.New(`no files found in "combine"`)
	// ErrNoFileFound is returned when no Paths entry exists and no fallback is configured.
	ErrNoFileFound = errors.New(`no file found in "paths"`)
	// ErrInvalidPath is returned when a Paths entry exists but is not a regular file.
	ErrInvalidPath = errors.New("path does not point to a file")
)

// StreamError reports a failure while reading a word list file.
type StreamError struct {
	Path string
	Err  error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

func invalidPathError(path string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPath, path)
}
