package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scan pipeline. Callers match them with errors.Is.
var (
	// ErrUsage indicates a malformed invocation; no scan is attempted.
	ErrUsage = errors.New("usage error")
	// ErrInvalidRoot indicates the scan root is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid scan root")
	// ErrUnreadableFile indicates a single candidate could not be opened or read.
	ErrUnreadableFile = errors.New("unreadable file")
)

// FileError reports a failure to read one candidate file.
// It unwraps to both ErrUnreadableFile and the underlying I/O error.
type FileError struct {
	Path string // Root-relative path of the file
	Err  error  // Underlying I/O error
}

// NewFileError creates a FileError for the given root-relative path
func NewFileError(path string, err error) *FileError {
	return &FileError{Path: path, Err: err}
}

// Error implements the error interface for FileError.
func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, ErrUnreadableFile)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, ErrUnreadableFile, e.Err)
}

// Unwrap returns both the sentinel and the underlying error.
func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnreadableFile}
	}
	return []error{ErrUnreadableFile, e.Err}
}
