package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Common domain errors
var (
	ErrInvalidEntry    = errors.New("invalid download entry")
	ErrRunInProgress   = errors.New("another run holds the output directory")
	ErrHistoryDisabled = errors.New("history store is not configured")
	ErrNotFound        = errors.New("not found")
)

// NetworkError covers any failure to obtain a successful response for a URL:
// DNS, connection, read errors and non-success status codes.
type NetworkError struct {
	URL string
	Err error
}

// Error returns the error message
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s failed", e.URL)
}

// Unwrap returns the underlying error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new network error
func NewNetworkError(url string, err error) *NetworkError {
	return &NetworkError{URL: url, Err: err}
}

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	StatusCode int
}

// Error returns the error message
func (e *StatusError) Error() string {
	text := http.StatusText(e.StatusCode)
	if text == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, text)
}

// FilesystemError covers directory creation and file write failures
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the error message
func (e *FilesystemError) Error() string {
	if e.Err != nil {
		return e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + " failed"
}

// Unwrap returns the underlying error
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// NewFilesystemError creates a new filesystem error
func NewFilesystemError(op, path string, err error) *FilesystemError {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

// IsNetwork returns true if err is or wraps a NetworkError
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsFilesystem returns true if err is or wraps a FilesystemError
func IsFilesystem(err error) bool {
	var fe *FilesystemError
	return errors.As(err, &fe)
}

// GetStatusCode returns the HTTP status carried by err, if any
func GetStatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}
