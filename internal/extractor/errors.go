// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorType represents the kind of extraction failure
type ErrorType string

const (
	// File-related errors
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeFileAccess ErrorType = "file_access"

	// Format-related errors
	ErrorTypeMalformed ErrorType = "malformed"
)

// Sentinels matched by errors.Is against an *ExtractionError.
var (
	ErrNotFound   = errors.New("no such file")
	ErrFileAccess = errors.New("file cannot be read")
	ErrMalformed  = errors.New("malformed PDF document")
)

// ExtractionError describes why a document could not be extracted
type ExtractionError struct {
	Path      string
	ErrorType ErrorType
	Page      int // 1-based; zero when the failure is not tied to a page
	Cause     error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	parts := []string{e.sentinel().Error(), e.Path}
	if e.Page > 0 {
		parts = append(parts, fmt.Sprintf("page %d", e.Page))
	}
	msg := strings.Join(parts, ": ")

	// The not-found cause only repeats the path.
	if e.Cause != nil && e.ErrorType != ErrorTypeNotFound {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's type
func (e *ExtractionError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ExtractionError) sentinel() error {
	switch e.ErrorType {
	case ErrorTypeNotFound:
		return ErrNotFound
	case ErrorTypeFileAccess:
		return ErrFileAccess
	default:
		return ErrMalformed
	}
}

// NewExtractionError creates a new extraction error
func NewExtractionError(path string, errorType ErrorType, cause error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		ErrorType: errorType,
		Cause:     cause,
	}
}

// WithPage attaches the failing page number
func (e *ExtractionError) WithPage(page int) *ExtractionError {
	e.Page = page
	return e
}

// FileError classifies an error returned by os.Stat or os.Open
func FileError(path string, err error) *ExtractionError {
	if errors.Is(err, fs.ErrNotExist) {
		return NewExtractionError(path, ErrorTypeNotFound, err)
	}
	return NewExtractionError(path, ErrorTypeFileAccess, err)
}

// IsIOError reports whether err means the file was missing or unreadable
func IsIOError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrFileAccess)
}

// IsParseError reports whether err means the bytes were not a usable PDF
func IsParseError(err error) bool {
	return errors.Is(err, ErrMalformed)
}
