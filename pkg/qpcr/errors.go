package qpcr

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ArgumentError represents a bad invocation detected before any input is read.
type ArgumentError struct {
	Argument string
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %v", e.Argument, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates a new ArgumentError.
func NewArgumentError(argument string, err error) *ArgumentError {
	return &ArgumentError{
		Argument: argument,
		Err:      err,
	}
}
