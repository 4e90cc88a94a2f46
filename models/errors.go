package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the core and the storage engines. Use errors.Is to classify
var (
	// ErrValidation is malformed or rule violating input. Nothing was changed
	ErrValidation = errors.New("invalid request")
	// ErrNotFound means a referenced bracket, match set, entrant or competitor does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict means the bracket was completed concurrently by someone else
	ErrConflict = errors.New("conflict")
)

func kindf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

func Invalidf(format string, args ...interface{}) error {
	return kindf(ErrValidation, format, args...)
}

func NotFoundf(format string, args ...interface{}) error {
	return kindf(ErrNotFound, format, args...)
}

func Conflictf(format string, args ...interface{}) error {
	return kindf(ErrConflict, format, args...)
}
