package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures reported to the user.
type ErrorKind string

const (
	KindNoDatasetLoaded      ErrorKind = "NO_DATASET_LOADED"
	KindLoadFailure          ErrorKind = "LOAD_FAILURE"
	KindInvalidFillStrategy  ErrorKind = "INVALID_FILL_STRATEGY"
	KindEmptyAfterFiltering  ErrorKind = "EMPTY_AFTER_FILTERING"
	KindNoNumericColumns     ErrorKind = "NO_NUMERIC_COLUMNS"
	KindPlotGenerationError  ErrorKind = "PLOT_GENERATION"
	KindInvalidAxisSelection ErrorKind = "INVALID_AXIS_SELECTION"
)

// AppError represents an application-specific error
type AppError struct {
	Kind    ErrorKind
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError of the same kind, so the sentinels below work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func NewError(kind ErrorKind, message string, cause error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

var (
	ErrNoDatasetLoaded      = &AppError{Kind: KindNoDatasetLoaded, Message: "no dataset loaded"}
	ErrLoadFailure          = &AppError{Kind: KindLoadFailure, Message: "failed to load dataset"}
	ErrInvalidFillStrategy  = &AppError{Kind: KindInvalidFillStrategy, Message: "invalid fill strategy"}
	ErrEmptyAfterFiltering  = &AppError{Kind: KindEmptyAfterFiltering, Message: "no rows left after filtering"}
	ErrNoNumericColumns     = &AppError{Kind: KindNoNumericColumns, Message: "no numeric columns"}
	ErrPlotGeneration       = &AppError{Kind: KindPlotGenerationError, Message: "failed to generate plot"}
	ErrInvalidAxisSelection = &AppError{Kind: KindInvalidAxisSelection, Message: "invalid axis selection"}
)

// KindOf returns the kind of the first AppError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
