package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCategory represents different types of errors that can occur
type ErrorCategory string

const (
	// Structural errors: a programming or configuration mistake
	ErrorCategoryUnimplemented ErrorCategory = "UNIMPLEMENTED"
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"
	ErrorCategoryValidation    ErrorCategory = "VALIDATION"

	// Errors raised by problem adapters or output sinks
	ErrorCategoryProblem ErrorCategory = "PROBLEM"
	ErrorCategoryIO      ErrorCategory = "IO"
)

// ErrUnimplemented is returned when a policy lacks a concrete selection,
// crossover or mutation operator.
var ErrUnimplemented = stderrors.New("unimplemented operation")

// GAError represents a categorized error with context
type GAError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Context    map[string]interface{}
}

// Error implements the error interface
func (e *GAError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *GAError) Unwrap() error {
	return e.Underlying
}

// IsFatal reports whether the error means the run cannot continue at all.
func (e *GAError) IsFatal() bool {
	return e.Category == ErrorCategoryUnimplemented ||
		e.Category == ErrorCategoryConfiguration
}

// NewGAError creates a new categorized error
func NewGAError(category ErrorCategory, component, operation, message string) *GAError {
	return &GAError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with GA error context
func WrapError(err error, category ErrorCategory, component, operation string) *GAError {
	if err == nil {
		return nil
	}

	return &GAError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
		Context:    make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *GAError) WithContext(key string, value interface{}) *GAError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// CategorizeError attempts to categorize a generic error
func CategorizeError(err error, component, operation string) *GAError {
	if err == nil {
		return nil
	}

	var gaErr *GAError
	if stderrors.As(err, &gaErr) {
		return gaErr
	}

	if stderrors.Is(err, ErrUnimplemented) {
		return WrapError(err, ErrorCategoryUnimplemented, component, operation)
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "no such file") || strings.Contains(errMsg, "permission denied"):
		return WrapError(err, ErrorCategoryIO, component, operation)
	case strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "must be"):
		return WrapError(err, ErrorCategoryValidation, component, operation)
	}

	return WrapError(err, ErrorCategoryProblem, component, operation)
}

// Common error constructors

func NewUnimplementedError(component, operation string) *GAError {
	e := WrapError(ErrUnimplemented, ErrorCategoryUnimplemented, component, operation)
	e.Message = "policy does not provide this operator"
	return e
}

func NewConfigurationError(component, operation, message string) *GAError {
	return NewGAError(ErrorCategoryConfiguration, component, operation, message)
}

func NewValidationError(component, operation, message string) *GAError {
	return NewGAError(ErrorCategoryValidation, component, operation, message)
}

func NewProblemError(component, operation string, err error) *GAError {
	return WrapError(err, ErrorCategoryProblem, component, operation)
}

func NewIOError(component, operation string, err error) *GAError {
	return WrapError(err, ErrorCategoryIO, component, operation)
}

// ErrorStats tracks error statistics
type ErrorStats struct {
	TotalErrors      int
	ErrorsByCategory map[ErrorCategory]int
	RecentErrors     []*GAError
	MaxRecentErrors  int
}

// NewErrorStats creates a new error statistics tracker
func NewErrorStats(maxRecentErrors int) *ErrorStats {
	return &ErrorStats{
		ErrorsByCategory: make(map[ErrorCategory]int),
		RecentErrors:     make([]*GAError, 0, maxRecentErrors),
		MaxRecentErrors:  maxRecentErrors,
	}
}

// RecordError records an error in the statistics
func (es *ErrorStats) RecordError(err *GAError) {
	if err == nil {
		return
	}
	es.TotalErrors++
	es.ErrorsByCategory[err.Category]++

	es.RecentErrors = append(es.RecentErrors, err)
	if len(es.RecentErrors) > es.MaxRecentErrors {
		es.RecentErrors = es.RecentErrors[1:]
	}
}

// GetErrorRate returns the error rate for a specific category
func (es *ErrorStats) GetErrorRate(category ErrorCategory) float64 {
	if es.TotalErrors == 0 {
		return 0.0
	}
	return float64(es.ErrorsByCategory[category]) / float64(es.TotalErrors)
}

// HasRecentErrors checks if there have been errors in the recent history
func (es *ErrorStats) HasRecentErrors(category ErrorCategory, count int) bool {
	recentCount := 0
	for _, err := range es.RecentErrors {
		if err.Category == category {
			recentCount++
		}
	}
	return recentCount >= count
}
