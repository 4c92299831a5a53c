// Package errors provides custom error types for the atlas sync engine.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Stdlib re-exports so callers only import one errors package.
var (
	// Is reports whether any error in err's chain matches target.
	Is = errors.Is

	// As finds the first error in err's chain that matches target.
	As = errors.As

	// Join wraps the given errors into a single error.
	Join = errors.Join

	// Errorf formats an error, supporting the %w verb.
	Errorf = fmt.Errorf
)

// Common sentinel errors for the atlas system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a record already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates that a knowledge-graph endpoint is
	// unreachable or returned a failure; the affected facet degrades to empty
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrNoPrimaryData indicates that every primary query for an entity type
	// returned nothing; that type's sync aborts and the store is left untouched
	ErrNoPrimaryData = errors.New("no primary data")

	// ErrSyncInProgress indicates another sync of the same entity type holds
	// the per-type lock
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Kind string
	Key  string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %s not found", e.Kind, e.Key)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// QueryError represents a failed graph query against a remote endpoint
type QueryError struct {
	Source     string // source adapter name, e.g. "wikidata"
	Endpoint   string
	Facet      string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *QueryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("query error from %s (status %d): %s", e.Source, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("query error from %s: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support. Any query failure means the source could
// not contribute its facet, so every QueryError matches ErrSourceUnavailable.
func (e *QueryError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewQueryError creates a new QueryError
func NewQueryError(source string, statusCode int, message string) *QueryError {
	return &QueryError{
		Source:     source,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ParseError represents an error decoding a remote response
type ParseError struct {
	Source  string // "wikidata", "dbpedia", or a format like "json"
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse error: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(source, message string, err error) *ParseError {
	return &ParseError{Source: source, Message: message, Err: err}
}

// TransformError represents a single record that failed extraction or
// processing. The record is skipped; the batch continues.
type TransformError struct {
	Kind    string // entity type, e.g. "provinces"
	Entity  string // display name or source key of the failing record
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *TransformError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("transform error for %s %q (field %s): %s", e.Kind, e.Entity, e.Field, e.Message)
	}
	return fmt.Sprintf("transform error for %s %q: %s", e.Kind, e.Entity, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError
func NewTransformError(kind, entity, field string, err error) *TransformError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &TransformError{
		Kind:    kind,
		Entity:  entity,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// PersistenceError represents a store write failure. Because writes are
// batched, one PersistenceError may cover multiple records.
type PersistenceError struct {
	Op      string // "upsert", "bulk update", "cleanup", "migrate"
	Kind    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("persistence error during %s of %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("persistence error during %s: %s", e.Op, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(op, kind string, err error) *PersistenceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PersistenceError{Op: op, Kind: kind, Message: message, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// SyncError represents an error during one entity type's sync run
type SyncError struct {
	Kind     string   // entity type, e.g. "heritage"
	Entities []string // display names of affected records, if known
	Err      error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	if len(e.Entities) > 0 {
		return fmt.Sprintf("sync error for %s (affected records: %v): %v", e.Kind, e.Entities, e.Err)
	}
	return fmt.Sprintf("sync error for %s: %v", e.Kind, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError
func NewSyncError(kind string, entities []string, err error) *SyncError {
	return &SyncError{
		Kind:     kind,
		Entities: entities,
		Err:      err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSourceUnavailable checks if an error indicates a failed source query
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsNoPrimaryData checks if an error indicates absent primary data
func IsNoPrimaryData(err error) bool {
	return errors.Is(err, ErrNoPrimaryData)
}

// IsSyncInProgress checks if an error indicates a concurrent sync of the same type
func IsSyncInProgress(err error) bool {
	return errors.Is(err, ErrSyncInProgress)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapQuery wraps an error as a QueryError
func WrapQuery(source, endpoint, facet string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{
		Source:     source,
		Endpoint:   endpoint,
		Facet:      facet,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}

// WrapParse wraps an error as a ParseError
func WrapParse(source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(source, err.Error(), err)
}

// WrapTransform wraps an error as a TransformError
func WrapTransform(kind, entity string, err error) error {
	if err == nil {
		return nil
	}
	return NewTransformError(kind, entity, "", err)
}

// WrapPersistence wraps an error as a PersistenceError
func WrapPersistence(op, kind string, err error) error {
	if err == nil {
		return nil
	}
	return NewPersistenceError(op, kind, err)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapConfig wraps an error as a ConfigError
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigError(component, err.Error(), err)
}
