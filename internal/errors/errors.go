package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents an invalid or inconsistent configuration value
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is enables errors.Is() comparison for ConfigurationError
func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	if !ok {
		return false
	}
	return e.Field == t.Field
}

// CatalogError represents a malformed or unusable catalog source
type CatalogError struct {
	Source  string // file path or list name
	Message string
}

func (e *CatalogError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("catalog error: %s - %s", e.Source, e.Message)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

// Is enables errors.Is() comparison for CatalogError
func (e *CatalogError) Is(target error) bool {
	t, ok := target.(*CatalogError)
	if !ok {
		return false
	}
	return e.Source == t.Source
}

// StageError wraps a failure inside a named pipeline stage
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Configuration Errors
var (
	ErrUnknownDatabaseDriver = &ConfigurationError{Field: "DATABASE_DRIVER", Message: "must be one of: sqlite, postgres"}
	ErrEmptyDistribution     = &ConfigurationError{Field: "DEPARTMENT_DISTRIBUTION", Message: "distribution table is empty"}
	ErrInvalidSimulationEnd  = &ConfigurationError{Field: "SIMULATION_END", Message: "must be an RFC3339 timestamp"}
)

// Catalog Errors
var (
	ErrCatalogEmptyList = &CatalogError{Message: "catalog list has no entries"}
)

// Helper Functions

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsCatalog checks if an error is a CatalogError
func IsCatalog(err error) bool {
	var catalogErr *CatalogError
	return errors.As(err, &catalogErr)
}

// IsStage checks if an error is a StageError
func IsStage(err error) bool {
	var stageErr *StageError
	return errors.As(err, &stageErr)
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(field, message string) error {
	return &ConfigurationError{Field: field, Message: message}
}

// NewCatalogError creates a new CatalogError
func NewCatalogError(source, message string) error {
	return &CatalogError{Source: source, Message: message}
}

// NewStageError wraps err with the stage name that produced it
func NewStageError(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
