package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or catalog validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ContractError reports a malformed component tree or a misuse of the hook
// runtime. Layout and hook code panics with a *ContractError; it is never
// returned from a data path.
type ContractError struct {
	Component string
	Message   string
}

// NewContractError constructs a ContractError.
func NewContractError(component, message string) *ContractError {
	return &ContractError{Component: component, Message: message}
}

func (e *ContractError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("contract violation [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("contract violation: %s", e.Message)
}

// FetchError wraps a failed query or mutation for the given cache key.
type FetchError struct {
	Key string
	Err error
}

// NewFetchError constructs a FetchError.
func NewFetchError(key string, err error) error {
	return &FetchError{Key: key, Err: err}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("fetch error for %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("fetch error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RouteError indicates navigation to a route that has no registered page.
type RouteError struct {
	Route   string
	Message string
}

// NewRouteError constructs a RouteError.
func NewRouteError(route, message string) error {
	return &RouteError{Route: route, Message: message}
}

func (e *RouteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("route error [%s]: %s", e.Route, e.Message)
}
