package api

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents a resource not found error with contextual information.
// It is the ServiceNotFound kind of the runtime's error taxonomy and is
// recoverable: callers asking for an unknown service get it back unchanged.
type NotFoundError struct {
	// ResourceType categorizes the type of resource that was not found
	// (e.g., "service", "adapter", "feature")
	ResourceType string

	// ResourceName is the specific identifier of the resource that was not found
	ResourceName string

	// Message provides a custom error message if the default format is insufficient
	Message string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ResourceName)
}

// IsNotFound checks if an error is a NotFoundError using error unwrapping.
//
// Example:
//
//	entry, err := registry.Get("docs")
//	if api.IsNotFound(err) {
//	    // feature disabled
//	}
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewNotFoundError creates a new NotFoundError with the specified resource type and name.
func NewNotFoundError(resourceType, resourceName string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceName: resourceName,
	}
}

// Specific NotFoundError constructors for each resource type.
var (
	// NewServiceNotFoundError creates a service not found error.
	NewServiceNotFoundError = func(name string) *NotFoundError {
		return NewNotFoundError("service", name)
	}

	// NewAdapterNotFoundError creates an adapter not found error.
	NewAdapterNotFoundError = func(name string) *NotFoundError {
		return NewNotFoundError("adapter", name)
	}
)

// CircularDependencyError is returned when a dependency graph contains a cycle.
// Chain lists the cycle starting and ending at the same service, e.g.
// ["a", "b", "c", "a"]. It is fatal to any startup sequencing that needs an order.
type CircularDependencyError struct {
	Chain []string
}

// Error implements the error interface for CircularDependencyError.
func (e *CircularDependencyError) Error() string {
	if len(e.Chain) == 0 {
		return "circular dependency detected"
	}
	return fmt.Sprintf("circular dependency detected: %s", e.ChainString())
}

// ChainString renders the cycle as "a -> b -> c -> a".
func (e *CircularDependencyError) ChainString() string {
	return strings.Join(e.Chain, " -> ")
}

// IsCircularDependency reports whether err is or wraps a CircularDependencyError.
func IsCircularDependency(err error) bool {
	var cycleErr *CircularDependencyError
	return errors.As(err, &cycleErr)
}

// MissingDependenciesError is returned when a graph references dependencies
// that are not themselves nodes of the graph.
type MissingDependenciesError struct {
	// Missing is sorted and free of duplicates.
	Missing []string
}

// Error implements the error interface for MissingDependenciesError.
func (e *MissingDependenciesError) Error() string {
	return fmt.Sprintf("missing dependencies: %s", strings.Join(e.Missing, ", "))
}

// IsMissingDependencies reports whether err is or wraps a MissingDependenciesError.
func IsMissingDependencies(err error) bool {
	var missingErr *MissingDependenciesError
	return errors.As(err, &missingErr)
}

// AlreadyRegisteredError is returned by Register when the name is taken.
// Use Replace for an explicit overwrite.
type AlreadyRegisteredError struct {
	Name string
}

// Error implements the error interface for AlreadyRegisteredError.
func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("service %s already registered", e.Name)
}

// IsAlreadyRegistered reports whether err is or wraps an AlreadyRegisteredError.
func IsAlreadyRegistered(err error) bool {
	var dupErr *AlreadyRegisteredError
	return errors.As(err, &dupErr)
}

// TypeMismatchError is returned by typed lookups when the stored service is
// not of the requested type.
type TypeMismatchError struct {
	Name string
	Want string
	Got  string
}

// Error implements the error interface for TypeMismatchError.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("service %s has type %s, requested %s", e.Name, e.Got, e.Want)
}

// IsTypeMismatch reports whether err is or wraps a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	var typeErr *TypeMismatchError
	return errors.As(err, &typeErr)
}

// ConfigureError wraps the failure of a single service's configuration.
// It is non-fatal: the service stays registered in its unconfigured state.
type ConfigureError struct {
	Service string
	Err     error
}

// Error implements the error interface for ConfigureError.
func (e *ConfigureError) Error() string {
	return fmt.Sprintf("failed to configure service %s: %v", e.Service, e.Err)
}

// Unwrap returns the underlying configuration failure.
func (e *ConfigureError) Unwrap() error {
	return e.Err
}

// Common errors for API operations.
var (
	// ErrDispatcherNotRegistered indicates no dispatcher was registered with the locator
	ErrDispatcherNotRegistered = errors.New("dispatcher not registered")

	// ErrServiceRegistryNotRegistered indicates no service registry was registered with the locator
	ErrServiceRegistryNotRegistered = errors.New("service registry handler not registered")
)
