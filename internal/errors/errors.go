package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a constraint violated before any gateway call.
// It never results in network traffic.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// TransportError represents a network or timeout failure talking to the
// catalog gateway. The request may or may not have been applied server-side,
// so callers must refresh and trust the refreshed state over this error.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog transport error during %s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// GatewayRejectedError represents an explicit non-success status from the
// catalog gateway. Local state is left untouched when this is returned.
type GatewayRejectedError struct {
	Operation string
	Message   string
}

func (e *GatewayRejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog gateway rejected %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("catalog gateway rejected %s", e.Operation)
}

// NotFoundError represents an error when an entity is not found in the
// current snapshot.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrPilotNotFound   = &NotFoundError{Entity: "pilot"}
	ErrDroneNotFound   = &NotFoundError{Entity: "drone"}
	ErrMissionNotFound = &NotFoundError{Entity: "mission"}
	ErrGroupNotFound   = &NotFoundError{Entity: "mission group"}
)

// Session Errors
var (
	ErrNoActiveSession = errors.New("no active date session, load a date first")
	ErrStaleSnapshot   = errors.New("snapshot belongs to a date that is no longer active")
	ErrDateMismatch    = errors.New("requested date does not match the active session")
)

// Business Logic Errors
var (
	ErrEmptyMissionSelection = errors.New("no missions selected")
	ErrMissionAlreadyGrouped = errors.New("mission already belongs to a group")
	ErrResourceNotInTeam     = errors.New("resource does not belong to the named team")
	ErrInvalidDateFormat     = errors.New("date must be in YYYY-MM-DD format")
	ErrUnknownResourceKind   = errors.New("resource kind must be pilot or drone")
	ErrUnknownSelectionSet   = errors.New("unknown selection set")
)

// Helper Functions

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsGatewayRejected checks if an error is a GatewayRejectedError
func IsGatewayRejected(err error) bool {
	var rejectedErr *GatewayRejectedError
	return errors.As(err, &rejectedErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTransportError wraps a transport-level failure for a gateway operation
func NewTransportError(operation string, err error) error {
	return &TransportError{Operation: operation, Err: err}
}

// NewGatewayRejectedError creates an error for an explicit gateway rejection
func NewGatewayRejectedError(operation, message string) error {
	return &GatewayRejectedError{Operation: operation, Message: message}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}
