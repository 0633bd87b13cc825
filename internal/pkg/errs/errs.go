package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for every error type in this
// package. Callers classify failures with errors.Is against these values.
var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrObjectNotFound         = errors.New("object not found")
	ErrServiceUnavailable     = errors.New("service is not orderable")
	ErrBandwidthOutOfRange    = errors.New("bandwidth is out of range")
	ErrAccessForbidden        = errors.New("access forbidden")
	ErrInvalidState           = errors.New("invalid state")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// sanitize flattens multi-line values so a single error renders on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), sanitize(e.ParamName), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced entity does not exist in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named reference.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ServiceUnavailableError indicates that a catalog service is not currently orderable.
type ServiceUnavailableError struct {
	ServiceID any
	Cause     error
}

// NewServiceUnavailableError creates a ServiceUnavailableError for the given catalog service.
func NewServiceUnavailableError(serviceID any) *ServiceUnavailableError {
	return &ServiceUnavailableError{ServiceID: serviceID}
}

func (e *ServiceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrServiceUnavailable, sanitize(e.ServiceID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrServiceUnavailable, sanitize(e.ServiceID))
}

func (e *ServiceUnavailableError) Unwrap() error {
	return ErrServiceUnavailable
}

// BandwidthOutOfRangeError indicates that a requested bandwidth fails the
// catalog service's adjustable range. A nil bandwidth is reported as "none".
type BandwidthOutOfRangeError struct {
	Bandwidth any
	Min       any
	Max       any
}

// NewBandwidthOutOfRangeError creates a BandwidthOutOfRangeError with the
// requested value and the service's bounds. Unset bounds may be passed as nil.
func NewBandwidthOutOfRangeError(bandwidth, minValue, maxValue any) *BandwidthOutOfRangeError {
	return &BandwidthOutOfRangeError{Bandwidth: bandwidth, Min: minValue, Max: maxValue}
}

func (e *BandwidthOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: requested %s, min is %s, max is %s",
		ErrBandwidthOutOfRange, sanitize(e.Bandwidth), sanitize(e.Min), sanitize(e.Max))
}

func (e *BandwidthOutOfRangeError) Unwrap() error {
	return ErrBandwidthOutOfRange
}

// AccessForbiddenError indicates a cross-company access attempt: the entity
// exists but is owned by a different company than the caller's.
type AccessForbiddenError struct {
	Resource string
	ID       any
}

// NewAccessForbiddenError creates an AccessForbiddenError for the named resource.
func NewAccessForbiddenError(resource string, id any) *AccessForbiddenError {
	return &AccessForbiddenError{Resource: resource, ID: id}
}

func (e *AccessForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s %s belongs to another company",
		ErrAccessForbidden, sanitize(e.Resource), sanitize(e.ID))
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}

// InvalidStateError indicates that an explicitly gated transition was
// attempted from a state that does not allow it.
type InvalidStateError struct {
	Entity string
	Action string
	State  string
}

// NewInvalidStateError creates an InvalidStateError describing the rejected transition.
func NewInvalidStateError(entity, action, state string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Action: action, State: state}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in state %s",
		ErrInvalidState, sanitize(e.Action), sanitize(e.Entity), sanitize(e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ConcurrentModificationError indicates that an optimistic-concurrency update
// lost the race: the entity changed between read and write.
type ConcurrentModificationError struct {
	Entity string
	ID     any
}

// NewConcurrentModificationError creates a ConcurrentModificationError for the contended entity.
func NewConcurrentModificationError(entity string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{Entity: entity, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s was modified concurrently",
		ErrConcurrentModification, sanitize(e.Entity), sanitize(e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
