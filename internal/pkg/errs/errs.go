package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrObjectNotFound         = errors.New("object not found")
	ErrObjectAlreadyExists    = errors.New("object already exists")
	ErrStateIsInvalid         = errors.New("state is invalid")
	ErrResourceIsUnavailable  = errors.New("resource is unavailable")
	ErrAuthenticationMismatch = errors.New("authentication mismatch")
)

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// StateIsInvalidError reports an operation attempted from a state that does not allow it.
type StateIsInvalidError struct {
	ParamName string
	State     string
	Action    string
	Cause     error
}

func NewStateIsInvalidError(paramName, state, action string) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName, State: state, Action: action}
}

func NewStateIsInvalidErrorWithCause(paramName, state, action string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName, State: state, Action: action, Cause: cause}
}

func (e *StateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, cannot %s", ErrStateIsInvalid, e.ParamName, e.State, e.Action)
	return withCause(msg, e.Cause)
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// ResourceIsUnavailableError reports a driver or vehicle that cannot be reserved.
// An empty ID means no resource of that kind is free at all.
type ResourceIsUnavailableError struct {
	ParamName string
	ID        string
	Cause     error
}

func NewResourceIsUnavailableError(paramName, id string) *ResourceIsUnavailableError {
	return &ResourceIsUnavailableError{ParamName: paramName, ID: id}
}

func (e *ResourceIsUnavailableError) Error() string {
	if e.ID == "" {
		return withCause(fmt.Sprintf("%s: no free %s", ErrResourceIsUnavailable, e.ParamName), e.Cause)
	}
	return withCause(fmt.Sprintf("%s: %s %s", ErrResourceIsUnavailable, e.ParamName, e.ID), e.Cause)
}

func (e *ResourceIsUnavailableError) Unwrap() error {
	return ErrResourceIsUnavailable
}

type AuthenticationMismatchError struct {
	ParamName string
	Cause     error
}

func NewAuthenticationMismatchError(paramName string) *AuthenticationMismatchError {
	return &AuthenticationMismatchError{ParamName: paramName}
}

func (e *AuthenticationMismatchError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrAuthenticationMismatch, e.ParamName), e.Cause)
}

func (e *AuthenticationMismatchError) Unwrap() error {
	return ErrAuthenticationMismatch
}
