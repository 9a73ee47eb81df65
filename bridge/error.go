package bridge

import (
	"errors"
	"fmt"
)

const (
	// CodeUnknownMethod rejects a call to a method that was never registered.
	CodeUnknownMethod = "UNKNOWN_METHOD"
	// CodeHandlerError rejects a call whose handler failed or panicked.
	CodeHandlerError = "HANDLER_ERROR"
)

var errInvalidRegistration = errors.New("invalid registration")

// Error is the normalized rejection delivered to the host.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Reason carries a handler supplied failure reason, e.g. ERR_FILE_NOT_EXIST.
	Reason string `json:"reason,omitempty"`
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return e.Code + " (" + e.Reason + "): " + e.Message
	}
	return e.Code + ": " + e.Message
}

// NewError creates a rejection
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Reasoner is implemented by handler errors that carry a failure reason.
type Reasoner interface {
	Reason() string
}

// DuplicateMethodError is returned when a method name is registered twice.
type DuplicateMethodError struct {
	Module string
	Method string
}

func (e *DuplicateMethodError) Error() string {
	return fmt.Sprintf("%v: method %v already registered", e.Module, e.Method)
}

// UnknownMethodError is returned when an invoked method is not registered.
type UnknownMethodError struct {
	Module string
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("%v: method %v not found", e.Module, e.Method)
}

// Rejection returns the normalized form of e
func (e *UnknownMethodError) Rejection() *Error {
	return NewError(CodeUnknownMethod, e.Error())
}

// normalize converts any handler error into a HANDLER_ERROR rejection.
func normalize(err error) *Error {
	ret := NewError(CodeHandlerError, err.Error())
	var rejection *Error
	if errors.As(err, &rejection) {
		ret.Message = rejection.Message
		ret.Reason = rejection.Reason
		return ret
	}
	var reasoner Reasoner
	if errors.As(err, &reasoner) {
		ret.Reason = reasoner.Reason()
	}
	return ret
}
