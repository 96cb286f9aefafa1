// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides the canonical error type returned by the SkillHub client.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

// Codes produced locally by the client. Codes returned by the service are
// passed through unchanged.
const (
	// CodeTimeout indicates the request deadline elapsed before the transport settled.
	CodeTimeout Code = "TIMEOUT"

	// CodeNetwork indicates a transport-level failure unrelated to the deadline.
	CodeNetwork Code = "NETWORK_ERROR"

	// CodeUnauthorized indicates an operation that requires a token was called without one.
	CodeUnauthorized Code = "UNAUTHORIZED"

	// CodeUnknown indicates a failure of unknown shape.
	CodeUnknown Code = "UNKNOWN"
)

// Error is the normalized failure representation for every client operation.
// Status is 0 for failures that never produced an HTTP response.
type Error struct {
	// Status is the HTTP status code, or 0 for non-HTTP failures.
	Status int
	// Code is the optional machine-readable code. Empty when absent.
	Code Code
	// Message is the human-readable message.
	Message string
	// Details carries optional structured details from the service.
	Details map[string]any
	// RequestID is the service request identifier, when the service sent one.
	RequestID string

	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is() and errors.As() compatibility.
func (e *Error) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int {
	return e.Status
}

// New creates an error with the given status, code and message.
func New(status int, code Code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Wrap creates an error with the given status and code whose message is
// copied from err. The original error stays reachable through Unwrap.
// If err is nil, Wrap returns nil.
func Wrap(err error, status int, code Code) *Error {
	if err == nil {
		return nil
	}
	return &Error{Status: status, Code: code, Message: err.Error(), err: err}
}

// Timeout returns the error used when the request deadline elapses.
func Timeout() *Error {
	return New(http.StatusRequestTimeout, CodeTimeout, "Request timeout")
}

// Network returns the error used for transport failures.
func Network(err error) *Error {
	return Wrap(err, 0, CodeNetwork)
}

// Unauthorized returns the error used when a token-gated operation has no token.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
}

// Unknown returns the error used for failures that match no other kind.
func Unknown(err error) *Error {
	e := New(0, CodeUnknown, "Unknown error")
	if err != nil {
		e.Message = fmt.Sprintf("Unknown error: %v", err)
		e.err = err
	}
	return e
}

// FromEnvelope builds an error for a non-2xx response. env may be nil when the
// body could not be decoded; the message then falls back to a generic one
// that names the status.
func FromEnvelope(status int, env *Envelope) *Error {
	e := &Error{
		Status:  status,
		Message: fmt.Sprintf("Request failed with status %d", status),
	}
	if env == nil {
		return e
	}
	e.RequestID = env.RequestID
	if env.Error == nil {
		return e
	}
	e.Code = Code(env.Error.Code)
	e.Details = env.Error.Details
	if env.Error.Message != "" {
		e.Message = env.Error.Message
	}
	return e
}

// Status extracts the HTTP status from an error chain.
// It returns http.StatusOK (200) for a nil error and 0 when no *Error is found.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}

	return 0
}

// CodeOf extracts the machine-readable code from an error chain.
// It returns an empty Code when err is nil or carries no *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether the error chain carries an *Error with the given code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
