// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

// Package apperrors defines the HTTP-facing error taxonomy.
//
// Every error that reaches a handler is classified with From, which maps
// typed errors to their status code and wraps anything else as a 500
// INTERNAL_ERROR.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error type identifiers sent in the "type" field of error envelopes.
const (
	TypeValidation   = "VALIDATION_ERROR"
	TypeUnauthorized = "UNAUTHORIZED"
	TypeForbidden    = "FORBIDDEN"
	TypeNotFound     = "NOT_FOUND"
	TypeConflict     = "CONFLICT"
	TypeInternal     = "INTERNAL_ERROR"
)

// RedactedMessage replaces the message of unexpected errors in production.
const RedactedMessage = "Internal server error"

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the base error carried through handlers.
//
// IsOperational is true for expected failures (bad input, missing
// resources, upstream refusals) and false for programming errors.
type AppError struct {
	StatusCode    int
	Type          string
	Message       string
	IsOperational bool
	Fields        []FieldError
	cause         error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// New creates an operational AppError with an explicit status and type.
func New(status int, typ, message string) *AppError {
	return &AppError{StatusCode: status, Type: typ, Message: message, IsOperational: true}
}

// Wrap creates a 500 AppError that keeps err as its cause.
func Wrap(err error, message string) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Type:       TypeInternal,
		Message:    message,
		cause:      err,
	}
}

// NewValidation creates a 400 VALIDATION_ERROR with optional field details.
func NewValidation(message string, fields ...FieldError) *AppError {
	e := New(http.StatusBadRequest, TypeValidation, message)
	e.Fields = fields
	return e
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return New(http.StatusUnauthorized, TypeUnauthorized, message)
}

// NewForbidden creates a 403 error.
func NewForbidden(message string) *AppError {
	if message == "" {
		message = "Access denied"
	}
	return New(http.StatusForbidden, TypeForbidden, message)
}

// NewNotFound creates a 404 error for the named resource.
func NewNotFound(resource string) *AppError {
	return New(http.StatusNotFound, TypeNotFound, resource+" not found")
}

// NewConflict creates a 409 error.
func NewConflict(message string) *AppError {
	return New(http.StatusConflict, TypeConflict, message)
}

// From classifies err. Typed errors anywhere in the chain are returned as-is;
// anything else becomes a non-operational 500.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Type:       TypeInternal,
		Message:    err.Error(),
		cause:      err,
	}
}

// Body is the "error" member of the error envelope.
type Body struct {
	Type    string       `json:"type"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ToBody renders e for the client. Messages of non-operational errors are
// replaced with RedactedMessage when production is true.
func (e *AppError) ToBody(production bool) Body {
	msg := e.Message
	if !e.IsOperational && production {
		msg = RedactedMessage
	}
	return Body{Type: e.Type, Message: msg, Errors: e.Fields}
}
