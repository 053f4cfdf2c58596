// Package apperr defines the error taxonomy shared by all request handlers.
// Every error raised by a service is one of three kinds, each carrying the
// HTTP status the transport layer responds with.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for status-code mapping.
type Kind int

const (
	// KindClientInput - a required field is missing or empty (400)
	KindClientInput Kind = iota
	// KindConfiguration - a required credential is absent (500)
	KindConfiguration
	// KindProvider - the outbound model call failed (500)
	KindProvider
)

// Error - typed error carrying the HTTP status for the transport layer
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClientInput - validation failure raised before any network dispatch
func ClientInput(message string) error {
	return &Error{Kind: KindClientInput, Status: http.StatusBadRequest, Message: message}
}

// Configuration - required credential absent, detected at first use
func Configuration(message string) error {
	return &Error{Kind: KindConfiguration, Status: http.StatusInternalServerError, Message: message}
}

// Provider - outbound model call failure, wrapping the underlying cause
func Provider(message string, err error) error {
	return &Error{Kind: KindProvider, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf - the HTTP status carried by err, defaulting to 500
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
