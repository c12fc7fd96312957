// Package common defines sentinel errors shared by the repositories, services
// and the conversational engine. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrActiveApplicationExists is returned by application creation when the
	// user already owns a pending or approved application.
	ErrActiveApplicationExists = errors.New("active application already exists")

	// Service-level errors.
	ErrorInternal       = errors.New("internal error")
	ErrorUnauthorized   = errors.New("unauthorized")
	ErrAlreadyProcessed = errors.New("application already processed")

	// Engine errors.
	ErrIllegalTransition = errors.New("action not allowed in current state")
	ErrMalformedAction   = errors.New("malformed action")
	ErrorValidation      = errors.New("validation error")
)
