// Package common defines shared constants and sentinel errors used across
// the filebox client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Auth errors. Any authenticated API call that comes back 401-class
	// maps to ErrUnauthorized; the caller is expected to clear the
	// session and drop to the anonymous state.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404 responses (unknown file id or download link).
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrFileTooLarge maps the upload 413 response, which carries no
	// guaranteed body.
	ErrFileTooLarge = errors.New("file too large")
)
