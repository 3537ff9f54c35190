// Package api implements the HTTP client for the filebox backend.
//
// Every operation resolves either to a parsed success body or to an error:
// *APIError for responses the server produced, or a wrapped
// common.ErrUnavailable when the request never reached the server. APIError
// unwraps to the sentinel errors in internal/common so callers can
// errors.Is on authorization failures without inspecting status codes.
package api
