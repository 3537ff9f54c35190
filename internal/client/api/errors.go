package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/filebox/internal/common"
)

// maxErrorBody bounds how much of an error response is read while looking
// for a JSON message.
const maxErrorBody = 64 << 10

// APIError is a non-2xx response from the server. Message is taken from the
// JSON body's "message" field when present, else synthesized from the HTTP
// status text.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.HTTPStatus, e.Message)
}

// Unwrap maps well-known statuses to the shared sentinels.
func (e *APIError) Unwrap() error {
	switch e.HTTPStatus {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusRequestEntityTooLarge:
		return common.ErrFileTooLarge
	}
	return nil
}

// messageBody is the envelope every JSON response shares.
type messageBody struct {
	Message string `json:"message"`
}

// errorFromResponse turns a non-2xx response into an *APIError.
//
// A 413 is mapped to the fixed file-too-large message without touching the
// body: the server gives no body guarantee for that status. Non-JSON bodies
// never fail the handler; the status text becomes the message.
func errorFromResponse(resp *http.Response) error {
	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return &APIError{
			HTTPStatus: resp.StatusCode,
			Message:    common.ErrFileTooLarge.Error(),
		}
	}

	msg := ""
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err == nil {
			var mb messageBody
			if json.Unmarshal(body, &mb) == nil {
				msg = mb.Message
			}
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
		if msg == "" {
			msg = resp.Status
		}
	}

	return &APIError{HTTPStatus: resp.StatusCode, Message: msg}
}
