// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
)

// Parameter validation errors.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedSort     = errors.New("unsupported sort mode")
)

// FallbackAPIMessage is shown when the API reports an error without a message.
const FallbackAPIMessage = "NewsAPI error"

// TransportError means the request could not complete (DNS, connection,
// TLS, body read).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-success HTTP status. Body holds the raw response text.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// APIError is an application-level failure: the envelope status was not
// "ok", or the article list was missing.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return FallbackAPIMessage
}
