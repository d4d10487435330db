// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/newsdesk/internal/httputil"
	"github.com/pdiddy/newsdesk/pkg/types"
)

// NewsAPIBackend queries the NewsAPI "everything" endpoint.
type NewsAPIBackend struct {
	Client    *http.Client
	APIKey    string
	Endpoint  string
	UserAgent string
}

// NewNewsAPIBackend builds a backend from configuration. It fails with
// types.ErrMissingAPIKey when no key is configured.
func NewNewsAPIBackend(cfg types.NewsConfig, log logrus.FieldLogger) (*NewsAPIBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &NewsAPIBackend{
		Client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: httputil.NewLoggingTransport(nil, log),
		},
		APIKey:    cfg.APIKey,
		Endpoint:  cfg.Endpoint,
		UserAgent: cfg.UserAgent,
	}, nil
}

// Search performs one GET request and returns the validated envelope.
// Errors are *TransportError, *HTTPError, or *APIError; a body that is
// not valid JSON yields a wrapped decode error.
func (b *NewsAPIBackend) Search(ctx context.Context, p Params) (*Envelope, error) {
	reqURL := b.Endpoint + "?" + p.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Api-Key", b.APIKey)
	req.Header.Set("Accept", "application/json")
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing NewsAPI response: %w", err)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}
