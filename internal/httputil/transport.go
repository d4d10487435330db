// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP client helpers.
package httputil

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingTransport logs each outbound request at debug level. The query
// string is logged but request headers are not, so the API key never
// reaches the log.
type LoggingTransport struct {
	Base http.RoundTripper
	Log  logrus.FieldLogger
}

// NewLoggingTransport wraps base (http.DefaultTransport when nil).
func NewLoggingTransport(base http.RoundTripper, log logrus.FieldLogger) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggingTransport{Base: base, Log: log}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	fields := logrus.Fields{
		"method": req.Method,
		"host":   req.URL.Host,
		"path":   req.URL.Path,
		"query":  req.URL.RawQuery,
	}

	resp, err := t.Base.RoundTrip(req)
	fields["duration_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		t.Log.WithFields(fields).WithError(err).Debug("outbound request failed")
		return nil, err
	}

	fields["status"] = resp.StatusCode
	t.Log.WithFields(fields).Debug("outbound request")
	return resp, nil
}
