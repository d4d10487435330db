// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the logrus logger shared by the CLI, the
// controller, and the web server.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/newsdesk/pkg/types"
)

// New returns a logger writing to w with the configured level and format.
func New(cfg types.LogConfig, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logger.SetLevel(lvl)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q: use text or json", cfg.Format)
	}
	return logger, nil
}
