// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingAPIKey is returned when no NewsAPI key is configured. The key
// must be supplied explicitly; there is no placeholder fallback.
var ErrMissingAPIKey = errors.New("news API key is not configured: set news.api_key, NEWSDESK_NEWS_API_KEY, NEWS_API_KEY, or .secrets/newsapi-api-key")

// DefaultEndpoint is the NewsAPI "everything" search endpoint.
const DefaultEndpoint = "https://newsapi.org/v2/everything"

// HTTPConfig holds shared settings for outbound HTTP requests.
type HTTPConfig struct {
	// Timeout is the HTTP client timeout. Zero means no timeout, which
	// leaves a hung request in the loading state indefinitely.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "newsdesk/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// NewsConfig holds settings for the news search backend.
type NewsConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIKey is sent in the X-Api-Key header of every request.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Endpoint is the search URL (default DefaultEndpoint).
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
}

// ServerConfig holds settings for the web surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// AllowedOrigins lists the origins allowed to call /api/search from a
	// browser. Empty disables cross-origin access.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" mapstructure:"allowed_origins"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// HistoryConfig holds settings for the search journal.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables the journal.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	// Level is a logrus level name (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all newsdesk settings.
type Config struct {
	News    NewsConfig    `json:"news" yaml:"news" mapstructure:"news"`
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the settings used when nothing is configured.
// The API key is deliberately left empty.
func DefaultConfig() Config {
	return Config{
		News: NewsConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "newsdesk/0.1",
			},
			Endpoint: DefaultEndpoint,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		History: HistoryConfig{
			Path: "newsdesk.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the settings needed to talk to the news API.
func (c NewsConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Endpoint == "" {
		return fmt.Errorf("news endpoint is empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("news timeout must not be negative, got %v", c.Timeout)
	}
	return nil
}

// Validate checks the full configuration.
func (c Config) Validate() error {
	if err := c.News.Validate(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q: use text or json", c.Log.Format)
	}
	return nil
}
