// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/newsdesk/internal/controller"
	"github.com/pdiddy/newsdesk/internal/history"
	"github.com/pdiddy/newsdesk/internal/secrets"
	"github.com/pdiddy/newsdesk/pkg/types"
)

// newsAPIKeyEnv is the conventional environment variable for the key.
const newsAPIKeyEnv = "NEWS_API_KEY"

// setDefaults registers every configuration key with viper so environment
// variables bind even when no config file mentions the key.
func setDefaults(d types.Config) {
	viper.SetDefault("news.api_key", "")
	viper.SetDefault("news.endpoint", d.News.Endpoint)
	viper.SetDefault("news.timeout", d.News.Timeout)
	viper.SetDefault("news.user_agent", d.News.UserAgent)
	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("server.allowed_origins", []string{})
	viper.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	viper.SetDefault("history.path", d.History.Path)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
}

// loadConfig decodes the viper settings into a Config and resolves the
// API key from its fallback sources.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.News.APIKey = secrets.First(
		cfg.News.APIKey,
		os.Getenv(newsAPIKeyEnv),
		loadedSecrets[secrets.NewsAPIKey],
	)
	return cfg, nil
}

// loadSearchConfig is loadConfig for commands that call the news API; a
// missing key fails here, before any request is made.
func loadSearchConfig() (types.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openJournal opens the search history. An empty path disables it and
// returns a nil journal and a no-op close.
func openJournal(cfg types.HistoryConfig) (controller.Journal, func(), error) {
	if cfg.Path == "" {
		return nil, func() {}, nil
	}
	store, err := history.Open(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("closing history")
		}
	}, nil
}
