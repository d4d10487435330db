// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigHasNoKey(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.News.APIKey)
	assert.Equal(t, DefaultEndpoint, cfg.News.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.News.Timeout)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty endpoint", func(c *Config) { c.News.Endpoint = "" }, "endpoint is empty"},
		{"negative timeout", func(c *Config) { c.News.Timeout = -time.Second }, "must not be negative"},
		{"zero timeout allowed", func(c *Config) { c.News.Timeout = 0 }, ""},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "unsupported log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.News.APIKey = "k"
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestArticleOptionalFields(t *testing.T) {
	var a Article
	assert.Equal(t, "", a.DescriptionText())
	assert.Equal(t, "", a.ImageURL())

	desc, img := "teaser", "https://example.com/i.jpg"
	a.Description, a.URLToImage = &desc, &img
	assert.Equal(t, "teaser", a.DescriptionText())
	assert.Equal(t, img, a.ImageURL())
}
