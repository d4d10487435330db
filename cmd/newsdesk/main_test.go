// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/newsdesk/internal/history"
	"github.com/pdiddy/newsdesk/internal/search"
	"github.com/pdiddy/newsdesk/internal/secrets"
	"github.com/pdiddy/newsdesk/pkg/types"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.SetEnvPrefix("NEWSDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(types.DefaultConfig())
	loadedSecrets = nil
	t.Cleanup(viper.Reset)
}

func TestLoadConfigDefaults(t *testing.T) {
	resetViper(t)
	t.Setenv(newsAPIKeyEnv, "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.AllowedOrigins)

	want := types.DefaultConfig()
	want.Server.AllowedOrigins = cfg.Server.AllowedOrigins
	assert.Equal(t, want, cfg)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	resetViper(t)
	t.Setenv("NEWSDESK_NEWS_TIMEOUT", "5s")
	t.Setenv("NEWSDESK_SERVER_ADDR", ":9999")
	t.Setenv("NEWSDESK_LOG_FORMAT", "json")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.News.Timeout)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigAPIKeyPrecedence(t *testing.T) {
	resetViper(t)
	loadedSecrets = map[string]string{secrets.NewsAPIKey: "from-secrets"}
	t.Setenv(newsAPIKeyEnv, "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secrets", cfg.News.APIKey)

	t.Setenv(newsAPIKeyEnv, "from-env")
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.News.APIKey)

	t.Setenv("NEWSDESK_NEWS_API_KEY", "from-config")
	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-config", cfg.News.APIKey)
}

func TestLoadSearchConfigRequiresKey(t *testing.T) {
	resetViper(t)
	t.Setenv(newsAPIKeyEnv, "")

	_, err := loadSearchConfig()
	assert.ErrorIs(t, err, types.ErrMissingAPIKey)
}

func TestOpenJournalDisabled(t *testing.T) {
	j, closeFn, err := openJournal(types.HistoryConfig{})
	require.NoError(t, err)
	assert.Nil(t, j)
	closeFn()
}

func TestOpenJournal(t *testing.T) {
	j, closeFn, err := openJournal(types.HistoryConfig{Path: filepath.Join(t.TempDir(), "h.db")})
	require.NoError(t, err)
	defer closeFn()
	require.NotNil(t, j)
	assert.NoError(t, j.Record(context.Background(), history.Entry{
		RequestedAt: time.Now(), Query: "q", Language: "en", SortBy: "relevancy", Outcome: history.OutcomeOK,
	}))
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printOptions(&buf, false))
	out := buf.String()
	assert.Contains(t, out, "de   German (default)")
	assert.Contains(t, out, "ud   Urdu")
	assert.Contains(t, out, "publishedAt  Newest (default)")

	buf.Reset()
	require.NoError(t, printOptions(&buf, true))
	var got struct {
		Languages []search.Option `json:"languages"`
		SortModes []search.Option `json:"sort_modes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Languages, 14)
	assert.Len(t, got.SortModes, 3)
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Equal(t, "No searches recorded.\n", buf.String())

	buf.Reset()
	printHistory(&buf, []history.Entry{
		{RequestedAt: time.Now(), Query: "climate", Language: "en", SortBy: "relevancy", Outcome: history.OutcomeOK, Shown: 12, TotalResults: 500},
		{RequestedAt: time.Now(), Query: "berlin", Language: "de", SortBy: "publishedAt", Outcome: history.OutcomeError, Error: "HTTP 401: nope"},
	})
	out := buf.String()
	assert.Contains(t, out, "12 of 500")
	assert.Contains(t, out, "error: HTTP 401: nope")
}

type stubBackend struct {
	env *search.Envelope
	err error
}

func (s stubBackend) Search(context.Context, search.Params) (*search.Envelope, error) {
	return s.env, s.err
}

func TestCapturingBackend(t *testing.T) {
	env := &search.Envelope{Status: search.StatusOK, Articles: []types.Article{}}
	b := &capturingBackend{Backend: stubBackend{env: env}}

	p := search.DefaultParams()
	_, err := b.Search(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p, b.params)
	assert.Same(t, env, b.env)

	b.Backend = stubBackend{err: errors.New("down")}
	_, err = b.Search(context.Background(), search.Params{Query: "other"})
	require.Error(t, err)
	assert.Equal(t, p, b.params, "failed search must not replace the captured one")
}
