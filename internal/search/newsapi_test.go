// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/newsdesk/pkg/types"
)

// --- Mock NewsAPI server ---

const sampleNewsJSON = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {
      "source": {"id": "the-verge", "name": "The Verge"},
      "author": "Jane Doe",
      "title": "Heatwave breaks records",
      "description": "Temperatures climbed past 40°C across the region.",
      "url": "https://example.com/heatwave",
      "urlToImage": "https://example.com/heatwave.jpg",
      "publishedAt": "2026-07-01T09:00:00Z",
      "content": "Temperatures climbed..."
    },
    {
      "source": {"id": null, "name": "Local Paper"},
      "author": null,
      "title": "Glaciers retreat",
      "description": null,
      "url": "https://example.com/glaciers",
      "urlToImage": null,
      "publishedAt": "2026-06-30T18:30:00Z",
      "content": null
    }
  ]
}`

type recordedRequest struct {
	path   string
	query  string
	apiKey string
}

func newsTestServer(statusCode int, body string, rec *recordedRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rec != nil {
			rec.path = r.URL.Path
			rec.query = r.URL.RawQuery
			rec.apiKey = r.Header.Get("X-Api-Key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

func testBackend(ts *httptest.Server) *NewsAPIBackend {
	return &NewsAPIBackend{
		Client:    ts.Client(),
		APIKey:    "test-key",
		Endpoint:  ts.URL + "/v2/everything",
		UserAgent: "newsdesk-test/0.1",
	}
}

func mustParams(t *testing.T, q, lang, sortBy string) Params {
	t.Helper()
	p, err := NewParams(q, lang, sortBy)
	require.NoError(t, err)
	return p
}

// --- NewsAPIBackend.Search ---

func TestNewsAPIBackendSearch(t *testing.T) {
	var rec recordedRequest
	ts := newsTestServer(http.StatusOK, sampleNewsJSON, &rec)
	defer ts.Close()

	env, err := testBackend(ts).Search(context.Background(), mustParams(t, "climate", "en", "publishedAt"))
	require.NoError(t, err)

	assert.Equal(t, "/v2/everything", rec.path)
	assert.Equal(t, "language=en&pageSize=12&q=climate&sortBy=publishedAt", rec.query)
	assert.Equal(t, "test-key", rec.apiKey)

	require.Len(t, env.Articles, 2)
	assert.Equal(t, 2, env.Total())

	a0 := env.Articles[0]
	assert.Equal(t, "Heatwave breaks records", a0.Title)
	assert.Equal(t, "Temperatures climbed past 40°C across the region.", a0.DescriptionText())
	assert.Equal(t, "https://example.com/heatwave.jpg", a0.ImageURL())
	require.NotNil(t, a0.Source.ID)
	assert.Equal(t, "the-verge", *a0.Source.ID)
	assert.Equal(t, "The Verge", a0.Source.Name)

	a1 := env.Articles[1]
	assert.Equal(t, "Glaciers retreat", a1.Title)
	assert.Nil(t, a1.Description)
	assert.Nil(t, a1.URLToImage)
	assert.Nil(t, a1.Source.ID)
	assert.Equal(t, "Local Paper", a1.Source.Name)
}

func TestNewsAPIBackendEmptyArticleList(t *testing.T) {
	ts := newsTestServer(http.StatusOK, `{"status":"ok","totalResults":0,"articles":[]}`, nil)
	defer ts.Close()

	env, err := testBackend(ts).Search(context.Background(), DefaultParams())
	require.NoError(t, err)
	assert.NotNil(t, env.Articles)
	assert.Empty(t, env.Articles)
}

func TestNewsAPIBackendHTTPError(t *testing.T) {
	body := `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid or incorrect."}`
	ts := newsTestServer(http.StatusUnauthorized, body, nil)
	defer ts.Close()

	_, err := testBackend(ts).Search(context.Background(), DefaultParams())
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, body, httpErr.Body)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), body)
}

func TestNewsAPIBackendAPIErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"status error with message", `{"status":"error","code":"rateLimited","message":"You have made too many requests."}`, "You have made too many requests."},
		{"status error without message", `{"status":"error"}`, "NewsAPI error"},
		{"ok without articles", `{"status":"ok","totalResults":5}`, "NewsAPI error"},
		{"ok with null articles", `{"status":"ok","articles":null}`, "NewsAPI error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newsTestServer(http.StatusOK, tt.body, nil)
			defer ts.Close()

			_, err := testBackend(ts).Search(context.Background(), DefaultParams())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestNewsAPIBackendMalformedJSON(t *testing.T) {
	ts := newsTestServer(http.StatusOK, `{"status": "ok", "articles": [`, nil)
	defer ts.Close()

	_, err := testBackend(ts).Search(context.Background(), DefaultParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing NewsAPI response")
}

func TestNewsAPIBackendTransportError(t *testing.T) {
	ts := newsTestServer(http.StatusOK, sampleNewsJSON, nil)
	b := testBackend(ts)
	ts.Close()

	_, err := b.Search(context.Background(), DefaultParams())
	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Contains(t, err.Error(), "request failed")
}

func TestNewsAPIBackendContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := testBackend(ts).Search(ctx, DefaultParams())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

// --- NewNewsAPIBackend ---

func TestNewNewsAPIBackend(t *testing.T) {
	cfg := types.DefaultConfig().News

	_, err := NewNewsAPIBackend(cfg, logrus.New())
	assert.ErrorIs(t, err, types.ErrMissingAPIKey)

	cfg.APIKey = "k"
	b, err := NewNewsAPIBackend(cfg, logrus.New())
	require.NoError(t, err)
	assert.Equal(t, "k", b.APIKey)
	assert.Equal(t, types.DefaultEndpoint, b.Endpoint)
	assert.Equal(t, cfg.Timeout, b.Client.Timeout)
}
