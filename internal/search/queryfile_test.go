// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/newsdesk/pkg/types"
)

func TestQueryFileRoundTripParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climate.yaml")
	desc := "Temperatures climbed."
	total := 40
	env := &Envelope{
		Status:       StatusOK,
		TotalResults: &total,
		Articles: []types.Article{
			{Title: "Heatwave", Description: &desc, URL: "https://example.com/a", Source: types.Source{Name: "Example"}},
		},
	}

	p := mustParams(t, "climate", "en", SortPopularity)
	require.NoError(t, WriteQueryFile(path, p, env))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, 40, qf.Summary.TotalResults)
	assert.Equal(t, 1, qf.Summary.Shown)
	assert.False(t, qf.Summary.Timestamp.IsZero())
	require.Len(t, qf.Articles, 1)
	assert.Equal(t, "Heatwave", qf.Articles[0].Title)

	got, err := qf.Query.ToParams()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestQueryParamsToParamsDefaults(t *testing.T) {
	got, err := QueryParams{Query: "  "}.ToParams()
	require.NoError(t, err)
	assert.Equal(t, DefaultParams(), got)
}

func TestQueryParamsToParamsInvalid(t *testing.T) {
	_, err := QueryParams{Query: "x", Language: "xx"}.ToParams()
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestReadQueryFileErrors(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading query file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("query: [unclosed"), 0o644))
	_, err = ReadQueryFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing query file")
}
