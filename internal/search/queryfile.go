// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/newsdesk/pkg/types"
)

// QueryFile is the on-disk export of one search: its parameters, the
// articles it returned, and a summary. Only the parameters are ever read
// back, to run the same search again against the live API.
type QueryFile struct {
	Query    QueryParams     `yaml:"query"`
	Articles []types.Article `yaml:"articles"`
	Summary  QuerySummary    `yaml:"summary"`
}

// QueryParams stores the search parameters in a serializable form.
type QueryParams struct {
	Query    string `yaml:"q"`
	Language string `yaml:"language,omitempty"`
	SortBy   string `yaml:"sort_by,omitempty"`
}

// QuerySummary stores result counts and a timestamp.
type QuerySummary struct {
	TotalResults int       `yaml:"total_results"`
	Shown        int       `yaml:"shown"`
	Timestamp    time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the parameters and the envelope's articles as YAML.
func WriteQueryFile(path string, p Params, env *Envelope) error {
	qf := QueryFile{
		Query: QueryParams{
			Query:    p.Query,
			Language: p.Language,
			SortBy:   p.SortBy,
		},
		Articles: env.Articles,
		Summary: QuerySummary{
			TotalResults: env.Total(),
			Shown:        len(env.Articles),
			Timestamp:    time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToParams converts stored parameters back into Params. Missing language
// or sort fall back to the selector defaults.
func (q QueryParams) ToParams() (Params, error) {
	lang := q.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = DefaultSort
	}
	return NewParams(q.Query, lang, sortBy)
}
