// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds NewsAPI search parameters, performs the single
// outbound request for a submission, and validates the response envelope.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/newsdesk/pkg/types"
)

// DefaultQuery replaces a blank query. NewsAPI requires q to be non-empty.
const DefaultQuery = "Berlin"

// PageSize is the fixed number of articles requested per search.
const PageSize = 12

// DefaultLanguage and DefaultSort are the preselected values of the
// language and sort selectors.
const (
	DefaultLanguage = "de"
	DefaultSort     = SortPublishedAt
)

// Sort modes accepted by the sortBy parameter.
const (
	SortRelevancy   = "relevancy"
	SortPopularity  = "popularity"
	SortPublishedAt = "publishedAt"
)

// Option is one entry of a selector: the wire value and its display label.
type Option struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

// Languages lists the language codes NewsAPI supports, in display order.
var Languages = []Option{
	{Code: "ar", Label: "Arabic"},
	{Code: "de", Label: "German"},
	{Code: "en", Label: "English"},
	{Code: "es", Label: "Spanish"},
	{Code: "fr", Label: "French"},
	{Code: "he", Label: "Hebrew"},
	{Code: "it", Label: "Italian"},
	{Code: "nl", Label: "Dutch"},
	{Code: "no", Label: "Norwegian"},
	{Code: "pt", Label: "Portuguese"},
	{Code: "ru", Label: "Russian"},
	{Code: "sv", Label: "Swedish"},
	{Code: "ud", Label: "Urdu"}, // NewsAPI uses "ud", not "ur"
	{Code: "zh", Label: "Chinese"},
}

// SortModes lists the accepted sort modes, in display order.
var SortModes = []Option{
	{Code: SortPublishedAt, Label: "Newest"},
	{Code: SortRelevancy, Label: "Relevance"},
	{Code: SortPopularity, Label: "Popularity"},
}

// Backend performs one search against a news API.
type Backend interface {
	Search(ctx context.Context, p Params) (*Envelope, error)
}

// Params holds the parameters of one search. Build it with NewParams; a
// Params value is never modified after construction.
type Params struct {
	Query    string
	Language string
	SortBy   string
	PageSize int
}

// NewParams trims the query, substitutes DefaultQuery when it is blank,
// and checks language and sortBy against the supported values.
func NewParams(query, language, sortBy string) (Params, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		q = DefaultQuery
	}
	if !IsLanguage(language) {
		return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	if !IsSortMode(sortBy) {
		return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedSort, sortBy)
	}
	return Params{
		Query:    q,
		Language: language,
		SortBy:   sortBy,
		PageSize: PageSize,
	}, nil
}

// DefaultParams returns the parameters of the startup search.
func DefaultParams() Params {
	return Params{
		Query:    DefaultQuery,
		Language: DefaultLanguage,
		SortBy:   DefaultSort,
		PageSize: PageSize,
	}
}

// Values encodes the parameters as NewsAPI query parameters.
func (p Params) Values() url.Values {
	return url.Values{
		"q":        {p.Query},
		"language": {p.Language},
		"sortBy":   {p.SortBy},
		"pageSize": {strconv.Itoa(p.PageSize)},
	}
}

// IsLanguage reports whether code is a supported language code.
func IsLanguage(code string) bool {
	return hasOption(Languages, code)
}

// IsSortMode reports whether mode is a supported sort mode.
func IsSortMode(mode string) bool {
	return hasOption(SortModes, mode)
}

func hasOption(opts []Option, code string) bool {
	for _, o := range opts {
		if o.Code == code {
			return true
		}
	}
	return false
}

// Envelope is the top-level NewsAPI response.
type Envelope struct {
	Status       string `json:"status" yaml:"status"`
	TotalResults *int   `json:"totalResults,omitempty" yaml:"total_results,omitempty"`

	// Articles is nil when the field is missing or null and non-nil
	// (possibly empty) when the API sent a list.
	Articles []types.Article `json:"articles,omitempty" yaml:"articles,omitempty"`

	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// StatusOK is the envelope status of a successful search.
const StatusOK = "ok"

// Validate enforces the envelope invariant: a successful status must come
// with an article list. Any other shape is an *APIError.
func (e *Envelope) Validate() error {
	if e.Status != StatusOK || e.Articles == nil {
		return &APIError{Code: e.Code, Message: e.Message}
	}
	return nil
}

// Total returns totalResults, or the number of articles when the API did
// not send a total.
func (e *Envelope) Total() int {
	if e.TotalResults != nil {
		return *e.TotalResults
	}
	return len(e.Articles)
}
