// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package controller implements the search-and-render controller: it turns
// one form submission into one search request and projects the outcome onto
// a view's status region and result area.
package controller

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/newsdesk/internal/history"
	"github.com/pdiddy/newsdesk/internal/render"
	"github.com/pdiddy/newsdesk/internal/search"
)

// LoadingStatus is shown while a search is in flight.
const LoadingStatus = render.LoadingStatus

// View is the display a controller writes to: a status region and a
// result area.
type View interface {
	SetStatus(text string)
	SetResults(r render.Results)
}

// Journal records submissions. *history.Store implements it.
type Journal interface {
	Record(ctx context.Context, e history.Entry) error
}

// Controller runs searches against a backend and renders them into a view.
// A controller does not cancel or order overlapping searches; each call
// writes to the view when its own request completes.
type Controller struct {
	backend search.Backend
	view    View
	journal Journal
	log     logrus.FieldLogger
	now     func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithJournal records every submission in j.
func WithJournal(j Journal) Option {
	return func(c *Controller) { c.journal = j }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns a controller bound to a backend and a view.
func New(backend search.Backend, view View, opts ...Option) *Controller {
	c := &Controller{
		backend: backend,
		view:    view,
		log:     logrus.StandardLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start runs the startup search with the default query and selector values.
// Its failure is handled exactly like a user-triggered search.
func (c *Controller) Start(ctx context.Context) error {
	p := search.DefaultParams()
	return c.SubmitSearch(ctx, p.Query, p.Language, p.SortBy)
}

// SubmitSearch handles one form submission. A blank query is replaced by
// search.DefaultQuery. On success the status is cleared and the articles
// are rendered; on any failure the error text becomes the status and the
// result area is cleared. The error is returned so callers can observe it;
// it is never retried.
func (c *Controller) SubmitSearch(ctx context.Context, query, language, sortBy string) error {
	start := c.now()
	fields := logrus.Fields{
		"query":    query,
		"language": language,
		"sort_by":  sortBy,
	}

	p, err := search.NewParams(query, language, sortBy)
	if err != nil {
		c.fail(ctx, fields, search.Params{Query: query, Language: language, SortBy: sortBy}, start, err)
		return err
	}
	fields["query"] = p.Query

	c.view.SetStatus(LoadingStatus)

	env, err := c.backend.Search(ctx, p)
	if err != nil {
		c.fail(ctx, fields, p, start, err)
		return err
	}

	c.view.SetStatus("")
	c.view.SetResults(render.RenderResults(env.Articles))

	observeSearch(outcomeOK, c.now().Sub(start))
	c.log.WithFields(fields).WithFields(logrus.Fields{
		"total_results": env.Total(),
		"shown":         len(env.Articles),
	}).Info("search completed")

	c.record(ctx, history.Entry{
		RequestedAt:  start,
		Query:        p.Query,
		Language:     p.Language,
		SortBy:       p.SortBy,
		Outcome:      history.OutcomeOK,
		TotalResults: env.Total(),
		Shown:        len(env.Articles),
	})
	return nil
}

func (c *Controller) fail(ctx context.Context, fields logrus.Fields, p search.Params, start time.Time, err error) {
	c.log.WithFields(fields).WithField("kind", errorKind(err)).WithError(err).Error("search failed")

	c.view.SetStatus(err.Error())
	c.view.SetResults(render.Results{})

	observeSearch(errorKind(err), c.now().Sub(start))
	c.record(ctx, history.Entry{
		RequestedAt: start,
		Query:       p.Query,
		Language:    p.Language,
		SortBy:      p.SortBy,
		Outcome:     history.OutcomeError,
		Error:       err.Error(),
	})
}

func (c *Controller) record(ctx context.Context, e history.Entry) {
	if c.journal == nil {
		return
	}
	if err := c.journal.Record(ctx, e); err != nil {
		c.log.WithError(err).Warn("recording search in history")
	}
}

// errorKind classifies a failure for logs and metrics.
func errorKind(err error) string {
	var (
		tErr   *search.TransportError
		hErr   *search.HTTPError
		apiErr *search.APIError
	)
	switch {
	case errors.As(err, &tErr):
		return outcomeTransport
	case errors.As(err, &hErr):
		return outcomeHTTP
	case errors.As(err, &apiErr):
		return outcomeAPI
	case errors.Is(err, search.ErrUnsupportedLanguage), errors.Is(err, search.ErrUnsupportedSort):
		return outcomeInvalid
	default:
		return outcomeMalformed
	}
}
