// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/newsdesk/internal/controller"
	"github.com/pdiddy/newsdesk/internal/render"
	"github.com/pdiddy/newsdesk/internal/search"
)

// errSearchFailed is returned after the failure has been shown as status.
var errSearchFailed = errors.New("search failed")

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search NewsAPI and print the results",
	Long: `Search sends one request to the NewsAPI /v2/everything endpoint and prints
up to 12 articles as cards, a table, JSON, or YAML. A blank query searches
for "Berlin". The search can be saved to a YAML file with --save and run
again later with --params.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("language", search.DefaultLanguage, "article language code (see 'newsdesk languages')")
	searchCmd.Flags().String("sort", search.DefaultSort, "sort order: publishedAt, relevancy, popularity")
	searchCmd.Flags().String("format", string(render.FormatCards), "output format: cards, table, json, yaml")
	searchCmd.Flags().String("save", "", "save the search and its articles to a YAML file")
	searchCmd.Flags().String("params", "", "read query, language, and sort from a saved YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	language, _ := cmd.Flags().GetString("language")
	sortBy, _ := cmd.Flags().GetString("sort")

	if paramsFile, _ := cmd.Flags().GetString("params"); paramsFile != "" {
		qf, err := search.ReadQueryFile(paramsFile)
		if err != nil {
			return err
		}
		p, err := qf.Query.ToParams()
		if err != nil {
			return fmt.Errorf("params file %s: %w", paramsFile, err)
		}
		if len(args) == 0 {
			query = p.Query
		}
		if !cmd.Flags().Changed("language") {
			language = p.Language
		}
		if !cmd.Flags().Changed("sort") {
			sortBy = p.SortBy
		}
	}

	cfg, err := loadSearchConfig()
	if err != nil {
		return err
	}
	backend, err := search.NewNewsAPIBackend(cfg.News, log)
	if err != nil {
		return err
	}
	journal, closeJournal, err := openJournal(cfg.History)
	if err != nil {
		return err
	}
	defer closeJournal()

	captured := &capturingBackend{Backend: backend}
	view := &render.TerminalView{
		Out:    cmd.OutOrStdout(),
		Status: cmd.ErrOrStderr(),
		Format: f,
	}
	opts := []controller.Option{controller.WithLogger(log)}
	if journal != nil {
		opts = append(opts, controller.WithJournal(journal))
	}

	if err := controller.New(captured, view, opts...).SubmitSearch(cmd.Context(), query, language, sortBy); err != nil {
		return errSearchFailed
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteQueryFile(savePath, captured.params, captured.env); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved search to %s\n", savePath)
	}
	return nil
}

// capturingBackend keeps the last successful request and response so they
// can be saved after rendering.
type capturingBackend struct {
	search.Backend
	params search.Params
	env    *search.Envelope
}

func (b *capturingBackend) Search(ctx context.Context, p search.Params) (*search.Envelope, error) {
	env, err := b.Backend.Search(ctx, p)
	if err == nil {
		b.params, b.env = p, env
	}
	return env, err
}
