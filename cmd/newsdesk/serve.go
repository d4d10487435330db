// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/newsdesk/internal/search"
	"github.com/pdiddy/newsdesk/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search page",
	Long: `Serve starts a web server with the search page at /, a JSON search API at
/api/search, a health check at /healthz, and Prometheus metrics at /metrics.
Opening the page runs a search for "Berlin" in German, newest first.
The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, backend, journal, log).Run(ctx)
}
