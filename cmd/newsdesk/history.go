// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/newsdesk/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `History lists recent search submissions from the journal, newest first,
with their outcome. The journal is stored in SQLite at history.path.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", history.DefaultLimit, "maximum number of entries")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("history is disabled: history.path is empty")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	printHistory(cmd.OutOrStdout(), entries)
	return nil
}

func printHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No searches recorded.")
		return
	}

	fmt.Fprintf(w, "%-20s  %-30s  %-4s  %-12s  %s\n", "Time", "Query", "Lang", "Sort", "Outcome")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, e := range entries {
		outcome := fmt.Sprintf("%d of %d", e.Shown, e.TotalResults)
		if e.Outcome == history.OutcomeError {
			outcome = "error: " + e.Error
		}
		fmt.Fprintf(w, "%-20s  %-30s  %-4s  %-12s  %s\n",
			e.RequestedAt.Local().Format("2006-01-02 15:04:05"), clipQuery(e.Query, 30), e.Language, e.SortBy, outcome)
	}
}

func clipQuery(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
