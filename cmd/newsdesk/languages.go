// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/newsdesk/internal/search"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported languages and sort orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return printOptions(cmd.OutOrStdout(), asJSON)
	},
}

func init() {
	languagesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(languagesCmd)
}

func printOptions(w io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Languages []search.Option `json:"languages"`
			SortModes []search.Option `json:"sort_modes"`
		}{search.Languages, search.SortModes})
	}

	fmt.Fprintln(w, "Languages:")
	for _, o := range search.Languages {
		fmt.Fprintf(w, "  %-4s %s%s\n", o.Code, o.Label, defaultMark(o.Code, search.DefaultLanguage))
	}
	fmt.Fprintln(w, "\nSort orders:")
	for _, o := range search.SortModes {
		fmt.Fprintf(w, "  %-12s %s%s\n", o.Code, o.Label, defaultMark(o.Code, search.DefaultSort))
	}
	return nil
}

func defaultMark(code, def string) string {
	if code == def {
		return " (default)"
	}
	return ""
}
