// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the newsdesk CLI: news search from
// the terminal and the search page web server.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/newsdesk/internal/logging"
	"github.com/pdiddy/newsdesk/internal/secrets"
	"github.com/pdiddy/newsdesk/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// log is the diagnostics logger, configured in PersistentPreRunE.
var log = logrus.New()

// rootCmd is the base command for the newsdesk CLI.
var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "Search NewsAPI and render the results as cards",
	Long: `newsdesk searches the NewsAPI /v2/everything endpoint and renders the
matching articles as cards, either in the terminal or on a web page.

The API key is read from, in order: the news.api_key setting
(NEWSDESK_NEWS_API_KEY), the NEWS_API_KEY environment variable (a .env file
in the working directory is loaded first), and .secrets/newsapi-api-key.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading .env: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		log = l

		s, err := secrets.Load(secrets.DefaultDir, log)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			log.WithField("keys", keys).Debug("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./newsdesk.yaml or ~/.config/newsdesk/newsdesk.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("newsdesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "newsdesk"))
		}
	}

	viper.SetEnvPrefix("NEWSDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(types.DefaultConfig())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
