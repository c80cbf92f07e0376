// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the websearch CLI, the search
// helper shelled out to by the web application's API route. The root
// command takes the query words directly; all diagnostics go to stderr
// so stdout carries nothing but the JSON payload.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/websearch/internal/search"
	"github.com/pdiddy/websearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the search itself: websearch <query words>...
var rootCmd = &cobra.Command{
	Use:   "websearch <query words>...",
	Short: "Query a web search provider and print results as JSON",
	Long: `websearch sends a free-text query to a web search provider, normalizes
each result to {title, url, snippet}, and prints the list as a JSON array
on stdout. On failure it prints {"error": "<message>"} and exits 1.

The query is all arguments joined with spaces; quoting is not required:

  websearch golang context cancellation`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSearch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./websearch.yaml or ~/.config/websearch/config.yaml)")
	rootCmd.Flags().Int("max-results", types.DefaultMaxResults, "maximum number of results to print")
	rootCmd.Flags().String("provider", "", "search provider: duckduckgo or duckduckgo-lite")
	rootCmd.Flags().Bool("plain", false, "print a human-readable table instead of JSON")
}

func initConfig() {
	viper.SetDefault("timeout", time.Duration(0))
	viper.SetDefault("user_agent", "websearch/0.1")
	viper.SetDefault("max_results", types.DefaultMaxResults)
	viper.SetDefault("provider", "duckduckgo")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("websearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "websearch"))
		}
	}

	viper.SetEnvPrefix("WEBSEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if werr := search.WriteError(err, os.Stdout); werr != nil {
			fmt.Fprintln(os.Stderr, werr)
		}
		os.Exit(1)
	}
}
