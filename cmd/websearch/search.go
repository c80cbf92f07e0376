// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/websearch/internal/httputil"
	"github.com/pdiddy/websearch/internal/search"
	"github.com/pdiddy/websearch/pkg/types"
)

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return search.ErrNoQuery
	}
	query := search.BuildQuery(args)

	cfg := searchConfig(cmd)
	client := httputil.NewClient(cfg.HTTPConfig)

	backend, err := search.ForProvider(cfg, client)
	if err != nil {
		return err
	}

	records, err := search.Run(cmd.Context(), query, backend, cfg)
	if err != nil {
		return err
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		search.FormatTable(records, os.Stdout)
		return nil
	}
	return search.FormatJSON(records, os.Stdout)
}

// searchConfig resolves the effective configuration: built-in defaults,
// then config file and environment via viper, then explicit flags.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		MaxResults: viper.GetInt("max_results"),
		Provider:   viper.GetString("provider"),
	}

	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider, _ = cmd.Flags().GetString("provider")
	}
	return cfg
}
