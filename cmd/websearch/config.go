// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/websearch/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or scaffold the websearch configuration",
}

// configFile is the YAML shape written by config init and printed by
// config show. Timeout is a duration string ("30s") so the file stays
// hand-editable.
type configFile struct {
	Timeout    string `yaml:"timeout"`
	UserAgent  string `yaml:"user_agent"`
	MaxResults int    `yaml:"max_results"`
	Provider   string `yaml:"provider"`
}

func fromSearchConfig(cfg types.SearchConfig) configFile {
	return configFile{
		Timeout:    cfg.Timeout.String(),
		UserAgent:  cfg.UserAgent,
		MaxResults: cfg.MaxResults,
		Provider:   cfg.Provider,
	}
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default websearch.yaml in the current directory",
	RunE:  runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	const path = "websearch.yaml"
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(fromSearchConfig(types.DefaultSearchConfig()))
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	content := append([]byte("# websearch configuration\n"), data...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintln(os.Stderr, "Wrote", path)
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(fromSearchConfig(searchConfig(cmd)))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
